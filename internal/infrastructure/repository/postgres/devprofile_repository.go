package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirepath/hirepath/internal/domain/devprofile"
	qb "github.com/hirepath/hirepath/internal/platform/querybuilder"
)

const developerProfileTable = "developer_profiles"

type DeveloperProfileRepository struct {
	db *sqlx.DB
}

func NewDeveloperProfileRepository(db *sqlx.DB) *DeveloperProfileRepository {
	return &DeveloperProfileRepository{db: db}
}

func (r *DeveloperProfileRepository) GetByUserID(ctx context.Context, userID string) (devprofile.Profile, bool, error) {
	query, args, err := qb.Select("*").
		From(developerProfileTable).
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return devprofile.Profile{}, false, fmt.Errorf("build get developer profile query: %w", err)
	}

	var row developerProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return devprofile.Profile{}, false, nil
		}
		return devprofile.Profile{}, false, fmt.Errorf("get developer profile: %w", err)
	}

	return developerProfileFromRow(row), true, nil
}

func (r *DeveloperProfileRepository) Upsert(ctx context.Context, profile devprofile.Profile) error {
	insertModel := developerProfileInsertModel{
		UserID:           strings.TrimSpace(profile.UserID),
		FullName:         optionalValue(profile.FullName),
		Headline:         optionalValue(profile.Headline),
		Location:         optionalValue(profile.Location),
		PrimaryStack:     optionalValue(profile.PrimaryStack),
		ExperienceLevel:  optionalValue(profile.ExperienceLevel),
		WorkStyle:        optionalValue(profile.WorkStyle),
		Availability:     optionalValue(profile.Availability),
		SalaryMin:        profile.SalaryMin,
		SalaryMax:        profile.SalaryMax,
		Skills:           pq.StringArray(profile.Skills),
		DomainExperience: pq.StringArray(profile.DomainExperience),
	}

	query, args, err := qb.InsertModel(developerProfileTable, insertModel, `ON CONFLICT (user_id)
DO UPDATE SET
    full_name = EXCLUDED.full_name,
    headline = EXCLUDED.headline,
    location = EXCLUDED.location,
    primary_stack = EXCLUDED.primary_stack,
    experience_level = EXCLUDED.experience_level,
    work_style = EXCLUDED.work_style,
    availability_status = EXCLUDED.availability_status,
    salary_min = EXCLUDED.salary_min,
    salary_max = EXCLUDED.salary_max,
    skills = EXCLUDED.skills,
    domain_experience = EXCLUDED.domain_experience,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert developer profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert developer profile: %w", err)
	}

	return nil
}

func developerProfileFromRow(row developerProfileTableModel) devprofile.Profile {
	profile := devprofile.Profile{
		UserID:           row.UserID,
		FullName:         row.FullName.String,
		Headline:         row.Headline.String,
		Location:         row.Location.String,
		PrimaryStack:     row.PrimaryStack.String,
		ExperienceLevel:  row.ExperienceLevel.String,
		WorkStyle:        row.WorkStyle.String,
		Availability:     row.Availability.String,
		Skills:           append([]string(nil), row.Skills...),
		DomainExperience: append([]string(nil), row.DomainExperience...),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	if row.SalaryMin.Valid {
		value := int(row.SalaryMin.Int64)
		profile.SalaryMin = &value
	}
	if row.SalaryMax.Valid {
		value := int(row.SalaryMax.Int64)
		profile.SalaryMax = &value
	}

	return profile
}
