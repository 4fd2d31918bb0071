package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirepath/hirepath/internal/domain/progress"
	qb "github.com/hirepath/hirepath/internal/platform/querybuilder"
)

const progressTable = "user_onboarding_progress"

type ProgressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) ListByUserID(ctx context.Context, userID string) ([]progress.Record, error) {
	query, args, err := qb.Select("*").
		From(progressTable).
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("updated_at DESC", "created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list progress query: %w", err)
	}

	var rows []progressTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list progress rows: %w", err)
	}

	return progressRecordsFromRows(rows)
}

func (r *ProgressRepository) Insert(ctx context.Context, rec progress.Record) (progress.Record, error) {
	formData, err := sonic.Marshal(rec.FormData)
	if err != nil {
		return progress.Record{}, fmt.Errorf("encode form data: %w", err)
	}

	insertModel := progressInsertModel{
		ID:                rec.ID,
		UserID:            strings.TrimSpace(rec.UserID),
		RoleID:            optionalValue(rec.RoleID),
		CategoryID:        optionalValue(rec.CategoryID),
		ExperienceLevelID: optionalValue(rec.ExperienceLevelID),
		Flow:              string(rec.Flow),
		Stage:             optionalValue(rec.Stage),
		CurrentStep:       rec.CurrentStep,
		TotalSteps:        rec.TotalSteps,
		CompletedSteps:    pq.StringArray(rec.CompletedSteps),
		Status:            string(rec.Status),
		FormData:          formData,
		LastActivity:      rec.LastActivity,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}

	query, args, err := qb.InsertModel(progressTable, insertModel, "")
	if err != nil {
		return progress.Record{}, fmt.Errorf("build insert progress query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return progress.Record{}, fmt.Errorf("insert progress row: %w", err)
	}

	return rec, nil
}

func (r *ProgressRepository) Update(ctx context.Context, userID string, fields progress.UpdateFields) (progress.Record, bool, error) {
	query, args, err := buildProgressUpdateQuery(userID, fields)
	if err != nil {
		return progress.Record{}, false, err
	}

	var row progressTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return progress.Record{}, false, nil
		}
		return progress.Record{}, false, fmt.Errorf("update progress row: %w", err)
	}

	rec, err := progressRecordFromRow(row)
	if err != nil {
		return progress.Record{}, false, err
	}

	return rec, true, nil
}

func buildProgressUpdateQuery(userID string, fields progress.UpdateFields) (string, []any, error) {
	builder := qb.Update(progressTable)

	setString := func(column string, value *string) {
		if value != nil {
			builder.Set(column, *value)
		}
	}
	setString("role_id", fields.RoleID)
	setString("category_id", fields.CategoryID)
	setString("experience_level_id", fields.ExperienceLevelID)
	setString("onboarding_stage", fields.Stage)
	setString("location", fields.Location)
	setString("primary_stack", fields.PrimaryStack)
	setString("experience_level", fields.ExperienceLevel)
	setString("work_style", fields.WorkStyle)
	setString("availability_status", fields.Availability)

	if fields.Flow != nil {
		builder.Set("onboarding_flow", string(*fields.Flow))
	}
	if fields.CurrentStep != nil {
		builder.Set("current_step", *fields.CurrentStep)
	}
	if fields.TotalSteps != nil {
		builder.Set("total_steps", *fields.TotalSteps)
	}
	if fields.CompletedSteps != nil {
		builder.Set("completed_steps", pq.StringArray(*fields.CompletedSteps))
	}
	if fields.Status != nil {
		builder.Set("onboarding_status", string(*fields.Status))
	}
	if fields.FormData != nil {
		encoded, err := sonic.Marshal(*fields.FormData)
		if err != nil {
			return "", nil, fmt.Errorf("encode form data: %w", err)
		}
		builder.Set("form_data", encoded)
	}
	if fields.SalaryMin != nil {
		builder.Set("salary_min", *fields.SalaryMin)
	}
	if fields.SalaryMax != nil {
		builder.Set("salary_max", *fields.SalaryMax)
	}
	if fields.Skills != nil {
		builder.Set("skills", pq.StringArray(*fields.Skills))
	}
	if fields.DomainExperience != nil {
		builder.Set("domain_experience", pq.StringArray(*fields.DomainExperience))
	}

	now := time.Now().UTC()
	builder.Set("last_activity", now)
	builder.Set("updated_at", now)

	// With duplicates present only the most recent row takes the write; the
	// stale siblings stay untouched until read-side reconciliation removes
	// them.
	query, args, err := builder.
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
			qb.Expr("id = (SELECT id FROM "+progressTable+" WHERE user_id = ? AND deleted_at IS NULL ORDER BY updated_at DESC, created_at DESC LIMIT 1)", userID),
		).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build update progress query: %w", err)
	}

	return query, args, nil
}

func (r *ProgressRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	query, args, err := qb.Update(progressTable).
		Set("deleted_at", time.Now().UTC()).
		Where(
			qb.In("id", values),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete progress query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete progress rows: %w", err)
	}

	return nil
}

func (r *ProgressRepository) Search(ctx context.Context, criteria progress.SearchCriteria) ([]progress.Record, error) {
	conditions := []qb.Condition{
		qb.Eq("onboarding_flow", string(progress.FlowDeveloper)),
		qb.Eq("availability_status", progress.AvailabilityAvailable),
		qb.IsNull("deleted_at"),
	}

	if location := strings.TrimSpace(criteria.Location); location != "" {
		conditions = append(conditions, qb.ILike("location", "%"+location+"%"))
	}
	if stack := strings.TrimSpace(criteria.PrimaryStack); stack != "" {
		conditions = append(conditions, qb.ILike("primary_stack", "%"+stack+"%"))
	}
	if level := strings.TrimSpace(criteria.ExperienceLevel); level != "" {
		conditions = append(conditions, qb.Eq("experience_level", level))
	}
	if style := strings.TrimSpace(criteria.WorkStyle); style != "" {
		conditions = append(conditions, qb.Eq("work_style", style))
	}
	// Range overlap: the stored expectation window must intersect the
	// requested one, so each bound compares against the opposite column.
	if criteria.SalaryMin != nil {
		conditions = append(conditions, qb.Gte("salary_max", *criteria.SalaryMin))
	}
	if criteria.SalaryMax != nil {
		conditions = append(conditions, qb.Lte("salary_min", *criteria.SalaryMax))
	}
	if len(criteria.Skills) > 0 {
		conditions = append(conditions, qb.Overlaps("skills", pq.Array(criteria.Skills)))
	}
	if len(criteria.DomainExperience) > 0 {
		conditions = append(conditions, qb.Overlaps("domain_experience", pq.Array(criteria.DomainExperience)))
	}

	query, args, err := qb.Select("*").
		From(progressTable).
		Where(conditions...).
		OrderBy("updated_at DESC").
		Limit(criteria.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search progress query: %w", err)
	}

	var rows []progressTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search progress rows: %w", err)
	}

	return progressRecordsFromRows(rows)
}

func (r *ProgressRepository) ListByFlow(ctx context.Context, flow progress.Flow) ([]progress.Record, error) {
	query, args, err := qb.Select("*").
		From(progressTable).
		Where(
			qb.Eq("onboarding_flow", string(flow)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("updated_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list by flow query: %w", err)
	}

	var rows []progressTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list progress rows by flow: %w", err)
	}

	return progressRecordsFromRows(rows)
}

func progressRecordsFromRows(rows []progressTableModel) ([]progress.Record, error) {
	records := make([]progress.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := progressRecordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func progressRecordFromRow(row progressTableModel) (progress.Record, error) {
	rec := progress.Record{
		ID:                row.ID,
		UserID:            row.UserID,
		RoleID:            row.RoleID.String,
		CategoryID:        row.CategoryID.String,
		ExperienceLevelID: row.ExperienceLevelID.String,
		Flow:              progress.Flow(row.Flow),
		Stage:             row.Stage.String,
		CurrentStep:       row.CurrentStep,
		TotalSteps:        row.TotalSteps,
		CompletedSteps:    append([]string(nil), row.CompletedSteps...),
		Status:            progress.Status(row.Status),
		Location:          row.Location.String,
		PrimaryStack:      row.PrimaryStack.String,
		ExperienceLevel:   row.ExperienceLevel.String,
		WorkStyle:         row.WorkStyle.String,
		Availability:      row.Availability.String,
		Skills:            append([]string(nil), row.Skills...),
		DomainExperience:  append([]string(nil), row.DomainExperience...),
		LastActivity:      row.LastActivity,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	if row.SalaryMin.Valid {
		value := int(row.SalaryMin.Int64)
		rec.SalaryMin = &value
	}
	if row.SalaryMax.Valid {
		value := int(row.SalaryMax.Int64)
		rec.SalaryMax = &value
	}

	if len(row.FormData) > 0 {
		if err := sonic.Unmarshal(row.FormData, &rec.FormData); err != nil {
			return progress.Record{}, fmt.Errorf("decode form data for %s: %w", row.UserID, err)
		}
	}

	return rec, nil
}
