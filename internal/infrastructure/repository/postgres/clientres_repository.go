package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hirepath/hirepath/internal/domain/clientres"
	qb "github.com/hirepath/hirepath/internal/platform/querybuilder"
)

const (
	organizationTable  = "organizations"
	teamTable          = "teams"
	hiringPersonaTable = "hiring_personas"
)

type OrganizationRepository struct {
	db *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Insert(ctx context.Context, org clientres.Organization) error {
	insertModel := organizationInsertModel{
		ID:        org.ID,
		OwnerID:   strings.TrimSpace(org.OwnerID),
		Name:      strings.TrimSpace(org.Name),
		Size:      optionalValue(org.Size),
		Industry:  optionalValue(org.Industry),
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}

	query, args, err := qb.InsertModel(organizationTable, insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert organization query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org clientres.Organization) (bool, error) {
	query, args, err := qb.Update(organizationTable).
		Set("name", strings.TrimSpace(org.Name)).
		Set("size", strings.TrimSpace(org.Size)).
		Set("industry", strings.TrimSpace(org.Industry)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", org.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update organization query: %w", err)
	}

	return execReportingMatch(ctx, r.db, query, args, "update organization")
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (clientres.Organization, bool, error) {
	query, args, err := qb.Select("*").
		From(organizationTable).
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return clientres.Organization{}, false, fmt.Errorf("build get organization query: %w", err)
	}

	var row organizationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clientres.Organization{}, false, nil
		}
		return clientres.Organization{}, false, fmt.Errorf("get organization: %w", err)
	}

	return organizationFromRow(row), true, nil
}

func (r *OrganizationRepository) ListByOwner(ctx context.Context, ownerID string) ([]clientres.Organization, error) {
	query, args, err := qb.Select("*").
		From(organizationTable).
		Where(
			qb.Eq("owner_id", ownerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list organizations query: %w", err)
	}

	var rows []organizationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	orgs := make([]clientres.Organization, 0, len(rows))
	for _, row := range rows {
		orgs = append(orgs, organizationFromRow(row))
	}

	return orgs, nil
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Insert(ctx context.Context, team clientres.Team) error {
	insertModel := teamInsertModel{
		ID:                  team.ID,
		OrganizationID:      optionalValue(team.OrganizationID),
		OwnerID:             strings.TrimSpace(team.OwnerID),
		Title:               strings.TrimSpace(team.Title),
		Description:         optionalValue(team.Description),
		StructurePreference: optionalValue(team.StructurePreference),
		PaceOfWork:          optionalValue(team.PaceOfWork),
		AgeComposition:      optionalValue(team.AgeComposition),
		CreatedAt:           team.CreatedAt,
		UpdatedAt:           team.UpdatedAt,
	}

	query, args, err := qb.InsertModel(teamTable, insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, team clientres.Team) (bool, error) {
	query, args, err := qb.Update(teamTable).
		Set("title", strings.TrimSpace(team.Title)).
		Set("description", strings.TrimSpace(team.Description)).
		Set("structure_preference", strings.TrimSpace(team.StructurePreference)).
		Set("pace_of_work", strings.TrimSpace(team.PaceOfWork)).
		Set("age_composition", strings.TrimSpace(team.AgeComposition)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", team.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	return execReportingMatch(ctx, r.db, query, args, "update team")
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (clientres.Team, bool, error) {
	query, args, err := qb.Select("*").
		From(teamTable).
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return clientres.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clientres.Team{}, false, nil
		}
		return clientres.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) ListByOwner(ctx context.Context, ownerID string) ([]clientres.Team, error) {
	query, args, err := qb.Select("*").
		From(teamTable).
		Where(
			qb.Eq("owner_id", ownerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teams := make([]clientres.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, teamFromRow(row))
	}

	return teams, nil
}

type HiringPersonaRepository struct {
	db *sqlx.DB
}

func NewHiringPersonaRepository(db *sqlx.DB) *HiringPersonaRepository {
	return &HiringPersonaRepository{db: db}
}

func (r *HiringPersonaRepository) Insert(ctx context.Context, persona clientres.HiringPersona) error {
	insertModel := hiringPersonaInsertModel{
		ID:        persona.ID,
		TeamID:    optionalValue(persona.TeamID),
		OwnerID:   strings.TrimSpace(persona.OwnerID),
		Title:     strings.TrimSpace(persona.Title),
		Seniority: optionalValue(persona.Seniority),
		Budget:    optionalValue(persona.Budget),
		CreatedAt: persona.CreatedAt,
		UpdatedAt: persona.UpdatedAt,
	}

	query, args, err := qb.InsertModel(hiringPersonaTable, insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert hiring persona query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert hiring persona: %w", err)
	}

	return nil
}

func (r *HiringPersonaRepository) Update(ctx context.Context, persona clientres.HiringPersona) (bool, error) {
	query, args, err := qb.Update(hiringPersonaTable).
		Set("title", strings.TrimSpace(persona.Title)).
		Set("seniority", strings.TrimSpace(persona.Seniority)).
		Set("budget", strings.TrimSpace(persona.Budget)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", persona.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update hiring persona query: %w", err)
	}

	return execReportingMatch(ctx, r.db, query, args, "update hiring persona")
}

func (r *HiringPersonaRepository) GetByID(ctx context.Context, id string) (clientres.HiringPersona, bool, error) {
	query, args, err := qb.Select("*").
		From(hiringPersonaTable).
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return clientres.HiringPersona{}, false, fmt.Errorf("build get hiring persona query: %w", err)
	}

	var row hiringPersonaTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clientres.HiringPersona{}, false, nil
		}
		return clientres.HiringPersona{}, false, fmt.Errorf("get hiring persona: %w", err)
	}

	return hiringPersonaFromRow(row), true, nil
}

func (r *HiringPersonaRepository) ListByOwner(ctx context.Context, ownerID string) ([]clientres.HiringPersona, error) {
	query, args, err := qb.Select("*").
		From(hiringPersonaTable).
		Where(
			qb.Eq("owner_id", ownerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list hiring personas query: %w", err)
	}

	var rows []hiringPersonaTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list hiring personas: %w", err)
	}

	personas := make([]clientres.HiringPersona, 0, len(rows))
	for _, row := range rows {
		personas = append(personas, hiringPersonaFromRow(row))
	}

	return personas, nil
}

func organizationFromRow(row organizationTableModel) clientres.Organization {
	return clientres.Organization{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Size:      row.Size.String,
		Industry:  row.Industry.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func teamFromRow(row teamTableModel) clientres.Team {
	return clientres.Team{
		ID:                  row.ID,
		OrganizationID:      row.OrganizationID.String,
		OwnerID:             row.OwnerID,
		Title:               row.Title,
		Description:         row.Description.String,
		StructurePreference: row.StructurePreference.String,
		PaceOfWork:          row.PaceOfWork.String,
		AgeComposition:      row.AgeComposition.String,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

func hiringPersonaFromRow(row hiringPersonaTableModel) clientres.HiringPersona {
	return clientres.HiringPersona{
		ID:        row.ID,
		TeamID:    row.TeamID.String,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		Seniority: row.Seniority.String,
		Budget:    row.Budget.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
