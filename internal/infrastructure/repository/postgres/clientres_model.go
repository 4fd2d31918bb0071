package postgres

import (
	"database/sql"
	"time"
)

type organizationTableModel struct {
	ID        string         `db:"id"`
	OwnerID   string         `db:"owner_id"`
	Name      string         `db:"name"`
	Size      sql.NullString `db:"size"`
	Industry  sql.NullString `db:"industry"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

type organizationInsertModel struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	Size      *string   `db:"size"`
	Industry  *string   `db:"industry"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamTableModel struct {
	ID                  string         `db:"id"`
	OrganizationID      sql.NullString `db:"organization_id"`
	OwnerID             string         `db:"owner_id"`
	Title               string         `db:"title"`
	Description         sql.NullString `db:"description"`
	StructurePreference sql.NullString `db:"structure_preference"`
	PaceOfWork          sql.NullString `db:"pace_of_work"`
	AgeComposition      sql.NullString `db:"age_composition"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	DeletedAt           *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	ID                  string    `db:"id"`
	OrganizationID      *string   `db:"organization_id"`
	OwnerID             string    `db:"owner_id"`
	Title               string    `db:"title"`
	Description         *string   `db:"description"`
	StructurePreference *string   `db:"structure_preference"`
	PaceOfWork          *string   `db:"pace_of_work"`
	AgeComposition      *string   `db:"age_composition"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type hiringPersonaTableModel struct {
	ID        string         `db:"id"`
	TeamID    sql.NullString `db:"team_id"`
	OwnerID   string         `db:"owner_id"`
	Title     string         `db:"title"`
	Seniority sql.NullString `db:"seniority"`
	Budget    sql.NullString `db:"budget"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

type hiringPersonaInsertModel struct {
	ID        string    `db:"id"`
	TeamID    *string   `db:"team_id"`
	OwnerID   string    `db:"owner_id"`
	Title     string    `db:"title"`
	Seniority *string   `db:"seniority"`
	Budget    *string   `db:"budget"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
