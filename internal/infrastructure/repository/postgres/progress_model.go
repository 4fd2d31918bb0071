package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type progressTableModel struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	RoleID            sql.NullString `db:"role_id"`
	CategoryID        sql.NullString `db:"category_id"`
	ExperienceLevelID sql.NullString `db:"experience_level_id"`
	Flow              string         `db:"onboarding_flow"`
	Stage             sql.NullString `db:"onboarding_stage"`
	CurrentStep       int            `db:"current_step"`
	TotalSteps        int            `db:"total_steps"`
	CompletedSteps    pq.StringArray `db:"completed_steps"`
	Status            string         `db:"onboarding_status"`
	FormData          []byte         `db:"form_data"`
	Location          sql.NullString `db:"location"`
	PrimaryStack      sql.NullString `db:"primary_stack"`
	ExperienceLevel   sql.NullString `db:"experience_level"`
	SalaryMin         sql.NullInt64  `db:"salary_min"`
	SalaryMax         sql.NullInt64  `db:"salary_max"`
	WorkStyle         sql.NullString `db:"work_style"`
	Availability      sql.NullString `db:"availability_status"`
	Skills            pq.StringArray `db:"skills"`
	DomainExperience  pq.StringArray `db:"domain_experience"`
	LastActivity      time.Time      `db:"last_activity"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

type progressInsertModel struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	RoleID            *string        `db:"role_id"`
	CategoryID        *string        `db:"category_id"`
	ExperienceLevelID *string        `db:"experience_level_id"`
	Flow              string         `db:"onboarding_flow"`
	Stage             *string        `db:"onboarding_stage"`
	CurrentStep       int            `db:"current_step"`
	TotalSteps        int            `db:"total_steps"`
	CompletedSteps    pq.StringArray `db:"completed_steps"`
	Status            string         `db:"onboarding_status"`
	FormData          []byte         `db:"form_data"`
	LastActivity      time.Time      `db:"last_activity"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}
