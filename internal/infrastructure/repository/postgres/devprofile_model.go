package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type developerProfileTableModel struct {
	UserID           string         `db:"user_id"`
	FullName         sql.NullString `db:"full_name"`
	Headline         sql.NullString `db:"headline"`
	Location         sql.NullString `db:"location"`
	PrimaryStack     sql.NullString `db:"primary_stack"`
	ExperienceLevel  sql.NullString `db:"experience_level"`
	WorkStyle        sql.NullString `db:"work_style"`
	Availability     sql.NullString `db:"availability_status"`
	SalaryMin        sql.NullInt64  `db:"salary_min"`
	SalaryMax        sql.NullInt64  `db:"salary_max"`
	Skills           pq.StringArray `db:"skills"`
	DomainExperience pq.StringArray `db:"domain_experience"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type developerProfileInsertModel struct {
	UserID           string         `db:"user_id"`
	FullName         *string        `db:"full_name"`
	Headline         *string        `db:"headline"`
	Location         *string        `db:"location"`
	PrimaryStack     *string        `db:"primary_stack"`
	ExperienceLevel  *string        `db:"experience_level"`
	WorkStyle        *string        `db:"work_style"`
	Availability     *string        `db:"availability_status"`
	SalaryMin        *int           `db:"salary_min"`
	SalaryMax        *int           `db:"salary_max"`
	Skills           pq.StringArray `db:"skills"`
	DomainExperience pq.StringArray `db:"domain_experience"`
}
