package devprofile

import "time"

// Profile is the projection upserted when a developer finishes onboarding.
// One row per user; search and dashboard surfaces read this instead of the
// wizard's form blob.
type Profile struct {
	UserID           string
	FullName         string
	Headline         string
	Location         string
	PrimaryStack     string
	ExperienceLevel  string
	WorkStyle        string
	Availability     string
	SalaryMin        *int
	SalaryMax        *int
	Skills           []string
	DomainExperience []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
