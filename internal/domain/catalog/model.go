package catalog

import "github.com/hirepath/hirepath/internal/domain/progress"

// Role is a top-level onboarding entry point (client, freelancer, agency).
type Role struct {
	ID   string
	Name string
	Flow progress.Flow
}

type Category struct {
	ID     string
	RoleID string
	Name   string
}

// Specialization is a sub-category under a role category. Developer
// categories currently carry exactly one specialization each.
type Specialization struct {
	ID         string
	CategoryID string
	Name       string
}

// ExperienceLevel is one of the four fixed tiers. MaxYears of zero means
// open-ended.
type ExperienceLevel struct {
	ID       string
	Name     string
	MinYears int
	MaxYears int
}
