package memory

import (
	"github.com/hirepath/hirepath/internal/domain/catalog"
	"github.com/hirepath/hirepath/internal/domain/progress"
)

const (
	RoleIDClient     = "role-client"
	RoleIDFreelancer = "role-freelancer"
	RoleIDAgency     = "role-agency"
)

func SeedRoles() []catalog.Role {
	return []catalog.Role{
		{ID: RoleIDClient, Name: "Client", Flow: progress.FlowClient},
		{ID: RoleIDFreelancer, Name: "Freelancer", Flow: progress.FlowDeveloper},
		{ID: RoleIDAgency, Name: "Agency", Flow: progress.FlowAgency},
	}
}

func SeedCategories() []catalog.Category {
	return []catalog.Category{
		{ID: "cat-software-dev", RoleID: RoleIDFreelancer, Name: "Software Development"},
		{ID: "cat-product-design", RoleID: RoleIDFreelancer, Name: "Product Design"},
		{ID: "cat-data-engineering", RoleID: RoleIDFreelancer, Name: "Data Engineering"},
		{ID: "cat-devops", RoleID: RoleIDFreelancer, Name: "DevOps & Infrastructure"},
		{ID: "cat-company-hiring", RoleID: RoleIDClient, Name: "Company Hiring"},
		{ID: "cat-project-hiring", RoleID: RoleIDClient, Name: "Project Hiring"},
		{ID: "cat-agency-staffing", RoleID: RoleIDAgency, Name: "Agency Staffing"},
	}
}

// SeedSpecializations carries exactly one specialization per developer
// category; selection endpoints auto-pick it when the list has one entry.
func SeedSpecializations() []catalog.Specialization {
	return []catalog.Specialization{
		{ID: "spec-fullstack", CategoryID: "cat-software-dev", Name: "Full-Stack Engineering"},
		{ID: "spec-product-design", CategoryID: "cat-product-design", Name: "End-to-End Product Design"},
		{ID: "spec-data-platform", CategoryID: "cat-data-engineering", Name: "Data Platform Engineering"},
		{ID: "spec-platform-ops", CategoryID: "cat-devops", Name: "Platform Operations"},
	}
}

func SeedExperienceLevels() []catalog.ExperienceLevel {
	return []catalog.ExperienceLevel{
		{ID: "exp-junior", Name: "Junior", MinYears: 0, MaxYears: 2},
		{ID: "exp-mid", Name: "Mid-Level", MinYears: 2, MaxYears: 6},
		{ID: "exp-senior", Name: "Senior", MinYears: 6, MaxYears: 10},
		{ID: "exp-principal", Name: "Principal", MinYears: 10, MaxYears: 0},
	}
}
