package catalog

import "context"

type Repository interface {
	ListRoles(ctx context.Context) ([]Role, error)
	GetRoleByID(ctx context.Context, roleID string) (Role, bool, error)
	ListCategoriesByRole(ctx context.Context, roleID string) ([]Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (Category, bool, error)
	ListSpecializationsByCategory(ctx context.Context, categoryID string) ([]Specialization, error)
	ListExperienceLevels(ctx context.Context) ([]ExperienceLevel, error)
}
