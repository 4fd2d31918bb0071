package memory

import (
	"context"
	"sync"

	"github.com/hirepath/hirepath/internal/domain/catalog"
)

// CatalogRepository serves the fixed role/category/experience reference data.
// The catalog is read-only at runtime, so both deployment modes use this
// repository seeded at startup.
type CatalogRepository struct {
	mu               sync.RWMutex
	roles            []catalog.Role
	categories       []catalog.Category
	specializations  []catalog.Specialization
	experienceLevels []catalog.ExperienceLevel
}

func NewCatalogRepository(
	roles []catalog.Role,
	categories []catalog.Category,
	specializations []catalog.Specialization,
	experienceLevels []catalog.ExperienceLevel,
) *CatalogRepository {
	return &CatalogRepository{
		roles:            append([]catalog.Role(nil), roles...),
		categories:       append([]catalog.Category(nil), categories...),
		specializations:  append([]catalog.Specialization(nil), specializations...),
		experienceLevels: append([]catalog.ExperienceLevel(nil), experienceLevels...),
	}
}

func NewSeededCatalogRepository() *CatalogRepository {
	return NewCatalogRepository(SeedRoles(), SeedCategories(), SeedSpecializations(), SeedExperienceLevels())
}

func (r *CatalogRepository) ListRoles(_ context.Context) ([]catalog.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]catalog.Role(nil), r.roles...), nil
}

func (r *CatalogRepository) GetRoleByID(_ context.Context, roleID string) (catalog.Role, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.ID == roleID {
			return role, true, nil
		}
	}
	return catalog.Role{}, false, nil
}

func (r *CatalogRepository) ListCategoriesByRole(_ context.Context, roleID string) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []catalog.Category
	for _, c := range r.categories {
		if c.RoleID == roleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CatalogRepository) GetCategoryByID(_ context.Context, categoryID string) (catalog.Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == categoryID {
			return c, true, nil
		}
	}
	return catalog.Category{}, false, nil
}

func (r *CatalogRepository) ListSpecializationsByCategory(_ context.Context, categoryID string) ([]catalog.Specialization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []catalog.Specialization
	for _, s := range r.specializations {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *CatalogRepository) ListExperienceLevels(_ context.Context) ([]catalog.ExperienceLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]catalog.ExperienceLevel(nil), r.experienceLevels...), nil
}
