package cache

import (
	"context"

	"github.com/hirepath/hirepath/internal/domain/catalog"
	basecache "github.com/hirepath/hirepath/internal/platform/cache"
)

// CatalogRepository memoizes the reference catalog. The data only changes on
// deploy, so every read is a GetOrLoad against a TTL'd key.
type CatalogRepository struct {
	next  catalog.Repository
	cache *basecache.Store
}

func NewCatalogRepository(next catalog.Repository, cache *basecache.Store) *CatalogRepository {
	return &CatalogRepository{next: next, cache: cache}
}

func (r *CatalogRepository) ListRoles(ctx context.Context) ([]catalog.Role, error) {
	v, err := r.cache.GetOrLoad(ctx, "catalog:roles", func(ctx context.Context) (any, error) {
		items, err := r.next.ListRoles(ctx)
		if err != nil {
			return nil, err
		}
		return append([]catalog.Role(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]catalog.Role)
	return append([]catalog.Role(nil), items...), nil
}

func (r *CatalogRepository) GetRoleByID(ctx context.Context, roleID string) (catalog.Role, bool, error) {
	key := "catalog:role:" + roleID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetRoleByID(ctx, roleID)
		if err != nil {
			return nil, err
		}
		return cachedRole{value: item, exists: exists}, nil
	})
	if err != nil {
		return catalog.Role{}, false, err
	}

	cached, _ := v.(cachedRole)
	return cached.value, cached.exists, nil
}

func (r *CatalogRepository) ListCategoriesByRole(ctx context.Context, roleID string) ([]catalog.Category, error) {
	key := "catalog:categories:role:" + roleID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListCategoriesByRole(ctx, roleID)
		if err != nil {
			return nil, err
		}
		return append([]catalog.Category(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]catalog.Category)
	return append([]catalog.Category(nil), items...), nil
}

func (r *CatalogRepository) GetCategoryByID(ctx context.Context, categoryID string) (catalog.Category, bool, error) {
	key := "catalog:category:" + categoryID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		return cachedCategory{value: item, exists: exists}, nil
	})
	if err != nil {
		return catalog.Category{}, false, err
	}

	cached, _ := v.(cachedCategory)
	return cached.value, cached.exists, nil
}

func (r *CatalogRepository) ListSpecializationsByCategory(ctx context.Context, categoryID string) ([]catalog.Specialization, error) {
	key := "catalog:specializations:category:" + categoryID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListSpecializationsByCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		return append([]catalog.Specialization(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]catalog.Specialization)
	return append([]catalog.Specialization(nil), items...), nil
}

func (r *CatalogRepository) ListExperienceLevels(ctx context.Context) ([]catalog.ExperienceLevel, error) {
	v, err := r.cache.GetOrLoad(ctx, "catalog:experience-levels", func(ctx context.Context) (any, error) {
		items, err := r.next.ListExperienceLevels(ctx)
		if err != nil {
			return nil, err
		}
		return append([]catalog.ExperienceLevel(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]catalog.ExperienceLevel)
	return append([]catalog.ExperienceLevel(nil), items...), nil
}

type cachedRole struct {
	value  catalog.Role
	exists bool
}

type cachedCategory struct {
	value  catalog.Category
	exists bool
}
