package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hirepath/hirepath/internal/domain/catalog"
	"github.com/hirepath/hirepath/internal/domain/progress"
)

// CatalogService serves the read-only role -> category -> specialization ->
// experience-level hierarchy and validates role selections against it.
type CatalogService struct {
	repo catalog.Repository
}

func NewCatalogService(repo catalog.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListRoles(ctx context.Context) ([]catalog.Role, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListRoles")
	defer span.End()

	return s.repo.ListRoles(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context, roleID string) ([]catalog.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListCategories")
	defer span.End()

	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return nil, fmt.Errorf("%w: role_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: unknown role %q", ErrNotFound, roleID)
	}

	return s.repo.ListCategoriesByRole(ctx, roleID)
}

func (s *CatalogService) ListSpecializations(ctx context.Context, categoryID string) ([]catalog.Specialization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSpecializations")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category_id is required", ErrInvalidInput)
	}

	return s.repo.ListSpecializationsByCategory(ctx, categoryID)
}

func (s *CatalogService) ListExperienceLevels(ctx context.Context) ([]catalog.ExperienceLevel, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListExperienceLevels")
	defer span.End()

	return s.repo.ListExperienceLevels(ctx)
}

type ValidateSelectionInput struct {
	RoleID            string
	CategoryID        string
	SpecializationID  string
	ExperienceLevelID string
}

// ValidateSelection checks a pick against the catalog and returns the
// normalized selection. A category with exactly one specialization
// auto-selects it, so the caller never renders a single-option chooser.
func (s *CatalogService) ValidateSelection(ctx context.Context, input ValidateSelectionInput) (RoleSelection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ValidateSelection")
	defer span.End()

	input.RoleID = strings.TrimSpace(input.RoleID)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.SpecializationID = strings.TrimSpace(input.SpecializationID)
	input.ExperienceLevelID = strings.TrimSpace(input.ExperienceLevelID)

	role, exists, err := s.repo.GetRoleByID(ctx, input.RoleID)
	if err != nil {
		return RoleSelection{}, fmt.Errorf("get role: %w", err)
	}
	if !exists {
		return RoleSelection{}, fmt.Errorf("%w: unknown role %q", ErrNotFound, input.RoleID)
	}

	cat, exists, err := s.repo.GetCategoryByID(ctx, input.CategoryID)
	if err != nil {
		return RoleSelection{}, fmt.Errorf("get category: %w", err)
	}
	if !exists || cat.RoleID != role.ID {
		return RoleSelection{}, fmt.Errorf("%w: category %q does not belong to role %q", ErrNotFound, input.CategoryID, input.RoleID)
	}

	specs, err := s.repo.ListSpecializationsByCategory(ctx, cat.ID)
	if err != nil {
		return RoleSelection{}, fmt.Errorf("list specializations: %w", err)
	}

	specializationID := input.SpecializationID
	if specializationID == "" && len(specs) == 1 {
		specializationID = specs[0].ID
	}
	if specializationID != "" && !containsSpecialization(specs, specializationID) {
		return RoleSelection{}, fmt.Errorf("%w: specialization %q does not belong to category %q", ErrNotFound, specializationID, cat.ID)
	}

	experienceLevelID := input.ExperienceLevelID
	if role.Flow == progress.FlowDeveloper {
		if experienceLevelID == "" {
			return RoleSelection{}, fmt.Errorf("%w: experience_level_id is required for the developer flow", ErrInvalidInput)
		}
		levels, err := s.repo.ListExperienceLevels(ctx)
		if err != nil {
			return RoleSelection{}, fmt.Errorf("list experience levels: %w", err)
		}
		if !containsExperienceLevel(levels, experienceLevelID) {
			return RoleSelection{}, fmt.Errorf("%w: unknown experience level %q", ErrNotFound, experienceLevelID)
		}
	} else if experienceLevelID == "" {
		experienceLevelID = progress.ExperienceLevelNotApplicable
	}

	return RoleSelection{
		RoleID:            role.ID,
		CategoryID:        cat.ID,
		SpecializationID:  specializationID,
		ExperienceLevelID: experienceLevelID,
		Flow:              role.Flow,
	}, nil
}

func containsSpecialization(specs []catalog.Specialization, id string) bool {
	for _, s := range specs {
		if s.ID == id {
			return true
		}
	}
	return false
}

func containsExperienceLevel(levels []catalog.ExperienceLevel, id string) bool {
	for _, l := range levels {
		if l.ID == id {
			return true
		}
	}
	return false
}
