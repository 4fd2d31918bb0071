package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/hirepath/hirepath/internal/domain/catalog"
	"github.com/hirepath/hirepath/internal/domain/progress"
	catalogmock "github.com/hirepath/hirepath/internal/mocks/domain/catalog"
)

func TestCatalogService_ValidateSelection_RepositoryErrorSurfaces(t *testing.T) {
	repo := catalogmock.NewRepository(t)
	service := NewCatalogService(repo)

	repo.On("GetRoleByID", mock.Anything, "role-x").
		Return(catalog.Role{}, false, errors.New("connection reset")).Once()

	if _, err := service.ValidateSelection(t.Context(), ValidateSelectionInput{
		RoleID:     "role-x",
		CategoryID: "cat-x",
	}); err == nil {
		t.Fatal("expected repository error to surface")
	}
}

func TestCatalogService_ValidateSelection_ExplicitSpecializationIsKept(t *testing.T) {
	repo := catalogmock.NewRepository(t)
	service := NewCatalogService(repo)

	repo.On("GetRoleByID", mock.Anything, "role-x").
		Return(catalog.Role{ID: "role-x", Flow: progress.FlowClient}, true, nil).Once()
	repo.On("GetCategoryByID", mock.Anything, "cat-x").
		Return(catalog.Category{ID: "cat-x", RoleID: "role-x"}, true, nil).Once()
	repo.On("ListSpecializationsByCategory", mock.Anything, "cat-x").
		Return([]catalog.Specialization{
			{ID: "spec-a", CategoryID: "cat-x"},
			{ID: "spec-b", CategoryID: "cat-x"},
		}, nil).Once()

	sel, err := service.ValidateSelection(t.Context(), ValidateSelectionInput{
		RoleID:           "role-x",
		CategoryID:       "cat-x",
		SpecializationID: "spec-b",
	})
	if err != nil {
		t.Fatalf("validate selection failed: %v", err)
	}
	if sel.SpecializationID != "spec-b" {
		t.Fatalf("expected explicit specialization kept, got %q", sel.SpecializationID)
	}

	// Two options and no pick: nothing is auto-selected.
	repo.On("GetRoleByID", mock.Anything, "role-x").
		Return(catalog.Role{ID: "role-x", Flow: progress.FlowClient}, true, nil).Once()
	repo.On("GetCategoryByID", mock.Anything, "cat-x").
		Return(catalog.Category{ID: "cat-x", RoleID: "role-x"}, true, nil).Once()
	repo.On("ListSpecializationsByCategory", mock.Anything, "cat-x").
		Return([]catalog.Specialization{
			{ID: "spec-a", CategoryID: "cat-x"},
			{ID: "spec-b", CategoryID: "cat-x"},
		}, nil).Once()

	sel, err = service.ValidateSelection(t.Context(), ValidateSelectionInput{
		RoleID:     "role-x",
		CategoryID: "cat-x",
	})
	if err != nil {
		t.Fatalf("validate selection failed: %v", err)
	}
	if sel.SpecializationID != "" {
		t.Fatalf("expected no auto-selection with two options, got %q", sel.SpecializationID)
	}
}
