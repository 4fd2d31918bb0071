package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hirepath/hirepath/internal/domain/progress"
	progressmock "github.com/hirepath/hirepath/internal/mocks/domain/progress"
)

func testTime(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestProgressService_SearchDevelopers_ClampsLimit(t *testing.T) {
	repo := progressmock.NewRepository(t)
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	repo.On("Search", mock.Anything, mock.MatchedBy(func(criteria progress.SearchCriteria) bool {
		return criteria.Limit == 50 && criteria.Location == "Jakarta"
	})).Return(nil, nil).Twice()

	rows, err := service.SearchDevelopers(t.Context(), progress.SearchCriteria{Location: " Jakarta ", Limit: 0})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", rows)
	}

	if _, err := service.SearchDevelopers(t.Context(), progress.SearchCriteria{Location: "Jakarta", Limit: 999}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
}

func TestProgressService_SearchDevelopers_RepositoryError(t *testing.T) {
	repo := progressmock.NewRepository(t)
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	repo.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	if _, err := service.SearchDevelopers(t.Context(), progress.SearchCriteria{Limit: 10}); err == nil {
		t.Fatal("expected error to surface")
	}
}

func TestProgressService_GetProgress_DuplicateCleanupFailureIsTolerated(t *testing.T) {
	repo := progressmock.NewRepository(t)
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	rows := []progress.Record{
		{ID: "row-new", UserID: "user-1", UpdatedAt: testTime(12, 10)},
		{ID: "row-old", UserID: "user-1", UpdatedAt: testTime(12, 0)},
	}
	repo.On("ListByUserID", mock.Anything, "user-1").Return(rows, nil).Once()
	repo.On("DeleteByIDs", mock.Anything, []string{"row-old"}).Return(errors.New("lock timeout")).Once()

	rec, found, err := service.GetProgress(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("expected the read to succeed despite cleanup failure, got %v", err)
	}
	if !found || rec.ID != "row-new" {
		t.Fatalf("expected row-new retained, got found=%v id=%s", found, rec.ID)
	}
}
