package memory

import (
	"testing"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
)

func intPtr(v int) *int { return &v }

func seedSearchRows(t *testing.T, repo *ProgressRepository) {
	t.Helper()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rows := []progress.Record{
		{
			ID: "row-1", UserID: "dev-1", Flow: progress.FlowDeveloper,
			Location: "Jakarta, Indonesia", PrimaryStack: "Go",
			ExperienceLevel: "exp-senior", WorkStyle: "Remote",
			Availability: progress.AvailabilityAvailable,
			SalaryMin:    intPtr(80000), SalaryMax: intPtr(120000),
			Skills:           []string{"PostgreSQL", "Redis"},
			DomainExperience: []string{"fintech"},
			CreatedAt:        base, UpdatedAt: base.Add(2 * time.Minute),
		},
		{
			ID: "row-2", UserID: "dev-2", Flow: progress.FlowDeveloper,
			Location: "Bandung", PrimaryStack: "TypeScript",
			ExperienceLevel: "exp-mid", WorkStyle: "Hybrid",
			Availability: progress.AvailabilityAvailable,
			SalaryMin:    intPtr(40000), SalaryMax: intPtr(60000),
			Skills:    []string{"React"},
			CreatedAt: base, UpdatedAt: base.Add(time.Minute),
		},
		{
			// Not discoverable: never marked available.
			ID: "row-3", UserID: "dev-3", Flow: progress.FlowDeveloper,
			Location: "Jakarta", Availability: "unavailable",
			CreatedAt: base, UpdatedAt: base.Add(4 * time.Minute),
		},
		{
			ID: "row-4", UserID: "client-1", Flow: progress.FlowClient,
			Location:  "Jakarta",
			CreatedAt: base, UpdatedAt: base.Add(3 * time.Minute),
		},
	}
	for _, rec := range rows {
		if _, err := repo.Insert(t.Context(), rec); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}
}

func TestProgressRepository_Search_LocationIsCaseInsensitiveContains(t *testing.T) {
	repo := NewProgressRepository()
	seedSearchRows(t, repo)

	rows, err := repo.Search(t.Context(), progress.SearchCriteria{Location: "jakarta"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "dev-1" {
		t.Fatalf("expected only the developer row from Jakarta, got %v", rows)
	}
}

func TestProgressRepository_Search_SalaryRangesOverlap(t *testing.T) {
	repo := NewProgressRepository()
	seedSearchRows(t, repo)

	// Budget 50k-90k overlaps both stored ranges.
	rows, err := repo.Search(t.Context(), progress.SearchCriteria{
		SalaryMin: intPtr(50000),
		SalaryMax: intPtr(90000),
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both developer rows, got %d", len(rows))
	}

	// Budget strictly above dev-2's range.
	rows, err = repo.Search(t.Context(), progress.SearchCriteria{SalaryMin: intPtr(70000)})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "dev-1" {
		t.Fatalf("expected only dev-1, got %v", rows)
	}

	// A row without stored bounds never matches a salary filter.
	if _, err := repo.Insert(t.Context(), progress.Record{
		ID: "row-5", UserID: "dev-4", Flow: progress.FlowDeveloper,
		Availability: progress.AvailabilityAvailable,
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	rows, err = repo.Search(t.Context(), progress.SearchCriteria{SalaryMin: intPtr(1)})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	for _, rec := range rows {
		if rec.UserID == "dev-4" {
			t.Fatal("row without salary bounds matched a salary filter")
		}
	}
}

func TestProgressRepository_Search_SkillsAndLimit(t *testing.T) {
	repo := NewProgressRepository()
	seedSearchRows(t, repo)

	rows, err := repo.Search(t.Context(), progress.SearchCriteria{Skills: []string{"Redis", "Kafka"}})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "dev-1" {
		t.Fatalf("expected skill overlap to match dev-1 only, got %v", rows)
	}

	rows, err = repo.Search(t.Context(), progress.SearchCriteria{
		ExperienceLevel: "exp-mid",
		WorkStyle:       "Hybrid",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "dev-2" {
		t.Fatalf("expected exact experience/work-style match, got %v", rows)
	}

	// Most recently updated first, then the limit cuts the tail.
	rows, err = repo.Search(t.Context(), progress.SearchCriteria{Limit: 1})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "dev-1" {
		t.Fatalf("expected the most recent developer row, got %v", rows)
	}
}

func TestProgressRepository_Update_TargetsMostRecentDuplicate(t *testing.T) {
	repo := NewProgressRepository()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for _, rec := range []progress.Record{
		{ID: "row-old", UserID: "user-1", Flow: progress.FlowDeveloper, CurrentStep: 1, UpdatedAt: base},
		{ID: "row-new", UserID: "user-1", Flow: progress.FlowDeveloper, CurrentStep: 3, UpdatedAt: base.Add(time.Minute)},
	} {
		if _, err := repo.Insert(t.Context(), rec); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	step := 4
	updated, matched, err := repo.Update(t.Context(), "user-1", progress.UpdateFields{CurrentStep: &step})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !matched {
		t.Fatal("expected the update to match a row")
	}
	if updated.ID != "row-new" {
		t.Fatalf("expected the most recent duplicate to take the write, got %s", updated.ID)
	}
	if updated.CurrentStep != 4 {
		t.Fatalf("expected current step 4, got %d", updated.CurrentStep)
	}

	rows, err := repo.ListByUserID(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both duplicates kept, got %d", len(rows))
	}
	for _, rec := range rows {
		if rec.ID == "row-old" && rec.CurrentStep != 1 {
			t.Fatalf("stale duplicate was written: step %d", rec.CurrentStep)
		}
	}

	// No row, no match.
	if _, matched, err := repo.Update(t.Context(), "ghost", progress.UpdateFields{CurrentStep: &step}); err != nil || matched {
		t.Fatalf("expected silent miss, got matched=%v err=%v", matched, err)
	}
}

func TestProgressRepository_ClonesAreIsolated(t *testing.T) {
	repo := NewProgressRepository()

	rec := progress.Record{
		ID: "row-1", UserID: "user-1", Flow: progress.FlowDeveloper,
		CompletedSteps: []string{"account_setup"},
		FormData: progress.FormData{Developer: &progress.DeveloperFormData{
			SecondarySkills: []string{"PostgreSQL"},
		}},
	}
	if _, err := repo.Insert(t.Context(), rec); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	rows, err := repo.ListByUserID(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	rows[0].CompletedSteps[0] = "mutated"
	rows[0].FormData.Developer.SecondarySkills[0] = "mutated"

	fresh, err := repo.ListByUserID(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if fresh[0].CompletedSteps[0] != "account_setup" {
		t.Fatal("caller mutation leaked into the stored completed steps")
	}
	if fresh[0].FormData.Developer.SecondarySkills[0] != "PostgreSQL" {
		t.Fatal("caller mutation leaked into the stored form data")
	}
}
