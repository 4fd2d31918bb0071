package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/domain/wizard"
	"github.com/hirepath/hirepath/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProgressService_GetOrCreate_CreateThenReuse(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	firstNow := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return firstNow }

	created, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "user-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	})
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}

	if created.ID != "progress-001" {
		t.Fatalf("expected id progress-001, got %s", created.ID)
	}
	if created.Stage != "role_selected" || created.CurrentStep != 1 {
		t.Fatalf("expected fresh record at role_selected step 1, got stage=%s step=%d", created.Stage, created.CurrentStep)
	}
	if created.TotalSteps != 5 {
		t.Fatalf("expected 5 total steps for the developer flow, got %d", created.TotalSteps)
	}
	if created.Status != progress.StatusInProgress {
		t.Fatalf("expected in_progress, got %s", created.Status)
	}
	if len(created.CompletedSteps) != 0 {
		t.Fatalf("expected no completed steps, got %v", created.CompletedSteps)
	}
	if !created.CreatedAt.Equal(firstNow) {
		t.Fatalf("expected created_at %v, got %v", firstNow, created.CreatedAt)
	}

	// A second selection reuses the row and refreshes the pick in place.
	reused, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "user-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-data-engineering",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-senior",
	})
	if err != nil {
		t.Fatalf("get or create reuse failed: %v", err)
	}
	if reused.ID != created.ID {
		t.Fatalf("expected the same row on reuse, got %s vs %s", reused.ID, created.ID)
	}
	if reused.CategoryID != "cat-data-engineering" || reused.ExperienceLevelID != "exp-senior" {
		t.Fatalf("expected refreshed selection, got category=%s experience=%s", reused.CategoryID, reused.ExperienceLevelID)
	}

	rows, err := repo.ListByUserID(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list rows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row after reuse, got %d", len(rows))
	}
}

func TestProgressService_GetOrCreate_ClientFlowGetsSentinelExperience(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	rec, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "client-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	})
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if rec.ExperienceLevelID != progress.ExperienceLevelNotApplicable {
		t.Fatalf("expected not-applicable sentinel, got %q", rec.ExperienceLevelID)
	}
	if rec.TotalSteps != 3 {
		t.Fatalf("expected 3 total steps for the client flow, got %d", rec.TotalSteps)
	}
}

func TestProgressService_GetOrCreate_FlowSwitchClampsStepPointer(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	if _, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "user-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if _, err := service.SetCurrentStep(t.Context(), "user-1", 5); err != nil {
		t.Fatalf("set current step failed: %v", err)
	}

	// Re-selecting a shorter flow must pull the pointer back inside its range.
	switched, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "user-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	})
	if err != nil {
		t.Fatalf("get or create switch failed: %v", err)
	}
	if switched.TotalSteps != 3 {
		t.Fatalf("expected 3 total steps after the switch, got %d", switched.TotalSteps)
	}
	if switched.CurrentStep != 3 {
		t.Fatalf("expected the pointer clamped to 3, got %d", switched.CurrentStep)
	}

	// The longer flow keeps the pointer where it was.
	back, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "user-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	})
	if err != nil {
		t.Fatalf("get or create switch back failed: %v", err)
	}
	if back.CurrentStep != 3 || back.TotalSteps != 5 {
		t.Fatalf("expected step 3 of 5 after switching back, got %d of %d", back.CurrentStep, back.TotalSteps)
	}
}

func TestProgressService_GetOrCreate_InvalidInput(t *testing.T) {
	service := NewProgressService(memory.NewProgressRepository(), staticIDGenerator{id: "progress-001"}, discardLogger())

	_, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}

	_, err = service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "user-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.Flow("contractor"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown flow, got %v", err)
	}
}

func TestProgressService_GetProgress_ReconcilesDuplicateRows(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	older := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	newer := older.Add(10 * time.Minute)

	for _, rec := range []progress.Record{
		{
			ID: "row-old", UserID: "user-1", RoleID: memory.RoleIDFreelancer,
			Flow: progress.FlowDeveloper, CurrentStep: 1, TotalSteps: 5,
			Status: progress.StatusInProgress, CreatedAt: older, UpdatedAt: older,
		},
		{
			ID: "row-new", UserID: "user-1", RoleID: memory.RoleIDFreelancer,
			Flow: progress.FlowDeveloper, CurrentStep: 3, TotalSteps: 5,
			Status: progress.StatusInProgress, CreatedAt: older, UpdatedAt: newer,
		},
	} {
		if _, err := repo.Insert(t.Context(), rec); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	rec, found, err := service.GetProgress(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get progress failed: %v", err)
	}
	if !found {
		t.Fatal("expected a record")
	}
	if rec.ID != "row-new" {
		t.Fatalf("expected the most recently updated row to win, got %s", rec.ID)
	}

	rows, err := repo.ListByUserID(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list rows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "row-new" {
		t.Fatalf("expected stale duplicate deleted, got %d rows", len(rows))
	}
}

func TestProgressService_SaveFormData_MapsEnumsAndProjectsSearchColumns(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	if _, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "user-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}

	rec, persisted, err := service.SaveFormData(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{
			Location:           "Jakarta",
			PrimaryStack:       "Go",
			WorkStyle:          "remote",
			SalaryExpectations: "80000-120000",
			SecondarySkills:    []string{"PostgreSQL", "Redis"},
		},
	})
	if err != nil {
		t.Fatalf("save form data failed: %v", err)
	}
	if !persisted {
		t.Fatal("expected the save to hit a row")
	}

	if rec.FormData.Developer == nil {
		t.Fatal("expected developer form data")
	}
	if rec.FormData.Developer.WorkStyle != "Remote" {
		t.Fatalf("expected work style mapped to backend spelling, got %q", rec.FormData.Developer.WorkStyle)
	}
	if rec.Location != "Jakarta" || rec.PrimaryStack != "Go" || rec.WorkStyle != "Remote" {
		t.Fatalf("search columns not projected: location=%q stack=%q style=%q", rec.Location, rec.PrimaryStack, rec.WorkStyle)
	}
	if rec.SalaryMin == nil || *rec.SalaryMin != 80000 || rec.SalaryMax == nil || *rec.SalaryMax != 120000 {
		t.Fatalf("salary bounds not projected: min=%v max=%v", rec.SalaryMin, rec.SalaryMax)
	}
	if len(rec.Skills) != 2 {
		t.Fatalf("skills not projected: %v", rec.Skills)
	}

	// A later blank patch keeps the earlier answers.
	rec, _, err = service.SaveFormData(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{Headline: "Backend Engineer"},
	})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if rec.FormData.Developer.Location != "Jakarta" {
		t.Fatalf("partial save erased location: %q", rec.FormData.Developer.Location)
	}
}

func TestProgressService_SaveFormData_MissingRowIsNoop(t *testing.T) {
	service := NewProgressService(memory.NewProgressRepository(), staticIDGenerator{id: "progress-001"}, discardLogger())

	_, persisted, err := service.SaveFormData(t.Context(), "ghost", progress.FormData{
		Developer: &progress.DeveloperFormData{FullName: "Nobody"},
	})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if persisted {
		t.Fatal("expected persisted=false without a row")
	}
}

func TestProgressService_SetCurrentStep_ClampsToRange(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	if _, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "client-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}

	rec, err := service.SetCurrentStep(t.Context(), "client-1", 99)
	if err != nil {
		t.Fatalf("set current step failed: %v", err)
	}
	if rec.CurrentStep != 3 {
		t.Fatalf("expected clamp to total steps, got %d", rec.CurrentStep)
	}

	rec, err = service.SetCurrentStep(t.Context(), "client-1", -5)
	if err != nil {
		t.Fatalf("set current step failed: %v", err)
	}
	if rec.CurrentStep != 1 {
		t.Fatalf("expected clamp to step 1, got %d", rec.CurrentStep)
	}
}

func TestProgressService_MarkStepCompleted_AppendsOnce(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	if _, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "user-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}

	snapshot := progress.FormData{Developer: &progress.DeveloperFormData{FullName: "Ada Lovelace"}}
	rec, err := service.MarkStepCompleted(t.Context(), "user-1", wizard.StepAccountSetup, snapshot)
	if err != nil {
		t.Fatalf("mark step completed failed: %v", err)
	}
	if len(rec.CompletedSteps) != 1 || rec.CompletedSteps[0] != wizard.StepAccountSetup {
		t.Fatalf("expected account_setup recorded once, got %v", rec.CompletedSteps)
	}
	if rec.FormData.Developer == nil || rec.FormData.Developer.FullName != "Ada Lovelace" {
		t.Fatal("expected snapshot folded into form data")
	}

	rec, err = service.MarkStepCompleted(t.Context(), "user-1", wizard.StepAccountSetup, snapshot)
	if err != nil {
		t.Fatalf("repeated mark failed: %v", err)
	}
	if len(rec.CompletedSteps) != 1 {
		t.Fatalf("expected no duplicate entry, got %v", rec.CompletedSteps)
	}
}

func TestProgressService_StatusTransitions(t *testing.T) {
	repo := memory.NewProgressRepository()
	service := NewProgressService(repo, staticIDGenerator{id: "progress-001"}, discardLogger())

	if _, err := service.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "client-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}

	rec, err := service.CompleteOnboarding(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("complete onboarding failed: %v", err)
	}
	if rec.Status != progress.StatusCompleted || rec.Stage != string(progress.StatusCompleted) {
		t.Fatalf("expected completed record, got status=%s stage=%s", rec.Status, rec.Stage)
	}

	// Completed is terminal.
	if _, err := service.AbandonOnboarding(t.Context(), "client-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput leaving completed, got %v", err)
	}

	// Completing again is idempotent.
	if _, err := service.CompleteOnboarding(t.Context(), "client-1"); err != nil {
		t.Fatalf("repeat complete failed: %v", err)
	}

	if _, err := service.CompleteOnboarding(t.Context(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without a row, got %v", err)
	}
}
