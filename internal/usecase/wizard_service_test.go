package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/domain/wizard"
	"github.com/hirepath/hirepath/internal/infrastructure/repository/memory"
	"github.com/hirepath/hirepath/internal/platform/cache"
)

type capturingPublisher struct {
	mu      sync.Mutex
	records []progress.Record
}

func (p *capturingPublisher) PublishOnboardingCompleted(_ context.Context, rec progress.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, rec)
	return nil
}

func (p *capturingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.records)
}

type wizardFixture struct {
	wizard    *WizardService
	progress  *ProgressService
	profiles  *memory.DeveloperProfileRepository
	resources *ClientResourceService
	personas  *memory.HiringPersonaRepository
	publisher *capturingPublisher
	sessions  *cache.Store
}

func newWizardFixture(t *testing.T) wizardFixture {
	t.Helper()

	logger := discardLogger()
	progressSvc := NewProgressService(memory.NewProgressRepository(), staticIDGenerator{id: "progress-001"}, logger)

	sessions := cache.NewStore(time.Minute)
	profiles := memory.NewDeveloperProfileRepository()
	personas := memory.NewHiringPersonaRepository()
	resources := NewClientResourceService(
		memory.NewOrganizationRepository(),
		memory.NewTeamRepository(),
		personas,
		sessions,
		logger,
	)
	publisher := &capturingPublisher{}

	return wizardFixture{
		wizard:    NewWizardService(progressSvc, profiles, resources, publisher, sessions, logger),
		progress:  progressSvc,
		profiles:  profiles,
		resources: resources,
		personas:  personas,
		publisher: publisher,
		sessions:  sessions,
	}
}

func startDeveloperOnboarding(t *testing.T, f wizardFixture, userID string) {
	t.Helper()
	if _, err := f.progress.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            userID,
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	}); err != nil {
		t.Fatalf("start developer onboarding failed: %v", err)
	}
}

func startClientOnboarding(t *testing.T, f wizardFixture, userID string) {
	t.Helper()
	if _, err := f.progress.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     userID,
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	}); err != nil {
		t.Fatalf("start client onboarding failed: %v", err)
	}
}

func TestWizardService_Advance_GateBlocksUntilFieldsFilled(t *testing.T) {
	f := newWizardFixture(t)
	startDeveloperOnboarding(t, f, "user-1")

	state, err := f.wizard.Advance(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{Headline: "Backend Engineer"},
	})
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if state.Advanced {
		t.Fatal("expected a failed gate to stay on the step")
	}
	if len(state.MissingFields) != 1 || state.MissingFields[0] != "full_name" {
		t.Fatalf("expected full_name reported missing, got %v", state.MissingFields)
	}
	if state.Record.CurrentStep != 1 {
		t.Fatalf("failed gate moved the persisted pointer to %d", state.Record.CurrentStep)
	}
	// The partial answers are kept even though Next stayed disabled.
	if state.Record.FormData.Developer == nil || state.Record.FormData.Developer.Headline != "Backend Engineer" {
		t.Fatal("expected the snapshot persisted despite the failed gate")
	}

	state, err = f.wizard.Advance(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{FullName: "Ada Lovelace"},
	})
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if !state.Advanced || state.ViewIndex != 1 {
		t.Fatalf("expected advance to step 2, got advanced=%v view=%d", state.Advanced, state.ViewIndex)
	}
	if state.Record.CurrentStep != 2 {
		t.Fatalf("expected persisted pointer at 2, got %d", state.Record.CurrentStep)
	}
	if !state.Record.HasCompletedStep(wizard.StepAccountSetup) {
		t.Fatalf("expected account_setup completed, got %v", state.Record.CompletedSteps)
	}
	if state.CurrentStepName() != wizard.StepIdentity {
		t.Fatalf("expected identity step next, got %s", state.CurrentStepName())
	}
}

func TestWizardService_Back_IsSessionOnly(t *testing.T) {
	f := newWizardFixture(t)
	startDeveloperOnboarding(t, f, "user-1")

	if _, err := f.wizard.Advance(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{FullName: "Ada Lovelace"},
	}); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	state, err := f.wizard.Back(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if state.ViewIndex != 0 {
		t.Fatalf("expected view back at step 1, got index %d", state.ViewIndex)
	}
	if state.Record.CurrentStep != 2 {
		t.Fatalf("back must not move the persisted pointer, got %d", state.Record.CurrentStep)
	}

	// The cached back-navigation is honored on the next read.
	state, err = f.wizard.State(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if state.ViewIndex != 0 {
		t.Fatalf("expected session view honored, got index %d", state.ViewIndex)
	}

	// A fresh session (no cached view) resumes at the furthest step.
	f.sessions.DeletePrefix(t.Context(), "wizard:view:")
	state, err = f.wizard.State(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if state.ViewIndex != 1 {
		t.Fatalf("expected resume at furthest step, got index %d", state.ViewIndex)
	}

	// Back at the first step stays put.
	f.sessions.Set(t.Context(), "wizard:view:user-1", 0)
	state, err = f.wizard.Back(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if state.ViewIndex != 0 {
		t.Fatalf("expected view pinned at 0, got %d", state.ViewIndex)
	}
}

func TestWizardService_Advance_AfterBackKeepsFurthestStep(t *testing.T) {
	f := newWizardFixture(t)
	startDeveloperOnboarding(t, f, "user-1")

	if _, err := f.wizard.Advance(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{FullName: "Ada Lovelace"},
	}); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	state, err := f.wizard.Advance(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{IdentityDocType: "passport"},
	})
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if state.Record.CurrentStep != 3 {
		t.Fatalf("expected persisted pointer at 3, got %d", state.Record.CurrentStep)
	}

	for i := 0; i < 2; i++ {
		if state, err = f.wizard.Back(t.Context(), "user-1"); err != nil {
			t.Fatalf("back failed: %v", err)
		}
	}
	if state.ViewIndex != 0 {
		t.Fatalf("expected view back at step 1, got index %d", state.ViewIndex)
	}

	// Re-advancing through an already-satisfied step moves the view forward
	// without pulling the persisted pointer below the furthest step.
	state, err = f.wizard.Advance(t.Context(), "user-1", progress.FormData{
		Developer: &progress.DeveloperFormData{Headline: "Backend Engineer"},
	})
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if !state.Advanced || state.ViewIndex != 1 {
		t.Fatalf("expected view at step 2, got advanced=%v view=%d", state.Advanced, state.ViewIndex)
	}
	if state.Record.CurrentStep != 3 {
		t.Fatalf("re-advance regressed the persisted pointer to %d", state.Record.CurrentStep)
	}

	// A fresh session still resumes at the furthest step.
	f.sessions.DeletePrefix(t.Context(), "wizard:view:")
	state, err = f.wizard.State(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if state.ViewIndex != 2 {
		t.Fatalf("expected resume at furthest step, got index %d", state.ViewIndex)
	}
}

func TestWizardService_Advance_FinalStepRejected(t *testing.T) {
	f := newWizardFixture(t)
	startClientOnboarding(t, f, "client-1")

	if _, err := f.progress.SetCurrentStep(t.Context(), "client-1", 3); err != nil {
		t.Fatalf("set current step failed: %v", err)
	}

	_, err := f.wizard.Advance(t.Context(), "client-1", progress.FormData{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on the final step, got %v", err)
	}
}

func TestWizardService_Complete_ClientFlowProjectsResources(t *testing.T) {
	f := newWizardFixture(t)
	startClientOnboarding(t, f, "client-1")

	if _, err := f.wizard.Advance(t.Context(), "client-1", progress.FormData{
		Client: &progress.ClientFormData{OrganizationName: "Acme", OrganizationSize: "11-50", Industry: "Fintech"},
	}); err != nil {
		t.Fatalf("organization step failed: %v", err)
	}
	if _, err := f.wizard.Advance(t.Context(), "client-1", progress.FormData{
		Client: &progress.ClientFormData{TeamTitle: "Platform", StructurePreference: "structured"},
	}); err != nil {
		t.Fatalf("team step failed: %v", err)
	}
	if _, persisted := f.wizard.SaveFields(t.Context(), "client-1", progress.FormData{
		Client: &progress.ClientFormData{PersonaTitle: "Senior Backend Engineer", PersonaSeniority: "senior"},
	}); !persisted {
		t.Fatal("persona save did not persist")
	}

	rec, err := f.wizard.Complete(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if rec.Status != progress.StatusCompleted {
		t.Fatalf("expected completed record, got %s", rec.Status)
	}
	if !rec.HasCompletedStep(wizard.StepHiringDetail) {
		t.Fatalf("expected hiring_detail recorded, got %v", rec.CompletedSteps)
	}

	orgs, err := f.resources.ListOrganizations(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("list organizations failed: %v", err)
	}
	if len(orgs) != 1 || orgs[0].Name != "Acme" {
		t.Fatalf("expected projected organization, got %v", orgs)
	}
	teams, err := f.resources.ListTeams(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 1 || teams[0].OrganizationID != orgs[0].ID {
		t.Fatalf("expected team linked to the projected organization, got %v", teams)
	}
	if teams[0].StructurePreference != "Structured" {
		t.Fatalf("expected backend enum spelling on the team, got %q", teams[0].StructurePreference)
	}
	personas, err := f.resources.ListHiringPersonas(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("list personas failed: %v", err)
	}
	if len(personas) != 1 || personas[0].TeamID != teams[0].ID {
		t.Fatalf("expected persona linked to the projected team, got %v", personas)
	}

	if f.publisher.count() != 1 {
		t.Fatalf("expected one completion event, got %d", f.publisher.count())
	}

	// Completing again is idempotent: no second projection, no second event.
	again, err := f.wizard.Complete(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("repeat complete failed: %v", err)
	}
	if again.Status != progress.StatusCompleted {
		t.Fatalf("expected completed on repeat, got %s", again.Status)
	}
	orgs, _ = f.resources.ListOrganizations(t.Context(), "client-1")
	if len(orgs) != 1 {
		t.Fatalf("repeat complete projected again: %d organizations", len(orgs))
	}
	if f.publisher.count() != 1 {
		t.Fatalf("repeat complete published again: %d events", f.publisher.count())
	}
}

func TestWizardService_Complete_GatesFinalStep(t *testing.T) {
	f := newWizardFixture(t)
	startClientOnboarding(t, f, "client-1")

	_, err := f.wizard.Complete(t.Context(), "client-1")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput with persona_title missing, got %v", err)
	}

	if _, err := f.wizard.Complete(t.Context(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank user, got %v", err)
	}
	if _, err := f.wizard.Complete(t.Context(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without a row, got %v", err)
	}
}

func TestWizardService_Complete_DeveloperFlowUpsertsProfile(t *testing.T) {
	f := newWizardFixture(t)
	startDeveloperOnboarding(t, f, "dev-1")

	if _, persisted := f.wizard.SaveFields(t.Context(), "dev-1", progress.FormData{
		Developer: &progress.DeveloperFormData{
			FullName:           "Ada Lovelace",
			Headline:           "Backend Engineer",
			Location:           "Jakarta",
			IdentityDocType:    "passport",
			PrimaryStack:       "Go",
			SecondarySkills:    []string{"PostgreSQL"},
			CommunicationStyle: "async",
			WorkStyle:          "remote",
			Availability:       "available",
			SalaryExpectations: "80000-120000",
		},
	}); !persisted {
		t.Fatal("developer form save did not persist")
	}
	if _, err := f.progress.SetCurrentStep(t.Context(), "dev-1", 5); err != nil {
		t.Fatalf("set current step failed: %v", err)
	}

	rec, err := f.wizard.Complete(t.Context(), "dev-1")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if rec.Status != progress.StatusCompleted {
		t.Fatalf("expected completed record, got %s", rec.Status)
	}

	profile, found, err := f.profiles.GetByUserID(t.Context(), "dev-1")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if !found {
		t.Fatal("expected a projected developer profile")
	}
	if profile.FullName != "Ada Lovelace" || profile.PrimaryStack != "Go" {
		t.Fatalf("unexpected profile projection: %+v", profile)
	}
	if profile.WorkStyle != "Remote" {
		t.Fatalf("expected mapped work style on the profile, got %q", profile.WorkStyle)
	}
	if profile.SalaryMin == nil || *profile.SalaryMin != 80000 {
		t.Fatalf("expected salary bounds carried over, got %v", profile.SalaryMin)
	}
}
