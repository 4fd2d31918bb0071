package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/infrastructure/repository/memory"
	"github.com/hirepath/hirepath/internal/platform/cache"
)

type resolverFixture struct {
	resolver *ResolverService
	progress *ProgressService
	store    *cache.Store
}

func newResolverFixture(t *testing.T) resolverFixture {
	t.Helper()

	logger := discardLogger()
	progressSvc := NewProgressService(memory.NewProgressRepository(), staticIDGenerator{id: "progress-001"}, logger)
	store := cache.NewStore(time.Minute)

	return resolverFixture{
		resolver: NewResolverService(progressSvc, store, logger),
		progress: progressSvc,
		store:    store,
	}
}

func TestResolverService_Resolve_Unauthenticated(t *testing.T) {
	f := newResolverFixture(t)

	res, err := f.resolver.Resolve(t.Context(), "", false, "/")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != "/" || res.Redirect {
		t.Fatalf("expected public route passthrough, got %+v", res)
	}

	res, err = f.resolver.Resolve(t.Context(), "", false, "/dashboard")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteLogin || !res.Redirect {
		t.Fatalf("expected redirect to login, got %+v", res)
	}

	// Requesting login while logged out is not a redirect.
	res, err = f.resolver.Resolve(t.Context(), "", false, "/login/")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteLogin || res.Redirect {
		t.Fatalf("expected idempotent login resolution, got %+v", res)
	}
}

func TestResolverService_Resolve_AuthenticatedWithoutProgress(t *testing.T) {
	f := newResolverFixture(t)

	res, err := f.resolver.Resolve(t.Context(), "user-1", true, "/dashboard")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteRoleSelection || !res.Redirect {
		t.Fatalf("expected role selection without progress, got %+v", res)
	}

	// A cached role selection lands on the matching wizard before the first
	// progress write exists.
	f.resolver.SaveRoleSelection(t.Context(), "user-1", RoleSelection{
		RoleID: memory.RoleIDFreelancer,
		Flow:   progress.FlowDeveloper,
	})
	res, err = f.resolver.Resolve(t.Context(), "user-1", true, "/dashboard")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteDeveloperOnboarding {
		t.Fatalf("expected developer onboarding from cached selection, got %+v", res)
	}

	if _, err := f.resolver.Resolve(t.Context(), "  ", true, "/dashboard"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for authenticated user without id, got %v", err)
	}
}

func TestResolverService_Resolve_PinsByStatus(t *testing.T) {
	f := newResolverFixture(t)

	if _, err := f.progress.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "client-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}

	res, err := f.resolver.Resolve(t.Context(), "client-1", true, "/dashboard")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteClientOnboarding || !res.Redirect {
		t.Fatalf("expected mid-onboarding pin to the client wizard, got %+v", res)
	}

	// Asking for the wizard you are in is not a redirect.
	res, err = f.resolver.Resolve(t.Context(), "client-1", true, RouteClientOnboarding)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Redirect {
		t.Fatalf("expected idempotent resolution, got %+v", res)
	}

	if _, err := f.progress.CompleteOnboarding(t.Context(), "client-1"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	res, err = f.resolver.Resolve(t.Context(), "client-1", true, RouteClientOnboarding)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteDashboard || !res.Redirect {
		t.Fatalf("expected completed user pinned to dashboard, got %+v", res)
	}

	// Dashboard sub-routes pass through for completed users.
	res, err = f.resolver.Resolve(t.Context(), "client-1", true, "/dashboard/settings")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != "/dashboard/settings" || res.Redirect {
		t.Fatalf("expected dashboard sub-route passthrough, got %+v", res)
	}
}

func TestResolverService_Resolve_AbandonedStartsOver(t *testing.T) {
	f := newResolverFixture(t)

	if _, err := f.progress.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:            "dev-1",
		RoleID:            memory.RoleIDFreelancer,
		CategoryID:        "cat-software-dev",
		Flow:              progress.FlowDeveloper,
		ExperienceLevelID: "exp-mid",
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if _, err := f.progress.AbandonOnboarding(t.Context(), "dev-1"); err != nil {
		t.Fatalf("abandon failed: %v", err)
	}

	res, err := f.resolver.Resolve(t.Context(), "dev-1", true, RouteDeveloperOnboarding)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Route != RouteRoleSelection || !res.Redirect {
		t.Fatalf("expected abandoned record to start over, got %+v", res)
	}
}

func TestResolverService_ResumeContext(t *testing.T) {
	f := newResolverFixture(t)

	if _, err := f.resolver.ResumeContext(t.Context(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without progress, got %v", err)
	}

	if _, err := f.progress.GetOrCreate(t.Context(), GetOrCreateProgressInput{
		UserID:     "client-1",
		RoleID:     memory.RoleIDClient,
		CategoryID: "cat-company-hiring",
		Flow:       progress.FlowClient,
	}); err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	f.store.Set(t.Context(), "clientres:lastorg:client-1", "org-42")
	f.store.Set(t.Context(), "clientres:lastteam:client-1", "team-7")

	resume, err := f.resolver.ResumeContext(t.Context(), "client-1")
	if err != nil {
		t.Fatalf("resume context failed: %v", err)
	}
	if resume.Flow != progress.FlowClient || resume.CurrentStep != 1 || resume.TotalSteps != 3 {
		t.Fatalf("unexpected resume context: %+v", resume)
	}
	if resume.ExperienceLevelID != progress.ExperienceLevelNotApplicable {
		t.Fatalf("expected sentinel experience level, got %q", resume.ExperienceLevelID)
	}
	if resume.LastOrganizationID != "org-42" || resume.LastTeamID != "team-7" {
		t.Fatalf("expected cached resource ids, got org=%q team=%q", resume.LastOrganizationID, resume.LastTeamID)
	}
}
