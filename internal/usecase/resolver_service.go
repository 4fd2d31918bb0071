package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/platform/cache"
)

// Route names the screens the resolver can land a user on.
const (
	RouteLogin               = "/login"
	RouteRoleSelection       = "/role-selection"
	RouteDeveloperOnboarding = "/onboarding/developer"
	RouteClientOnboarding    = "/onboarding/client"
	RouteDashboard           = "/dashboard"
)

var publicRoutes = map[string]struct{}{
	"/":        {},
	RouteLogin: {},
}

// Resolution is the outcome of a routing decision. Redirect is false when the
// requested route already equals the resolved one, which keeps repeated
// resolutions idempotent.
type Resolution struct {
	Route    string
	Redirect bool
}

// RoleSelection is the ephemeral role/category/experience pick cached as a
// resume aid. The progress record is authoritative once it exists.
type RoleSelection struct {
	RoleID            string
	CategoryID        string
	SpecializationID  string
	ExperienceLevelID string
	Flow              progress.Flow
}

// ResumeContext is the explicit resume object handed to clients at app start,
// built from the progress store instead of scattered local-storage reads.
type ResumeContext struct {
	Flow               progress.Flow
	RoleID             string
	CategoryID         string
	ExperienceLevelID  string
	CurrentStep        int
	TotalSteps         int
	Status             progress.Status
	CompletedSteps     []string
	LastOrganizationID string
	LastTeamID         string
}

// ResolverService decides which screen a user should land on from their
// authentication state and persisted progress.
type ResolverService struct {
	progressService *ProgressService
	store           *cache.Store
	logger          *slog.Logger
}

func NewResolverService(progressService *ProgressService, store *cache.Store, logger *slog.Logger) *ResolverService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ResolverService{
		progressService: progressService,
		store:           store,
		logger:          logger,
	}
}

// Resolve maps (auth state, requested route) to the route the user belongs
// on. Mid-onboarding users are pinned to their wizard; completed users are
// pinned to post-onboarding routes; unexpected read failures fall back to
// role selection rather than erroring the navigation.
func (s *ResolverService) Resolve(ctx context.Context, userID string, authenticated bool, requested string) (Resolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.Resolve")
	defer span.End()

	requested = normalizeRoute(requested)

	if !authenticated {
		if _, public := publicRoutes[requested]; public {
			return Resolution{Route: requested}, nil
		}
		return resolutionFor(RouteLogin, requested), nil
	}

	if strings.TrimSpace(userID) == "" {
		return Resolution{}, fmt.Errorf("%w: authenticated user without id", ErrInvalidInput)
	}

	rec, found, err := s.progressService.GetProgress(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "progress read failed during resolve, falling back to role selection", "user_id", userID, "error", err)
		return resolutionFor(RouteRoleSelection, requested), nil
	}

	if !found {
		if sel, ok := s.CachedRoleSelection(ctx, userID); ok {
			return resolutionFor(onboardingRoute(sel.Flow), requested), nil
		}
		return resolutionFor(RouteRoleSelection, requested), nil
	}

	switch rec.Status {
	case progress.StatusInProgress:
		return resolutionFor(onboardingRoute(rec.Flow), requested), nil
	case progress.StatusCompleted:
		if strings.HasPrefix(requested, RouteDashboard) {
			return Resolution{Route: requested}, nil
		}
		return resolutionFor(RouteDashboard, requested), nil
	default:
		// Abandoned records start over from role selection.
		return resolutionFor(RouteRoleSelection, requested), nil
	}
}

// SaveRoleSelection caches the pre-onboarding pick so a reload before the
// first progress write still lands on the right wizard.
func (s *ResolverService) SaveRoleSelection(ctx context.Context, userID string, sel RoleSelection) {
	if strings.TrimSpace(userID) == "" {
		return
	}
	s.store.Set(ctx, roleSelectionKey(userID), sel)
}

func (s *ResolverService) CachedRoleSelection(ctx context.Context, userID string) (RoleSelection, bool) {
	v, ok := s.store.Get(ctx, roleSelectionKey(userID))
	if !ok {
		return RoleSelection{}, false
	}
	sel, ok := v.(RoleSelection)
	return sel, ok
}

// ResumeContext builds the resume object from the authoritative progress
// record plus the convenience entity ids cached by the client-resource flow.
func (s *ResolverService) ResumeContext(ctx context.Context, userID string) (ResumeContext, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResumeContext")
	defer span.End()

	rec, found, err := s.progressService.GetProgress(ctx, userID)
	if err != nil {
		return ResumeContext{}, err
	}
	if !found {
		return ResumeContext{}, fmt.Errorf("%w: onboarding has not started", ErrNotFound)
	}

	out := ResumeContext{
		Flow:              rec.Flow,
		RoleID:            rec.RoleID,
		CategoryID:        rec.CategoryID,
		ExperienceLevelID: rec.ExperienceLevelID,
		CurrentStep:       rec.CurrentStep,
		TotalSteps:        rec.TotalSteps,
		Status:            rec.Status,
		CompletedSteps:    append([]string(nil), rec.CompletedSteps...),
	}
	if v, ok := s.store.Get(ctx, lastOrganizationKey(userID)); ok {
		out.LastOrganizationID, _ = v.(string)
	}
	if v, ok := s.store.Get(ctx, lastTeamKey(userID)); ok {
		out.LastTeamID, _ = v.(string)
	}

	return out, nil
}

func onboardingRoute(flow progress.Flow) string {
	if flow == progress.FlowDeveloper {
		return RouteDeveloperOnboarding
	}
	return RouteClientOnboarding
}

func resolutionFor(resolved, requested string) Resolution {
	return Resolution{Route: resolved, Redirect: resolved != requested}
}

func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
	}
	return route
}

func roleSelectionKey(userID string) string { return "resolver:roleselection:" + userID }

func lastOrganizationKey(userID string) string { return "clientres:lastorg:" + userID }

func lastTeamKey(userID string) string { return "clientres:lastteam:" + userID }
