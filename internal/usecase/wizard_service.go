package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/hirepath/hirepath/internal/domain/devprofile"
	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/domain/wizard"
	"github.com/hirepath/hirepath/internal/platform/cache"
	"github.com/hirepath/hirepath/internal/platform/resilience"
)

// clientOnboardingProjector persists the client wizard's answers into the
// plain resource tables once onboarding finishes.
type clientOnboardingProjector interface {
	ProjectOnboarding(ctx context.Context, userID string, form progress.ClientFormData) error
}

type noopClientProjector struct{}

func (noopClientProjector) ProjectOnboarding(context.Context, string, progress.ClientFormData) error {
	return nil
}

// onboardingEventPublisher fans a finished onboarding out to downstream
// consumers (search indexing, notifications). Optional and best-effort.
type onboardingEventPublisher interface {
	PublishOnboardingCompleted(ctx context.Context, rec progress.Record) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishOnboardingCompleted(context.Context, progress.Record) error {
	return nil
}

// WizardService drives the fixed step sequence per flow. The persisted
// current_step is the furthest step reached; the view index a user navigated
// back to lives only in the session cache, so a resume after a crash lands on
// the furthest step, not the last-viewed one.
type WizardService struct {
	progressService *ProgressService
	profileRepo     devprofile.Repository
	clientProjector clientOnboardingProjector
	events          onboardingEventPublisher
	sessions        *cache.Store
	logger          *slog.Logger
	completeFlight  resilience.SingleFlight
}

func NewWizardService(
	progressService *ProgressService,
	profileRepo devprofile.Repository,
	clientProjector clientOnboardingProjector,
	events onboardingEventPublisher,
	sessions *cache.Store,
	logger *slog.Logger,
) *WizardService {
	if logger == nil {
		logger = slog.Default()
	}
	projector := clientOnboardingProjector(noopClientProjector{})
	if clientProjector != nil {
		projector = clientProjector
	}
	publisher := onboardingEventPublisher(noopEventPublisher{})
	if events != nil {
		publisher = events
	}

	return &WizardService{
		progressService: progressService,
		profileRepo:     profileRepo,
		clientProjector: projector,
		events:          publisher,
		sessions:        sessions,
		logger:          logger,
	}
}

// WizardState is the resolved position of a user inside their wizard.
type WizardState struct {
	Record        progress.Record
	Steps         []wizard.Step
	ViewIndex     int
	Advanced      bool
	MissingFields []string
}

func (s WizardState) CurrentStepName() string {
	if s.ViewIndex >= 0 && s.ViewIndex < len(s.Steps) {
		return s.Steps[s.ViewIndex].Name
	}
	return ""
}

// State resolves the user's position. The persisted 1-based pointer becomes a
// 0-based index (out of range falls back to 0); a cached back-navigation
// below the furthest step is honored for this session only.
func (s *WizardService) State(ctx context.Context, userID string) (WizardState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WizardService.State")
	defer span.End()

	rec, found, err := s.progressService.GetProgress(ctx, userID)
	if err != nil {
		return WizardState{}, err
	}
	if !found {
		return WizardState{}, fmt.Errorf("%w: onboarding has not started", ErrNotFound)
	}

	furthest := wizard.ViewIndex(rec.CurrentStep, rec.TotalSteps)
	view := furthest
	if cached, ok := s.sessions.Get(ctx, s.sessionKey(userID)); ok {
		if idx, isInt := cached.(int); isInt && idx >= 0 && idx < furthest {
			view = idx
		}
	}

	return WizardState{
		Record:    rec,
		Steps:     wizard.Steps(rec.Flow),
		ViewIndex: view,
	}, nil
}

// SaveFields persists a partial form patch. Failures are logged and swallowed
// so autosaves never block the user; the bool reports whether a row was
// actually written.
func (s *WizardService) SaveFields(ctx context.Context, userID string, patch progress.FormData) (progress.Record, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WizardService.SaveFields")
	defer span.End()

	rec, persisted, err := s.progressService.SaveFormData(ctx, userID, patch)
	if err != nil {
		s.logger.WarnContext(ctx, "wizard field save failed", "user_id", userID, "error", err)
		return progress.Record{}, false
	}

	return rec, persisted
}

// Advance runs the required-field gate for the current step and, when it
// passes, records the step as completed and moves the persisted pointer one
// step forward. A failed gate is a no-op: same step, unchanged counters.
func (s *WizardService) Advance(ctx context.Context, userID string, snapshot progress.FormData) (WizardState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WizardService.Advance")
	defer span.End()

	state, err := s.State(ctx, userID)
	if err != nil {
		return WizardState{}, err
	}
	if state.Record.Status != progress.StatusInProgress {
		return WizardState{}, fmt.Errorf("%w: onboarding is not in progress", ErrInvalidInput)
	}
	if state.ViewIndex >= len(state.Steps)-1 {
		return WizardState{}, fmt.Errorf("%w: the final step is finished via complete", ErrInvalidInput)
	}

	// The snapshot is persisted before gating, matching save-on-every-change:
	// partially filled steps keep their data even when Next stays disabled.
	rec, persisted := s.SaveFields(ctx, userID, snapshot)
	if !persisted {
		rec = state.Record
	}

	if missing := wizard.MissingFields(rec.Flow, state.ViewIndex, rec.FormData); len(missing) > 0 {
		state.Record = rec
		state.MissingFields = missing
		return state, nil
	}

	stepName := state.Steps[state.ViewIndex].Name
	if _, err := s.progressService.MarkStepCompleted(ctx, userID, stepName, snapshot); err != nil {
		return WizardState{}, err
	}

	// Re-advancing from a backed-to step must not pull the persisted pointer
	// below the furthest step already reached.
	next := state.ViewIndex + 2 // next 1-based step
	if state.Record.CurrentStep > next {
		next = state.Record.CurrentStep
	}
	updated, err := s.progressService.SetCurrentStep(ctx, userID, next)
	if err != nil {
		return WizardState{}, err
	}

	view := state.ViewIndex + 1
	if furthest := wizard.ViewIndex(updated.CurrentStep, updated.TotalSteps); view > furthest {
		view = furthest
	}
	s.sessions.Set(ctx, s.sessionKey(userID), view)

	return WizardState{
		Record:    updated,
		Steps:     state.Steps,
		ViewIndex: view,
		Advanced:  true,
	}, nil
}

// Back moves the session view index one step toward the start. The persisted
// pointer is deliberately untouched.
func (s *WizardService) Back(ctx context.Context, userID string) (WizardState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WizardService.Back")
	defer span.End()

	state, err := s.State(ctx, userID)
	if err != nil {
		return WizardState{}, err
	}

	if state.ViewIndex > 0 {
		state.ViewIndex--
	}
	s.sessions.Set(ctx, s.sessionKey(userID), state.ViewIndex)

	return state, nil
}

// Complete gates the final step, transitions the record to completed and runs
// the terminal projections best-effort. Concurrent duplicate submissions
// collapse onto a single in-flight completion.
func (s *WizardService) Complete(ctx context.Context, userID string) (progress.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WizardService.Complete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progress.Record{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	v, err, _ := s.completeFlight.Do("wizard:complete:"+userID, func() (any, error) {
		return s.completeOnce(ctx, userID)
	})
	if err != nil {
		return progress.Record{}, err
	}

	rec, _ := v.(progress.Record)
	return rec, nil
}

func (s *WizardService) completeOnce(ctx context.Context, userID string) (progress.Record, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return progress.Record{}, err
	}
	if state.Record.Status == progress.StatusCompleted {
		return state.Record, nil
	}

	finalIndex := len(state.Steps) - 1
	if missing := wizard.MissingFields(state.Record.Flow, finalIndex, state.Record.FormData); len(missing) > 0 {
		return progress.Record{}, fmt.Errorf("%w: final step is missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	if _, err := s.progressService.MarkStepCompleted(ctx, userID, state.Steps[finalIndex].Name, progress.FormData{}); err != nil {
		return progress.Record{}, err
	}

	rec, err := s.progressService.CompleteOnboarding(ctx, userID)
	if err != nil {
		return progress.Record{}, err
	}

	// Terminal side effects must never block leaving the wizard; failures are
	// logged for later reconciliation.
	var effects conc.WaitGroup
	effects.Go(func() {
		if rec.Flow == progress.FlowDeveloper {
			if err := s.profileRepo.Upsert(ctx, buildDeveloperProfile(rec)); err != nil {
				s.logger.ErrorContext(ctx, "developer profile projection failed", "user_id", userID, "error", err)
			}
			return
		}
		if rec.FormData.Client != nil {
			if err := s.clientProjector.ProjectOnboarding(ctx, userID, *rec.FormData.Client); err != nil {
				s.logger.ErrorContext(ctx, "client resource projection failed", "user_id", userID, "error", err)
			}
		}
	})
	effects.Go(func() {
		if err := s.events.PublishOnboardingCompleted(ctx, rec); err != nil {
			s.logger.ErrorContext(ctx, "onboarding completed event publish failed", "user_id", userID, "error", err)
		}
	})
	effects.Wait()

	s.sessions.Delete(ctx, s.sessionKey(userID))

	return rec, nil
}

func (s *WizardService) sessionKey(userID string) string {
	return "wizard:view:" + userID
}

func buildDeveloperProfile(rec progress.Record) devprofile.Profile {
	p := devprofile.Profile{
		UserID:           rec.UserID,
		Location:         rec.Location,
		PrimaryStack:     rec.PrimaryStack,
		ExperienceLevel:  rec.ExperienceLevel,
		WorkStyle:        rec.WorkStyle,
		Availability:     rec.Availability,
		SalaryMin:        rec.SalaryMin,
		SalaryMax:        rec.SalaryMax,
		Skills:           append([]string(nil), rec.Skills...),
		DomainExperience: append([]string(nil), rec.DomainExperience...),
	}
	if rec.FormData.Developer != nil {
		p.FullName = rec.FormData.Developer.FullName
		p.Headline = rec.FormData.Developer.Headline
	}
	return p
}
