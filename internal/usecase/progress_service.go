package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/domain/wizard"
	"github.com/hirepath/hirepath/internal/platform/id"
)

// ProgressService owns the onboarding-progress record: creation, partial
// saves, step completion, search and the terminal status transitions. It is
// also where the duplicate-row anomaly gets reconciled.
type ProgressService struct {
	repo   progress.Repository
	idGen  id.Generator
	logger *slog.Logger
	now    func() time.Time
}

func NewProgressService(repo progress.Repository, idGen id.Generator, logger *slog.Logger) *ProgressService {
	if logger == nil {
		logger = slog.Default()
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}

	return &ProgressService{
		repo:   repo,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

// GetProgress returns the user's progress record. When more than one row
// exists (two rapid create-if-missing calls can both insert), the most
// recently updated row wins and the rest are deleted best-effort before the
// read is trusted.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (progress.Record, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.GetProgress")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progress.Record{}, false, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	rows, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return progress.Record{}, false, fmt.Errorf("list progress rows: %w", err)
	}
	if len(rows) == 0 {
		return progress.Record{}, false, nil
	}
	if len(rows) == 1 {
		return rows[0], true, nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
			return rows[i].UpdatedAt.After(rows[j].UpdatedAt)
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	kept := rows[0]
	staleIDs := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		staleIDs = append(staleIDs, row.ID)
	}

	s.logger.WarnContext(ctx, "duplicate progress rows detected, reconciling",
		"user_id", userID,
		"kept_id", kept.ID,
		"stale_count", len(staleIDs),
	)

	// Cleanup is a compensating control, not a precondition: the read
	// proceeds with the retained row even when the delete fails.
	if err := s.repo.DeleteByIDs(ctx, staleIDs); err != nil {
		s.logger.WarnContext(ctx, "duplicate progress cleanup failed", "user_id", userID, "error", err)
	}

	return kept, true, nil
}

type GetOrCreateProgressInput struct {
	UserID            string
	RoleID            string
	CategoryID        string
	Flow              progress.Flow
	ExperienceLevelID string
}

// GetOrCreate reuses an existing record (refreshing the role selection on it)
// or inserts a fresh one pointed at step 1. Client-flow records with no
// experience tier get the not-applicable sentinel instead of staying empty.
func (s *ProgressService) GetOrCreate(ctx context.Context, input GetOrCreateProgressInput) (progress.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.GetOrCreate")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.RoleID = strings.TrimSpace(input.RoleID)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.ExperienceLevelID = strings.TrimSpace(input.ExperienceLevelID)

	if input.UserID == "" {
		return progress.Record{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.RoleID == "" {
		return progress.Record{}, fmt.Errorf("%w: role_id is required", ErrInvalidInput)
	}
	if input.CategoryID == "" {
		return progress.Record{}, fmt.Errorf("%w: category_id is required", ErrInvalidInput)
	}
	if !input.Flow.Valid() {
		return progress.Record{}, fmt.Errorf("%w: unknown onboarding flow %q", ErrInvalidInput, input.Flow)
	}
	if input.ExperienceLevelID == "" && input.Flow != progress.FlowDeveloper {
		input.ExperienceLevelID = progress.ExperienceLevelNotApplicable
	}

	existing, found, err := s.GetProgress(ctx, input.UserID)
	if err != nil {
		return progress.Record{}, err
	}
	if found {
		totalSteps := input.Flow.TotalSteps()
		fields := progress.UpdateFields{
			RoleID:            &input.RoleID,
			CategoryID:        &input.CategoryID,
			ExperienceLevelID: optionalUpdate(input.ExperienceLevelID),
			Flow:              &input.Flow,
			TotalSteps:        &totalSteps,
		}
		// Switching to a shorter flow must keep the pointer inside the new
		// step range.
		if existing.CurrentStep > totalSteps {
			fields.CurrentStep = &totalSteps
		}
		updated, matched, err := s.repo.Update(ctx, input.UserID, fields)
		if err != nil {
			return progress.Record{}, fmt.Errorf("refresh progress row: %w", err)
		}
		if !matched {
			return existing, nil
		}
		return updated, nil
	}

	rowID, err := s.idGen.NewID()
	if err != nil {
		return progress.Record{}, fmt.Errorf("generate progress id: %w", err)
	}

	now := s.now().UTC()
	rec := progress.Record{
		ID:                rowID,
		UserID:            input.UserID,
		RoleID:            input.RoleID,
		CategoryID:        input.CategoryID,
		ExperienceLevelID: input.ExperienceLevelID,
		Flow:              input.Flow,
		Stage:             "role_selected",
		CurrentStep:       1,
		TotalSteps:        input.Flow.TotalSteps(),
		CompletedSteps:    []string{},
		Status:            progress.StatusInProgress,
		LastActivity:      now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	inserted, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return progress.Record{}, fmt.Errorf("insert progress row: %w", err)
	}

	return inserted, nil
}

// SaveFormData merges a partial form patch into the record and keeps the
// searchable projection in sync. A missing row is a no-op success so that
// saves racing a teardown never surface as failures.
func (s *ProgressService) SaveFormData(ctx context.Context, userID string, patch progress.FormData) (progress.Record, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.SaveFormData")
	defer span.End()

	rec, found, err := s.GetProgress(ctx, userID)
	if err != nil {
		return progress.Record{}, false, err
	}
	if !found {
		return progress.Record{}, false, nil
	}

	patch = s.applyEnumMappings(ctx, patch)
	merged := wizard.Reduce(rec.Flow, rec.FormData, patch)

	fields := progress.UpdateFields{FormData: &merged}
	if rec.Flow == progress.FlowDeveloper && merged.Developer != nil {
		searchable := progress.ExtractSearchable(*merged.Developer)
		fields.Location = searchable.Location
		fields.PrimaryStack = searchable.PrimaryStack
		fields.ExperienceLevel = searchable.ExperienceLevel
		fields.SalaryMin = searchable.SalaryMin
		fields.SalaryMax = searchable.SalaryMax
		fields.WorkStyle = searchable.WorkStyle
		fields.Availability = searchable.Availability
		fields.Skills = searchable.Skills
		fields.DomainExperience = searchable.DomainExperience
	}

	updated, matched, err := s.repo.Update(ctx, userID, fields)
	if err != nil {
		return progress.Record{}, false, fmt.Errorf("save form data: %w", err)
	}
	if !matched {
		return progress.Record{}, false, nil
	}

	return updated, true, nil
}

// SetCurrentStep moves the persisted step pointer. It refuses to leave the
// [1, total_steps] range rather than erroring the transition.
func (s *ProgressService) SetCurrentStep(ctx context.Context, userID string, step int) (progress.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.SetCurrentStep")
	defer span.End()

	rec, found, err := s.GetProgress(ctx, userID)
	if err != nil {
		return progress.Record{}, err
	}
	if !found {
		return progress.Record{}, fmt.Errorf("%w: no progress row for user", ErrNotFound)
	}

	if step < 1 {
		step = 1
	}
	if step > rec.TotalSteps {
		step = rec.TotalSteps
	}

	updated, matched, err := s.repo.Update(ctx, userID, progress.UpdateFields{CurrentStep: &step})
	if err != nil {
		return progress.Record{}, fmt.Errorf("set current step: %w", err)
	}
	if !matched {
		return rec, nil
	}

	return updated, nil
}

// MarkStepCompleted appends the step name to completed_steps exactly once and
// folds the step's snapshot into the form blob. The step pointer is left
// alone; advancing it is the wizard's call to make.
func (s *ProgressService) MarkStepCompleted(ctx context.Context, userID, stepName string, snapshot progress.FormData) (progress.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.MarkStepCompleted")
	defer span.End()

	stepName = strings.TrimSpace(stepName)
	if stepName == "" {
		return progress.Record{}, fmt.Errorf("%w: step name is required", ErrInvalidInput)
	}

	rec, found, err := s.GetProgress(ctx, userID)
	if err != nil {
		return progress.Record{}, err
	}
	if !found {
		return progress.Record{}, fmt.Errorf("%w: no progress row for user", ErrNotFound)
	}

	merged := wizard.Reduce(rec.Flow, rec.FormData, s.applyEnumMappings(ctx, snapshot))
	fields := progress.UpdateFields{FormData: &merged}

	if !rec.HasCompletedStep(stepName) {
		steps := append(append([]string(nil), rec.CompletedSteps...), stepName)
		fields.CompletedSteps = &steps
	}

	updated, matched, err := s.repo.Update(ctx, userID, fields)
	if err != nil {
		return progress.Record{}, fmt.Errorf("mark step completed: %w", err)
	}
	if !matched {
		return rec, nil
	}

	return updated, nil
}

// SearchDevelopers filters developer records on the denormalized columns. No
// match is an empty slice, never an error.
func (s *ProgressService) SearchDevelopers(ctx context.Context, criteria progress.SearchCriteria) ([]progress.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.SearchDevelopers")
	defer span.End()

	criteria.Location = strings.TrimSpace(criteria.Location)
	criteria.PrimaryStack = strings.TrimSpace(criteria.PrimaryStack)
	criteria.ExperienceLevel = strings.TrimSpace(criteria.ExperienceLevel)
	criteria.WorkStyle = strings.TrimSpace(criteria.WorkStyle)
	if criteria.Limit <= 0 || criteria.Limit > 200 {
		criteria.Limit = 50
	}

	rows, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("search developers: %w", err)
	}
	if rows == nil {
		rows = []progress.Record{}
	}

	return rows, nil
}

// CompleteOnboarding is the one-way in_progress -> completed transition.
func (s *ProgressService) CompleteOnboarding(ctx context.Context, userID string) (progress.Record, error) {
	return s.setStatus(ctx, userID, progress.StatusCompleted)
}

// AbandonOnboarding marks the record abandoned. Nothing triggers this
// automatically; it exists for explicit reset/cancel paths.
func (s *ProgressService) AbandonOnboarding(ctx context.Context, userID string) (progress.Record, error) {
	return s.setStatus(ctx, userID, progress.StatusAbandoned)
}

func (s *ProgressService) setStatus(ctx context.Context, userID string, status progress.Status) (progress.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.setStatus")
	defer span.End()

	rec, found, err := s.GetProgress(ctx, userID)
	if err != nil {
		return progress.Record{}, err
	}
	if !found {
		return progress.Record{}, fmt.Errorf("%w: no progress row for user", ErrNotFound)
	}
	if rec.Status == progress.StatusCompleted && status != progress.StatusCompleted {
		return progress.Record{}, fmt.Errorf("%w: onboarding is already completed", ErrInvalidInput)
	}

	stage := string(status)
	updated, matched, err := s.repo.Update(ctx, userID, progress.UpdateFields{
		Status: &status,
		Stage:  &stage,
	})
	if err != nil {
		return progress.Record{}, fmt.Errorf("set onboarding status: %w", err)
	}
	if !matched {
		return rec, nil
	}

	return updated, nil
}

func (s *ProgressService) applyEnumMappings(ctx context.Context, patch progress.FormData) progress.FormData {
	mapField := func(field, value string) string {
		if strings.TrimSpace(value) == "" {
			return value
		}
		mapped, found := wizard.MapEnum(field, value)
		if !found {
			s.logger.WarnContext(ctx, "no enum mapping found, passing value through", "field", field, "value", value)
		}
		return mapped
	}

	if patch.Developer != nil {
		dev := *patch.Developer
		dev.PaceOfWork = mapField("pace_of_work", dev.PaceOfWork)
		dev.WorkStyle = mapField("work_style", dev.WorkStyle)
		dev.Availability = mapField("availability_status", dev.Availability)
		patch.Developer = &dev
	}
	if patch.Client != nil {
		cl := *patch.Client
		cl.StructurePreference = mapField("structure_preference", cl.StructurePreference)
		cl.PaceOfWork = mapField("pace_of_work", cl.PaceOfWork)
		cl.TeamAgeComposition = mapField("team_age_composition", cl.TeamAgeComposition)
		patch.Client = &cl
	}

	return patch
}

func optionalUpdate(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
