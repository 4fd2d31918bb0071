package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/hirepath/hirepath/internal/domain/progress"
)

const (
	reconcileStatusSuccess = "success"
	reconcileStatusFailed  = "failed"
	reconcileStatusSkipped = "skipped"
)

type ReconcileProjectionsInput struct {
	MaxWorkers int
	// DryRun computes drift without writing.
	DryRun bool
}

type ReconcileProjectionsResult struct {
	RowCount     int                  `json:"row_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	SkippedCount int                  `json:"skipped_count"`
	WorkerCount  int                  `json:"worker_count"`
	DryRun       bool                 `json:"dry_run"`
	Rows         []ReconcileRowResult `json:"rows"`
}

type ReconcileRowResult struct {
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// ProjectionReconcileService rewrites drifted searchable projections from the
// stored form blobs. Saves race each other by design, so the denormalized
// columns can fall behind the form data; this job repairs them after the fact.
type ProjectionReconcileService struct {
	repo   progress.Repository
	logger *slog.Logger
}

func NewProjectionReconcileService(repo progress.Repository, logger *slog.Logger) *ProjectionReconcileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectionReconcileService{repo: repo, logger: logger}
}

// Run re-extracts the searchable columns for every developer-flow row in
// parallel. Per-row failures are collected, never fatal to the sweep.
func (s *ProjectionReconcileService) Run(ctx context.Context, input ReconcileProjectionsInput) (ReconcileProjectionsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionReconcileService.Run")
	defer span.End()

	rows, err := s.repo.ListByFlow(ctx, progress.FlowDeveloper)
	if err != nil {
		return ReconcileProjectionsResult{}, fmt.Errorf("list developer rows: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = 4
	}
	if workerCount > len(rows) && len(rows) > 0 {
		workerCount = len(rows)
	}

	result := ReconcileProjectionsResult{
		RowCount:    len(rows),
		WorkerCount: workerCount,
		DryRun:      input.DryRun,
		Rows:        make([]ReconcileRowResult, 0, len(rows)),
	}
	if len(rows) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ReconcileProjectionsResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ReconcileRowResult, len(rows))
	var successCount, failedCount, skippedCount atomic.Int32

	var workers sync.WaitGroup
	for _, row := range rows {
		row := row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			out := ReconcileRowResult{UserID: row.UserID}

			status, message := s.reconcileRow(ctx, row, input.DryRun)
			out.Status = status
			out.Message = message
			out.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case reconcileStatusSuccess:
				successCount.Add(1)
			case reconcileStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- out
		}); err != nil {
			workers.Done()
			return ReconcileProjectionsResult{}, fmt.Errorf("submit row to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Rows = append(result.Rows, row)
	}
	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].UserID < result.Rows[j].UserID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	return result, nil
}

// RunForUser reconciles a single user's projection, typically in response to
// a queued onboarding-completed delivery.
func (s *ProjectionReconcileService) RunForUser(ctx context.Context, userID string) (ReconcileRowResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionReconcileService.RunForUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ReconcileRowResult{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	rows, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return ReconcileRowResult{}, fmt.Errorf("list progress rows: %w", err)
	}
	if len(rows) == 0 {
		return ReconcileRowResult{UserID: userID, Status: reconcileStatusSkipped, Message: "no progress row"}, nil
	}

	start := time.Now()
	status, message := s.reconcileRow(ctx, rows[0], false)

	return ReconcileRowResult{
		UserID:     userID,
		Status:     status,
		Message:    message,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *ProjectionReconcileService) reconcileRow(ctx context.Context, row progress.Record, dryRun bool) (string, string) {
	if row.FormData.Developer == nil {
		return reconcileStatusSkipped, "no developer form data"
	}

	extracted := progress.ExtractSearchable(*row.FormData.Developer)
	fields, drifted := projectionDrift(row, extracted)
	if !drifted {
		return reconcileStatusSkipped, "projection already in sync"
	}
	if dryRun {
		return reconcileStatusSuccess, "drift detected (dry run)"
	}

	if _, matched, err := s.repo.Update(ctx, row.UserID, fields); err != nil {
		return reconcileStatusFailed, crerr.Wrap(err, "rewrite projection").Error()
	} else if !matched {
		return reconcileStatusSkipped, "row disappeared during sweep"
	}

	return reconcileStatusSuccess, ""
}

// projectionDrift narrows the extracted update to the columns that actually
// differ from what is stored.
func projectionDrift(row progress.Record, extracted progress.UpdateFields) (progress.UpdateFields, bool) {
	var out progress.UpdateFields
	drifted := false

	keepString := func(dst **string, candidate *string, stored string) {
		if candidate != nil && *candidate != stored {
			*dst = candidate
			drifted = true
		}
	}
	keepString(&out.Location, extracted.Location, row.Location)
	keepString(&out.PrimaryStack, extracted.PrimaryStack, row.PrimaryStack)
	keepString(&out.ExperienceLevel, extracted.ExperienceLevel, row.ExperienceLevel)
	keepString(&out.WorkStyle, extracted.WorkStyle, row.WorkStyle)
	keepString(&out.Availability, extracted.Availability, row.Availability)

	keepInt := func(dst **int, candidate *int, stored *int) {
		if candidate == nil {
			return
		}
		if stored == nil || *candidate != *stored {
			*dst = candidate
			drifted = true
		}
	}
	keepInt(&out.SalaryMin, extracted.SalaryMin, row.SalaryMin)
	keepInt(&out.SalaryMax, extracted.SalaryMax, row.SalaryMax)

	keepSet := func(dst **[]string, candidate *[]string, stored []string) {
		if candidate != nil && !equalStringSlices(*candidate, stored) {
			*dst = candidate
			drifted = true
		}
	}
	keepSet(&out.Skills, extracted.Skills, row.Skills)
	keepSet(&out.DomainExperience, extracted.DomainExperience, row.DomainExperience)

	return out, drifted
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
