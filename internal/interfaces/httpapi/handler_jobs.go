package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hirepath/hirepath/internal/usecase"
)

type reconcileProjectionsRequest struct {
	MaxWorkers int  `json:"max_workers" validate:"gte=0,lte=64"`
	DryRun     bool `json:"dry_run"`
}

type onboardingCompletedJobRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Flow        string `json:"flow"`
	RoleID      string `json:"role_id"`
	CategoryID  string `json:"category_id"`
	CompletedAt string `json:"completed_at"`
}

// RunReconcileProjectionsJob sweeps every developer row and rewrites drifted
// searchable projections. Invoked by the scheduler through the internal job
// gateway, never by end users.
func (h *Handler) RunReconcileProjectionsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcileProjectionsJob")
	defer span.End()

	var req reconcileProjectionsRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.reconcileService.Run(ctx, usecase.ReconcileProjectionsInput{
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile projections job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "reconcile projections job finished",
		"row_count", result.RowCount,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
		"skipped_count", result.SkippedCount,
		"dry_run", result.DryRun,
	)

	writeSuccess(ctx, w, http.StatusOK, result)
}

// HandleOnboardingCompletedJob receives the queued onboarding-completed
// delivery and reconciles that single user's projection.
func (h *Handler) HandleOnboardingCompletedJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HandleOnboardingCompletedJob")
	defer span.End()

	var req onboardingCompletedJobRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.reconcileService.RunForUser(ctx, req.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "onboarding completed job failed", "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "onboarding completed job processed",
		"user_id", req.UserID,
		"flow", req.Flow,
		"status", result.Status,
	)

	writeSuccess(ctx, w, http.StatusOK, result)
}
