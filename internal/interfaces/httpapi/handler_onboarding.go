package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/usecase"
)

func (h *Handler) StartOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartOnboarding")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req startOnboardingRequest
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

	selection, err := h.catalogService.ValidateSelection(ctx, usecase.ValidateSelectionInput{
		RoleID:            req.RoleID,
		CategoryID:        req.CategoryID,
		SpecializationID:  req.SpecializationID,
		ExperienceLevelID: req.ExperienceLevelID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "role selection rejected", "user_id", principal.UserID, "role_id", req.RoleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.resolverService.SaveRoleSelection(ctx, principal.UserID, selection)

	rec, err := h.progressService.GetOrCreate(ctx, usecase.GetOrCreateProgressInput{
		UserID:            principal.UserID,
		RoleID:            selection.RoleID,
		CategoryID:        selection.CategoryID,
		Flow:              selection.Flow,
		ExperienceLevelID: selection.ExperienceLevelID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start onboarding failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressToDTO(ctx, rec))
}

func (h *Handler) GetOnboardingProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOnboardingProgress")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	state, err := h.wizardService.State(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get onboarding progress failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, state))
}

func (h *Handler) SaveOnboardingForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveOnboardingForm")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	patch, err := decodeFormPayload(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rec, persisted := h.wizardService.SaveFields(ctx, principal.UserID, patch)
	if !persisted {
		writeSuccess(ctx, w, http.StatusOK, saveFormResponse{Persisted: false})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saveFormResponse{
		Persisted: true,
		Progress:  progressToDTO(ctx, rec),
	})
}

func (h *Handler) AdvanceOnboardingStep(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdvanceOnboardingStep")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	snapshot, err := decodeFormPayload(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.wizardService.Advance(ctx, principal.UserID, snapshot)
	if err != nil {
		h.logger.WarnContext(ctx, "advance onboarding step failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, state))
}

func (h *Handler) BackOnboardingStep(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BackOnboardingStep")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	state, err := h.wizardService.Back(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "back onboarding step failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, state))
}

func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteOnboarding")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	rec, err := h.wizardService.Complete(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete onboarding failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressToDTO(ctx, rec))
}

func (h *Handler) AbandonOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AbandonOnboarding")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	rec, err := h.progressService.AbandonOnboarding(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "abandon onboarding failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressToDTO(ctx, rec))
}

func decodeFormPayload(r *http.Request) (progress.FormData, error) {
	var req formDataDTO
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return progress.FormData{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return formDataFromDTO(req), nil
}

type startOnboardingRequest struct {
	RoleID            string `json:"role_id" validate:"required"`
	CategoryID        string `json:"category_id" validate:"required"`
	SpecializationID  string `json:"specialization_id"`
	ExperienceLevelID string `json:"experience_level_id"`
}

type saveFormResponse struct {
	Persisted bool         `json:"persisted"`
	Progress  *progressDTO `json:"progress,omitempty"`
}
