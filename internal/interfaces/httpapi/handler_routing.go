package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hirepath/hirepath/internal/usecase"
)

type resolveRouteRequest struct {
	RequestedRoute string `json:"requested_route"`
}

type resolutionDTO struct {
	Route    string `json:"route"`
	Redirect bool   `json:"redirect"`
}

type resumeContextDTO struct {
	Flow               string   `json:"flow"`
	RoleID             string   `json:"role_id,omitempty"`
	CategoryID         string   `json:"category_id,omitempty"`
	ExperienceLevelID  string   `json:"experience_level_id,omitempty"`
	CurrentStep        int      `json:"current_step"`
	TotalSteps         int      `json:"total_steps"`
	Status             string   `json:"status"`
	CompletedSteps     []string `json:"completed_steps"`
	LastOrganizationID string   `json:"last_organization_id,omitempty"`
	LastTeamID         string   `json:"last_team_id,omitempty"`
}

func (h *Handler) ResolveRoute(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveRoute")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req resolveRouteRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	resolution, err := h.resolverService.Resolve(ctx, principal.UserID, true, req.RequestedRoute)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve route failed", "user_id", principal.UserID, "requested_route", req.RequestedRoute, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resolutionDTO{
		Route:    resolution.Route,
		Redirect: resolution.Redirect,
	})
}

func (h *Handler) GetResumeContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetResumeContext")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	resume, err := h.resolverService.ResumeContext(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get resume context failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	completed := resume.CompletedSteps
	if completed == nil {
		completed = []string{}
	}

	writeSuccess(ctx, w, http.StatusOK, resumeContextDTO{
		Flow:               string(resume.Flow),
		RoleID:             resume.RoleID,
		CategoryID:         resume.CategoryID,
		ExperienceLevelID:  resume.ExperienceLevelID,
		CurrentStep:        resume.CurrentStep,
		TotalSteps:         resume.TotalSteps,
		Status:             string(resume.Status),
		CompletedSteps:     completed,
		LastOrganizationID: resume.LastOrganizationID,
		LastTeamID:         resume.LastTeamID,
	})
}
