package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/hirepath/hirepath/internal/usecase"
)

type createOrganizationRequest struct {
	Name     string `json:"name" validate:"required"`
	Size     string `json:"size"`
	Industry string `json:"industry"`
}

type createTeamRequest struct {
	OrganizationID      string `json:"organization_id"`
	Title               string `json:"title" validate:"required"`
	Description         string `json:"description"`
	StructurePreference string `json:"structure_preference"`
	PaceOfWork          string `json:"pace_of_work"`
	AgeComposition      string `json:"age_composition"`
}

type createHiringPersonaRequest struct {
	TeamID    string `json:"team_id"`
	Title     string `json:"title" validate:"required"`
	Seniority string `json:"seniority"`
	Budget    string `json:"budget"`
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateOrganization")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createOrganizationRequest
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

	org, err := h.clientResourceService.CreateOrganization(ctx, usecase.CreateOrganizationInput{
		OwnerID:  principal.UserID,
		Name:     req.Name,
		Size:     req.Size,
		Industry: req.Industry,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create organization failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, organizationToDTO(ctx, org))
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOrganizations")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	orgs, err := h.clientResourceService.ListOrganizations(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list organizations failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]organizationDTO, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, organizationToDTO(ctx, org))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOrganization")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	orgID := strings.TrimSpace(r.PathValue("orgID"))

	org, err := h.clientResourceService.GetOrganization(ctx, orgID)
	if err != nil {
		h.logger.WarnContext(ctx, "get organization failed", "user_id", principal.UserID, "org_id", orgID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if org.OwnerID != principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: organization %q", usecase.ErrNotFound, orgID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, organizationToDTO(ctx, org))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createTeamRequest
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

	team, err := h.clientResourceService.CreateTeam(ctx, usecase.CreateTeamInput{
		OwnerID:             principal.UserID,
		OrganizationID:      req.OrganizationID,
		Title:               req.Title,
		Description:         req.Description,
		StructurePreference: req.StructurePreference,
		PaceOfWork:          req.PaceOfWork,
		AgeComposition:      req.AgeComposition,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teams, err := h.clientResourceService.ListTeams(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(teams))
	for _, team := range teams {
		out = append(out, teamToDTO(ctx, team))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateHiringPersona(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateHiringPersona")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createHiringPersonaRequest
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

	persona, err := h.clientResourceService.CreateHiringPersona(ctx, usecase.CreateHiringPersonaInput{
		OwnerID:   principal.UserID,
		TeamID:    req.TeamID,
		Title:     req.Title,
		Seniority: req.Seniority,
		Budget:    req.Budget,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create hiring persona failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, hiringPersonaToDTO(ctx, persona))
}

func (h *Handler) ListHiringPersonas(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHiringPersonas")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	personas, err := h.clientResourceService.ListHiringPersonas(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list hiring personas failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]hiringPersonaDTO, 0, len(personas))
	for _, persona := range personas {
		out = append(out, hiringPersonaToDTO(ctx, persona))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
