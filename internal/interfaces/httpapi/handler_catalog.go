package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoles")
	defer span.End()

	roles, err := h.catalogService.ListRoles(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list roles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]roleDTO, 0, len(roles))
	for _, role := range roles {
		out = append(out, roleToDTO(role))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListCategoriesByRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategoriesByRole")
	defer span.End()

	roleID := strings.TrimSpace(r.PathValue("roleID"))

	categories, err := h.catalogService.ListCategories(ctx, roleID)
	if err != nil {
		h.logger.WarnContext(ctx, "list categories failed", "role_id", roleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]categoryDTO, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryToDTO(cat))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSpecializationsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSpecializationsByCategory")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))

	specs, err := h.catalogService.ListSpecializations(ctx, categoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list specializations failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]specializationDTO, 0, len(specs))
	for _, spec := range specs {
		out = append(out, specializationToDTO(spec))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListExperienceLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListExperienceLevels")
	defer span.End()

	levels, err := h.catalogService.ListExperienceLevels(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list experience levels failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]experienceLevelDTO, 0, len(levels))
	for _, level := range levels {
		out = append(out, experienceLevelToDTO(level))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
