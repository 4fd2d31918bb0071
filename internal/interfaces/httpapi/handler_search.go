package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/usecase"
)

type developerSearchResultDTO struct {
	UserID           string   `json:"user_id"`
	FullName         string   `json:"full_name,omitempty"`
	Headline         string   `json:"headline,omitempty"`
	Location         string   `json:"location,omitempty"`
	PrimaryStack     string   `json:"primary_stack,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	SalaryMin        *int     `json:"salary_min,omitempty"`
	SalaryMax        *int     `json:"salary_max,omitempty"`
	WorkStyle        string   `json:"work_style,omitempty"`
	Availability     string   `json:"availability,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	DomainExperience []string `json:"domain_experience,omitempty"`
	UpdatedAt        string   `json:"updated_at"`
}

func (h *Handler) SearchDevelopers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchDevelopers")
	defer span.End()

	query := r.URL.Query()
	criteria := progress.SearchCriteria{
		Location:         strings.TrimSpace(query.Get("location")),
		PrimaryStack:     strings.TrimSpace(query.Get("primary_stack")),
		ExperienceLevel:  strings.TrimSpace(query.Get("experience_level")),
		WorkStyle:        strings.TrimSpace(query.Get("work_style")),
		Skills:           splitCSVParam(query.Get("skills")),
		DomainExperience: splitCSVParam(query.Get("domain_experience")),
	}

	salaryMin, err := optionalIntParam(query.Get("salary_min"), "salary_min")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	criteria.SalaryMin = salaryMin

	salaryMax, err := optionalIntParam(query.Get("salary_max"), "salary_max")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	criteria.SalaryMax = salaryMax

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		criteria.Limit = v
	}

	rows, err := h.progressService.SearchDevelopers(ctx, criteria)
	if err != nil {
		h.logger.WarnContext(ctx, "search developers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]developerSearchResultDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, developerSearchResultToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func developerSearchResultToDTO(ctx context.Context, rec progress.Record) developerSearchResultDTO {
	ctx, span := startSpan(ctx, "httpapi.developerSearchResultToDTO")
	defer span.End()

	dto := developerSearchResultDTO{
		UserID:           rec.UserID,
		Location:         rec.Location,
		PrimaryStack:     rec.PrimaryStack,
		ExperienceLevel:  rec.ExperienceLevel,
		SalaryMin:        rec.SalaryMin,
		SalaryMax:        rec.SalaryMax,
		WorkStyle:        rec.WorkStyle,
		Availability:     rec.Availability,
		Skills:           rec.Skills,
		DomainExperience: rec.DomainExperience,
		UpdatedAt:        formatTimestamp(rec.UpdatedAt),
	}
	if rec.FormData.Developer != nil {
		dto.FullName = rec.FormData.Developer.FullName
		dto.Headline = rec.FormData.Developer.Headline
	}
	return dto
}

func optionalIntParam(raw, name string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, name)
	}
	return &v, nil
}

func splitCSVParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
