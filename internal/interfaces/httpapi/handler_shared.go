package httpapi

import (
	"context"
	"time"

	"github.com/hirepath/hirepath/internal/domain/catalog"
	"github.com/hirepath/hirepath/internal/domain/clientres"
	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/usecase"
)

type progressDTO struct {
	UserID            string       `json:"user_id"`
	RoleID            string       `json:"role_id,omitempty"`
	CategoryID        string       `json:"category_id,omitempty"`
	ExperienceLevelID string       `json:"experience_level_id,omitempty"`
	Flow              string       `json:"flow"`
	Stage             string       `json:"stage,omitempty"`
	CurrentStep       int          `json:"current_step"`
	TotalSteps        int          `json:"total_steps"`
	CompletedSteps    []string     `json:"completed_steps"`
	Status            string       `json:"status"`
	Form              *formDataDTO `json:"form,omitempty"`
	LastActivityAt    string       `json:"last_activity_at"`
	UpdatedAt         string       `json:"updated_at"`
}

type wizardStateDTO struct {
	Progress      *progressDTO `json:"progress"`
	Steps         []stepDTO    `json:"steps"`
	CurrentStep   string       `json:"current_step"`
	ViewIndex     int          `json:"view_index"`
	Advanced      bool         `json:"advanced"`
	MissingFields []string     `json:"missing_fields,omitempty"`
}

type stepDTO struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// formDataDTO mirrors the per-flow form union on the wire. The same shape is
// accepted as a PATCH body and returned inside the progress payload.
type formDataDTO struct {
	Developer *developerFormDTO `json:"developer,omitempty"`
	Client    *clientFormDTO    `json:"client,omitempty"`
}

type developerFormDTO struct {
	FullName           string   `json:"full_name,omitempty"`
	Headline           string   `json:"headline,omitempty"`
	Location           string   `json:"location,omitempty"`
	IdentityDocType    string   `json:"identity_doc_type,omitempty"`
	IdentityVerified   bool     `json:"identity_verified,omitempty"`
	PrimaryStack       string   `json:"primary_stack,omitempty"`
	SecondarySkills    []string `json:"secondary_skills,omitempty"`
	DomainExperience   []string `json:"domain_experience,omitempty"`
	ExperienceLevel    string   `json:"experience_level,omitempty"`
	CommunicationStyle string   `json:"communication_style,omitempty"`
	PaceOfWork         string   `json:"pace_of_work,omitempty"`
	WorkStyle          string   `json:"work_style,omitempty"`
	SalaryExpectations string   `json:"salary_expectations,omitempty"`
	Availability       string   `json:"availability,omitempty"`
}

type clientFormDTO struct {
	OrganizationName    string `json:"organization_name,omitempty"`
	OrganizationSize    string `json:"organization_size,omitempty"`
	Industry            string `json:"industry,omitempty"`
	TeamTitle           string `json:"team_title,omitempty"`
	TeamDescription     string `json:"team_description,omitempty"`
	StructurePreference string `json:"structure_preference,omitempty"`
	PaceOfWork          string `json:"pace_of_work,omitempty"`
	TeamAgeComposition  string `json:"team_age_composition,omitempty"`
	PersonaTitle        string `json:"persona_title,omitempty"`
	PersonaSeniority    string `json:"persona_seniority,omitempty"`
	PersonaBudget       string `json:"persona_budget,omitempty"`
}

type roleDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Flow string `json:"flow"`
}

type categoryDTO struct {
	ID     string `json:"id"`
	RoleID string `json:"role_id"`
	Name   string `json:"name"`
}

type specializationDTO struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type experienceLevelDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MinYears int    `json:"min_years"`
	MaxYears int    `json:"max_years"`
}

type organizationDTO struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Industry  string `json:"industry,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type teamDTO struct {
	ID                  string `json:"id"`
	OrganizationID      string `json:"organization_id,omitempty"`
	OwnerID             string `json:"owner_id"`
	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	StructurePreference string `json:"structure_preference,omitempty"`
	PaceOfWork          string `json:"pace_of_work,omitempty"`
	AgeComposition      string `json:"age_composition,omitempty"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

type hiringPersonaDTO struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id,omitempty"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
	Seniority string `json:"seniority,omitempty"`
	Budget    string `json:"budget,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func progressToDTO(ctx context.Context, rec progress.Record) *progressDTO {
	ctx, span := startSpan(ctx, "httpapi.progressToDTO")
	defer span.End()

	completed := rec.CompletedSteps
	if completed == nil {
		completed = []string{}
	}

	return &progressDTO{
		UserID:            rec.UserID,
		RoleID:            rec.RoleID,
		CategoryID:        rec.CategoryID,
		ExperienceLevelID: rec.ExperienceLevelID,
		Flow:              string(rec.Flow),
		Stage:             rec.Stage,
		CurrentStep:       rec.CurrentStep,
		TotalSteps:        rec.TotalSteps,
		CompletedSteps:    completed,
		Status:            string(rec.Status),
		Form:              formDataToDTO(rec.FormData),
		LastActivityAt:    formatTimestamp(rec.LastActivity),
		UpdatedAt:         formatTimestamp(rec.UpdatedAt),
	}
}

func wizardStateToDTO(ctx context.Context, state usecase.WizardState) wizardStateDTO {
	ctx, span := startSpan(ctx, "httpapi.wizardStateToDTO")
	defer span.End()

	steps := make([]stepDTO, 0, len(state.Steps))
	for _, s := range state.Steps {
		steps = append(steps, stepDTO{Name: s.Name, Title: s.Title})
	}

	return wizardStateDTO{
		Progress:      progressToDTO(ctx, state.Record),
		Steps:         steps,
		CurrentStep:   state.CurrentStepName(),
		ViewIndex:     state.ViewIndex,
		Advanced:      state.Advanced,
		MissingFields: state.MissingFields,
	}
}

func formDataToDTO(form progress.FormData) *formDataDTO {
	if form.Developer == nil && form.Client == nil {
		return nil
	}

	out := &formDataDTO{}
	if form.Developer != nil {
		dev := developerFormDTO(*form.Developer)
		out.Developer = &dev
	}
	if form.Client != nil {
		cl := clientFormDTO(*form.Client)
		out.Client = &cl
	}
	return out
}

func formDataFromDTO(dto formDataDTO) progress.FormData {
	var out progress.FormData
	if dto.Developer != nil {
		dev := progress.DeveloperFormData(*dto.Developer)
		out.Developer = &dev
	}
	if dto.Client != nil {
		cl := progress.ClientFormData(*dto.Client)
		out.Client = &cl
	}
	return out
}

func roleToDTO(v catalog.Role) roleDTO {
	return roleDTO{ID: v.ID, Name: v.Name, Flow: string(v.Flow)}
}

func categoryToDTO(v catalog.Category) categoryDTO {
	return categoryDTO{ID: v.ID, RoleID: v.RoleID, Name: v.Name}
}

func specializationToDTO(v catalog.Specialization) specializationDTO {
	return specializationDTO{ID: v.ID, CategoryID: v.CategoryID, Name: v.Name}
}

func experienceLevelToDTO(v catalog.ExperienceLevel) experienceLevelDTO {
	return experienceLevelDTO{ID: v.ID, Name: v.Name, MinYears: v.MinYears, MaxYears: v.MaxYears}
}

func organizationToDTO(ctx context.Context, v clientres.Organization) organizationDTO {
	ctx, span := startSpan(ctx, "httpapi.organizationToDTO")
	defer span.End()

	return organizationDTO{
		ID:        v.ID,
		OwnerID:   v.OwnerID,
		Name:      v.Name,
		Size:      v.Size,
		Industry:  v.Industry,
		CreatedAt: formatTimestamp(v.CreatedAt),
		UpdatedAt: formatTimestamp(v.UpdatedAt),
	}
}

func teamToDTO(ctx context.Context, v clientres.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:                  v.ID,
		OrganizationID:      v.OrganizationID,
		OwnerID:             v.OwnerID,
		Title:               v.Title,
		Description:         v.Description,
		StructurePreference: v.StructurePreference,
		PaceOfWork:          v.PaceOfWork,
		AgeComposition:      v.AgeComposition,
		CreatedAt:           formatTimestamp(v.CreatedAt),
		UpdatedAt:           formatTimestamp(v.UpdatedAt),
	}
}

func hiringPersonaToDTO(ctx context.Context, v clientres.HiringPersona) hiringPersonaDTO {
	ctx, span := startSpan(ctx, "httpapi.hiringPersonaToDTO")
	defer span.End()

	return hiringPersonaDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		OwnerID:   v.OwnerID,
		Title:     v.Title,
		Seniority: v.Seniority,
		Budget:    v.Budget,
		CreatedAt: formatTimestamp(v.CreatedAt),
		UpdatedAt: formatTimestamp(v.UpdatedAt),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
