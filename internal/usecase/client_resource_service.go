package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirepath/hirepath/internal/domain/clientres"
	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/platform/cache"
)

// ClientResourceService is plain CRUD over the organizations, teams and
// hiring personas the client wizard persists. The only extra behavior is
// caching the last-created ids as a cross-step convenience and projecting a
// finished client onboarding into the three tables.
type ClientResourceService struct {
	orgRepo     clientres.OrganizationRepository
	teamRepo    clientres.TeamRepository
	personaRepo clientres.HiringPersonaRepository
	store       *cache.Store
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

func NewClientResourceService(
	orgRepo clientres.OrganizationRepository,
	teamRepo clientres.TeamRepository,
	personaRepo clientres.HiringPersonaRepository,
	store *cache.Store,
	logger *slog.Logger,
) *ClientResourceService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ClientResourceService{
		orgRepo:     orgRepo,
		teamRepo:    teamRepo,
		personaRepo: personaRepo,
		store:       store,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

type CreateOrganizationInput struct {
	OwnerID  string
	Name     string
	Size     string
	Industry string
}

func (s *ClientResourceService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (clientres.Organization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.CreateOrganization")
	defer span.End()

	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.Name = strings.TrimSpace(input.Name)
	if input.OwnerID == "" {
		return clientres.Organization{}, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return clientres.Organization{}, fmt.Errorf("%w: organization name is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	org := clientres.Organization{
		ID:        s.newID(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Size:      strings.TrimSpace(input.Size),
		Industry:  strings.TrimSpace(input.Industry),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orgRepo.Insert(ctx, org); err != nil {
		return clientres.Organization{}, fmt.Errorf("insert organization: %w", err)
	}

	s.store.Set(ctx, lastOrganizationKey(input.OwnerID), org.ID)

	return org, nil
}

func (s *ClientResourceService) GetOrganization(ctx context.Context, id string) (clientres.Organization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.GetOrganization")
	defer span.End()

	org, exists, err := s.orgRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return clientres.Organization{}, fmt.Errorf("get organization: %w", err)
	}
	if !exists {
		return clientres.Organization{}, fmt.Errorf("%w: organization %q", ErrNotFound, id)
	}

	return org, nil
}

func (s *ClientResourceService) ListOrganizations(ctx context.Context, ownerID string) ([]clientres.Organization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.ListOrganizations")
	defer span.End()

	return s.orgRepo.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

type CreateTeamInput struct {
	OwnerID             string
	OrganizationID      string
	Title               string
	Description         string
	StructurePreference string
	PaceOfWork          string
	AgeComposition      string
}

func (s *ClientResourceService) CreateTeam(ctx context.Context, input CreateTeamInput) (clientres.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.CreateTeam")
	defer span.End()

	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.OrganizationID = strings.TrimSpace(input.OrganizationID)
	input.Title = strings.TrimSpace(input.Title)
	if input.OwnerID == "" {
		return clientres.Team{}, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return clientres.Team{}, fmt.Errorf("%w: team title is required", ErrInvalidInput)
	}
	if input.OrganizationID != "" {
		if _, exists, err := s.orgRepo.GetByID(ctx, input.OrganizationID); err != nil {
			return clientres.Team{}, fmt.Errorf("get organization: %w", err)
		} else if !exists {
			return clientres.Team{}, fmt.Errorf("%w: organization %q", ErrNotFound, input.OrganizationID)
		}
	}

	now := s.now().UTC()
	team := clientres.Team{
		ID:                  s.newID(),
		OrganizationID:      input.OrganizationID,
		OwnerID:             input.OwnerID,
		Title:               input.Title,
		Description:         strings.TrimSpace(input.Description),
		StructurePreference: strings.TrimSpace(input.StructurePreference),
		PaceOfWork:          strings.TrimSpace(input.PaceOfWork),
		AgeComposition:      strings.TrimSpace(input.AgeComposition),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.teamRepo.Insert(ctx, team); err != nil {
		return clientres.Team{}, fmt.Errorf("insert team: %w", err)
	}

	s.store.Set(ctx, lastTeamKey(input.OwnerID), team.ID)

	return team, nil
}

func (s *ClientResourceService) ListTeams(ctx context.Context, ownerID string) ([]clientres.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.ListTeams")
	defer span.End()

	return s.teamRepo.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

type CreateHiringPersonaInput struct {
	OwnerID   string
	TeamID    string
	Title     string
	Seniority string
	Budget    string
}

func (s *ClientResourceService) CreateHiringPersona(ctx context.Context, input CreateHiringPersonaInput) (clientres.HiringPersona, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.CreateHiringPersona")
	defer span.End()

	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Title = strings.TrimSpace(input.Title)
	if input.OwnerID == "" {
		return clientres.HiringPersona{}, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return clientres.HiringPersona{}, fmt.Errorf("%w: persona title is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	persona := clientres.HiringPersona{
		ID:        s.newID(),
		TeamID:    input.TeamID,
		OwnerID:   input.OwnerID,
		Title:     input.Title,
		Seniority: strings.TrimSpace(input.Seniority),
		Budget:    strings.TrimSpace(input.Budget),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.personaRepo.Insert(ctx, persona); err != nil {
		return clientres.HiringPersona{}, fmt.Errorf("insert hiring persona: %w", err)
	}

	return persona, nil
}

func (s *ClientResourceService) ListHiringPersonas(ctx context.Context, ownerID string) ([]clientres.HiringPersona, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.ListHiringPersonas")
	defer span.End()

	return s.personaRepo.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

// ProjectOnboarding materializes a finished client wizard into the resource
// tables. It is the terminal side effect of the client flow's Complete and is
// called best-effort: the first failure aborts the projection and is reported
// to the caller for logging, never for rollback.
func (s *ClientResourceService) ProjectOnboarding(ctx context.Context, userID string, form progress.ClientFormData) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClientResourceService.ProjectOnboarding")
	defer span.End()

	org, err := s.CreateOrganization(ctx, CreateOrganizationInput{
		OwnerID:  userID,
		Name:     form.OrganizationName,
		Size:     form.OrganizationSize,
		Industry: form.Industry,
	})
	if err != nil {
		return fmt.Errorf("project organization: %w", err)
	}

	team, err := s.CreateTeam(ctx, CreateTeamInput{
		OwnerID:             userID,
		OrganizationID:      org.ID,
		Title:               form.TeamTitle,
		Description:         form.TeamDescription,
		StructurePreference: form.StructurePreference,
		PaceOfWork:          form.PaceOfWork,
		AgeComposition:      form.TeamAgeComposition,
	})
	if err != nil {
		return fmt.Errorf("project team: %w", err)
	}

	if _, err := s.CreateHiringPersona(ctx, CreateHiringPersonaInput{
		OwnerID:   userID,
		TeamID:    team.ID,
		Title:     form.PersonaTitle,
		Seniority: form.PersonaSeniority,
		Budget:    form.PersonaBudget,
	}); err != nil {
		return fmt.Errorf("project hiring persona: %w", err)
	}

	return nil
}
