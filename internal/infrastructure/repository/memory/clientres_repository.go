package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hirepath/hirepath/internal/domain/clientres"
)

type OrganizationRepository struct {
	mu    sync.RWMutex
	items map[string]clientres.Organization
}

func NewOrganizationRepository() *OrganizationRepository {
	return &OrganizationRepository{items: make(map[string]clientres.Organization)}
}

func (r *OrganizationRepository) Insert(_ context.Context, org clientres.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[org.ID] = org
	return nil
}

func (r *OrganizationRepository) Update(_ context.Context, org clientres.Organization) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[org.ID]
	if !ok {
		return false, nil
	}

	existing.Name = org.Name
	existing.Size = org.Size
	existing.Industry = org.Industry
	existing.UpdatedAt = time.Now().UTC()
	r.items[org.ID] = existing

	return true, nil
}

func (r *OrganizationRepository) GetByID(_ context.Context, id string) (clientres.Organization, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, ok := r.items[id]
	return org, ok, nil
}

func (r *OrganizationRepository) ListByOwner(_ context.Context, ownerID string) ([]clientres.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []clientres.Organization
	for _, org := range r.items {
		if org.OwnerID == ownerID {
			out = append(out, org)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]clientres.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{items: make(map[string]clientres.Team)}
}

func (r *TeamRepository) Insert(_ context.Context, team clientres.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[team.ID] = team
	return nil
}

func (r *TeamRepository) Update(_ context.Context, team clientres.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[team.ID]
	if !ok {
		return false, nil
	}

	existing.Title = team.Title
	existing.Description = team.Description
	existing.StructurePreference = team.StructurePreference
	existing.PaceOfWork = team.PaceOfWork
	existing.AgeComposition = team.AgeComposition
	existing.UpdatedAt = time.Now().UTC()
	r.items[team.ID] = existing

	return true, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (clientres.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.items[id]
	return team, ok, nil
}

func (r *TeamRepository) ListByOwner(_ context.Context, ownerID string) ([]clientres.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []clientres.Team
	for _, team := range r.items {
		if team.OwnerID == ownerID {
			out = append(out, team)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

type HiringPersonaRepository struct {
	mu    sync.RWMutex
	items map[string]clientres.HiringPersona
}

func NewHiringPersonaRepository() *HiringPersonaRepository {
	return &HiringPersonaRepository{items: make(map[string]clientres.HiringPersona)}
}

func (r *HiringPersonaRepository) Insert(_ context.Context, persona clientres.HiringPersona) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[persona.ID] = persona
	return nil
}

func (r *HiringPersonaRepository) Update(_ context.Context, persona clientres.HiringPersona) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[persona.ID]
	if !ok {
		return false, nil
	}

	existing.Title = persona.Title
	existing.Seniority = persona.Seniority
	existing.Budget = persona.Budget
	existing.UpdatedAt = time.Now().UTC()
	r.items[persona.ID] = existing

	return true, nil
}

func (r *HiringPersonaRepository) GetByID(_ context.Context, id string) (clientres.HiringPersona, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	persona, ok := r.items[id]
	return persona, ok, nil
}

func (r *HiringPersonaRepository) ListByOwner(_ context.Context, ownerID string) ([]clientres.HiringPersona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []clientres.HiringPersona
	for _, persona := range r.items {
		if persona.OwnerID == ownerID {
			out = append(out, persona)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
