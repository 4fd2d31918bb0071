package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hirepath/hirepath/internal/domain/devprofile"
)

type DeveloperProfileRepository struct {
	mu    sync.RWMutex
	items map[string]devprofile.Profile
}

func NewDeveloperProfileRepository() *DeveloperProfileRepository {
	return &DeveloperProfileRepository{items: make(map[string]devprofile.Profile)}
}

func (r *DeveloperProfileRepository) GetByUserID(_ context.Context, userID string) (devprofile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.items[userID]
	if !ok {
		return devprofile.Profile{}, false, nil
	}

	return cloneProfile(profile), true, nil
}

func (r *DeveloperProfileRepository) Upsert(_ context.Context, profile devprofile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.items[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.items[profile.UserID] = cloneProfile(profile)

	return nil
}

func cloneProfile(p devprofile.Profile) devprofile.Profile {
	copied := p
	copied.Skills = append([]string(nil), p.Skills...)
	copied.DomainExperience = append([]string(nil), p.DomainExperience...)
	if p.SalaryMin != nil {
		value := *p.SalaryMin
		copied.SalaryMin = &value
	}
	if p.SalaryMax != nil {
		value := *p.SalaryMax
		copied.SalaryMax = &value
	}
	return copied
}
