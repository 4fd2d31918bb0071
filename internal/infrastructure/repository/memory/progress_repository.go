package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
)

// ProgressRepository keeps progress rows keyed by row id so the duplicate-row
// anomaly the service reconciles is representable here too.
type ProgressRepository struct {
	mu    sync.RWMutex
	items map[string]progress.Record
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{items: make(map[string]progress.Record)}
}

func (r *ProgressRepository) ListByUserID(_ context.Context, userID string) ([]progress.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []progress.Record
	for _, rec := range r.items {
		if rec.UserID == userID {
			rows = append(rows, cloneRecord(rec))
		}
	}
	sortByRecency(rows)

	return rows, nil
}

func (r *ProgressRepository) Insert(_ context.Context, rec progress.Record) (progress.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[rec.ID] = cloneRecord(rec)
	return rec, nil
}

func (r *ProgressRepository) Update(_ context.Context, userID string, fields progress.UpdateFields) (progress.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.latestForUser(userID)
	if !ok {
		return progress.Record{}, false, nil
	}

	applyUpdateFields(&rec, fields)
	now := time.Now().UTC()
	rec.LastActivity = now
	rec.UpdatedAt = now
	r.items[rec.ID] = cloneRecord(rec)

	return cloneRecord(rec), true, nil
}

func (r *ProgressRepository) DeleteByIDs(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}

func (r *ProgressRepository) Search(_ context.Context, criteria progress.SearchCriteria) ([]progress.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []progress.Record
	for _, rec := range r.items {
		if rec.Flow != progress.FlowDeveloper || rec.Availability != progress.AvailabilityAvailable {
			continue
		}
		if !matchesCriteria(rec, criteria) {
			continue
		}
		rows = append(rows, cloneRecord(rec))
	}
	sortByRecency(rows)

	if criteria.Limit > 0 && len(rows) > criteria.Limit {
		rows = rows[:criteria.Limit]
	}

	return rows, nil
}

func (r *ProgressRepository) ListByFlow(_ context.Context, flow progress.Flow) ([]progress.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []progress.Record
	for _, rec := range r.items {
		if rec.Flow == flow {
			rows = append(rows, cloneRecord(rec))
		}
	}
	sortByRecency(rows)

	return rows, nil
}

// latestForUser mirrors the SQL update target: with duplicates present the
// most recently updated row takes the write.
func (r *ProgressRepository) latestForUser(userID string) (progress.Record, bool) {
	var (
		latest progress.Record
		found  bool
	)
	for _, rec := range r.items {
		if rec.UserID != userID {
			continue
		}
		if !found || rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
			found = true
		}
	}
	return latest, found
}

func applyUpdateFields(rec *progress.Record, fields progress.UpdateFields) {
	if fields.RoleID != nil {
		rec.RoleID = *fields.RoleID
	}
	if fields.CategoryID != nil {
		rec.CategoryID = *fields.CategoryID
	}
	if fields.ExperienceLevelID != nil {
		rec.ExperienceLevelID = *fields.ExperienceLevelID
	}
	if fields.Flow != nil {
		rec.Flow = *fields.Flow
	}
	if fields.Stage != nil {
		rec.Stage = *fields.Stage
	}
	if fields.CurrentStep != nil {
		rec.CurrentStep = *fields.CurrentStep
	}
	if fields.TotalSteps != nil {
		rec.TotalSteps = *fields.TotalSteps
	}
	if fields.CompletedSteps != nil {
		rec.CompletedSteps = append([]string(nil), *fields.CompletedSteps...)
	}
	if fields.Status != nil {
		rec.Status = *fields.Status
	}
	if fields.FormData != nil {
		rec.FormData = *fields.FormData
	}
	if fields.Location != nil {
		rec.Location = *fields.Location
	}
	if fields.PrimaryStack != nil {
		rec.PrimaryStack = *fields.PrimaryStack
	}
	if fields.ExperienceLevel != nil {
		rec.ExperienceLevel = *fields.ExperienceLevel
	}
	if fields.SalaryMin != nil {
		value := *fields.SalaryMin
		rec.SalaryMin = &value
	}
	if fields.SalaryMax != nil {
		value := *fields.SalaryMax
		rec.SalaryMax = &value
	}
	if fields.WorkStyle != nil {
		rec.WorkStyle = *fields.WorkStyle
	}
	if fields.Availability != nil {
		rec.Availability = *fields.Availability
	}
	if fields.Skills != nil {
		rec.Skills = append([]string(nil), *fields.Skills...)
	}
	if fields.DomainExperience != nil {
		rec.DomainExperience = append([]string(nil), *fields.DomainExperience...)
	}
}

func matchesCriteria(rec progress.Record, criteria progress.SearchCriteria) bool {
	if !containsFold(rec.Location, criteria.Location) {
		return false
	}
	if !containsFold(rec.PrimaryStack, criteria.PrimaryStack) {
		return false
	}
	if criteria.ExperienceLevel != "" && rec.ExperienceLevel != criteria.ExperienceLevel {
		return false
	}
	if criteria.WorkStyle != "" && rec.WorkStyle != criteria.WorkStyle {
		return false
	}
	if criteria.SalaryMin != nil && (rec.SalaryMax == nil || *rec.SalaryMax < *criteria.SalaryMin) {
		return false
	}
	if criteria.SalaryMax != nil && (rec.SalaryMin == nil || *rec.SalaryMin > *criteria.SalaryMax) {
		return false
	}
	if len(criteria.Skills) > 0 && !overlaps(rec.Skills, criteria.Skills) {
		return false
	}
	if len(criteria.DomainExperience) > 0 && !overlaps(rec.DomainExperience, criteria.DomainExperience) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func overlaps(stored, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range stored {
			if s == w {
				return true
			}
		}
	}
	return false
}

func sortByRecency(rows []progress.Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
			return rows[i].UpdatedAt.After(rows[j].UpdatedAt)
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
}

func cloneRecord(rec progress.Record) progress.Record {
	copied := rec
	copied.CompletedSteps = append([]string(nil), rec.CompletedSteps...)
	copied.Skills = append([]string(nil), rec.Skills...)
	copied.DomainExperience = append([]string(nil), rec.DomainExperience...)
	if rec.SalaryMin != nil {
		value := *rec.SalaryMin
		copied.SalaryMin = &value
	}
	if rec.SalaryMax != nil {
		value := *rec.SalaryMax
		copied.SalaryMax = &value
	}
	if rec.FormData.Developer != nil {
		dev := *rec.FormData.Developer
		dev.SecondarySkills = append([]string(nil), rec.FormData.Developer.SecondarySkills...)
		dev.DomainExperience = append([]string(nil), rec.FormData.Developer.DomainExperience...)
		copied.FormData.Developer = &dev
	}
	if rec.FormData.Client != nil {
		cl := *rec.FormData.Client
		copied.FormData.Client = &cl
	}
	return copied
}
