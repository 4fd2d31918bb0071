package progress

import "context"

// UpdateFields is a partial write against a progress record. Nil pointers are
// left untouched; the repository always bumps updated_at and last_activity.
type UpdateFields struct {
	RoleID            *string
	CategoryID        *string
	ExperienceLevelID *string
	Flow              *Flow
	Stage             *string
	CurrentStep       *int
	TotalSteps        *int
	CompletedSteps    *[]string
	Status            *Status
	FormData          *FormData

	Location         *string
	PrimaryStack     *string
	ExperienceLevel  *string
	SalaryMin        *int
	SalaryMax        *int
	WorkStyle        *string
	Availability     *string
	Skills           *[]string
	DomainExperience *[]string
}

// SearchCriteria filters searchable developer records. Zero values mean "not
// filtered"; Skills/DomainExperience match on set overlap.
type SearchCriteria struct {
	Location         string
	PrimaryStack     string
	ExperienceLevel  string
	WorkStyle        string
	SalaryMin        *int
	SalaryMax        *int
	Skills           []string
	DomainExperience []string
	Limit            int
}

type Repository interface {
	// ListByUserID returns every non-deleted row for the user, most recently
	// updated first. More than one row is the duplicate anomaly the service
	// reconciles.
	ListByUserID(ctx context.Context, userID string) ([]Record, error)
	Insert(ctx context.Context, rec Record) (Record, error)
	// Update applies the partial fields to the user's row. A write that
	// matches zero rows reports found=false with a nil error.
	Update(ctx context.Context, userID string, fields UpdateFields) (Record, bool, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	// Search returns developer-flow records with availability_status
	// "available" matching the criteria, ordered by updated_at descending.
	Search(ctx context.Context, criteria SearchCriteria) ([]Record, error)
	// ListByFlow streams whole-flow slices for background reconciliation.
	ListByFlow(ctx context.Context, flow Flow) ([]Record, error)
}
