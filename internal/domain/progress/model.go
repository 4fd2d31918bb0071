package progress

import "time"

// Flow is the onboarding track a user follows. It fixes the step list and the
// step count and is selected once at creation.
type Flow string

const (
	FlowDeveloper Flow = "developer"
	FlowClient    Flow = "client"
	FlowAgency    Flow = "agency"
)

func (f Flow) Valid() bool {
	switch f {
	case FlowDeveloper, FlowClient, FlowAgency:
		return true
	default:
		return false
	}
}

// TotalSteps returns the fixed wizard length for the flow: the developer track
// has five steps, client and agency share the three-step client wizard.
func (f Flow) TotalSteps() int {
	if f == FlowDeveloper {
		return 5
	}
	return 3
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// ExperienceLevelNotApplicable is the sentinel stored for client-flow records
// that never pick an experience tier.
const ExperienceLevelNotApplicable = "not-applicable"

// AvailabilityAvailable is the availability_status value search requires:
// only developers who marked themselves available are discoverable.
const AvailabilityAvailable = "available"

// Record is the single onboarding-progress row per user. It is the source of
// truth for wizard resumption; exactly one non-deleted row per user_id is the
// invariant, and GetProgress self-heals when that is violated.
type Record struct {
	ID                string
	UserID            string
	RoleID            string
	CategoryID        string
	ExperienceLevelID string
	Flow              Flow
	Stage             string
	CurrentStep       int
	TotalSteps        int
	CompletedSteps    []string
	Status            Status
	FormData          FormData

	// Searchable projections, denormalized from the developer's in-progress
	// form answers so search never parses the form blob.
	Location         string
	PrimaryStack     string
	ExperienceLevel  string
	SalaryMin        *int
	SalaryMax        *int
	WorkStyle        string
	Availability     string
	Skills           []string
	DomainExperience []string

	LastActivity time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCompletedStep reports whether the named step is already recorded.
func (r Record) HasCompletedStep(step string) bool {
	for _, s := range r.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// FormData is the tagged per-flow union of in-progress wizard answers. At most
// one branch is set, matching the record's flow.
type FormData struct {
	Developer *DeveloperFormData `json:"developer,omitempty"`
	Client    *ClientFormData    `json:"client,omitempty"`
}

// DeveloperFormData accumulates answers across the five developer steps.
type DeveloperFormData struct {
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

// ClientFormData accumulates answers across the three client steps.
type ClientFormData struct {
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
