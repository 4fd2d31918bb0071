package clientres

import "time"

// Organization, Team and HiringPersona are the plain CRUD resources the
// client wizard persists per step. They carry no workflow state of their own;
// the progress record owns sequencing.
type Organization struct {
	ID        string
	OwnerID   string
	Name      string
	Size      string
	Industry  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Team struct {
	ID                  string
	OrganizationID      string
	OwnerID             string
	Title               string
	Description         string
	StructurePreference string
	PaceOfWork          string
	AgeComposition      string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type HiringPersona struct {
	ID        string
	TeamID    string
	OwnerID   string
	Title     string
	Seniority string
	Budget    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
