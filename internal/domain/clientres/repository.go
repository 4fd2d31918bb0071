package clientres

import "context"

type OrganizationRepository interface {
	Insert(ctx context.Context, org Organization) error
	Update(ctx context.Context, org Organization) (bool, error)
	GetByID(ctx context.Context, id string) (Organization, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Organization, error)
}

type TeamRepository interface {
	Insert(ctx context.Context, team Team) error
	Update(ctx context.Context, team Team) (bool, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Team, error)
}

type HiringPersonaRepository interface {
	Insert(ctx context.Context, persona HiringPersona) error
	Update(ctx context.Context, persona HiringPersona) (bool, error)
	GetByID(ctx context.Context, id string) (HiringPersona, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]HiringPersona, error)
}
