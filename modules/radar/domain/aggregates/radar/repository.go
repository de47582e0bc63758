package radar

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Radar, error)
	GetByID(ctx context.Context, id uuid.UUID) (Radar, error)
	Create(ctx context.Context, r Radar) (Radar, error)
	Update(ctx context.Context, r Radar) (Radar, error)
}
