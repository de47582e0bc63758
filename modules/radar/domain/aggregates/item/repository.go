package item

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	RadarID uuid.UUID
	Limit   int
	Offset  int
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	GetByRadar(ctx context.Context, params *FindParams) ([]Item, int64, error)
	Create(ctx context.Context, i Item) (Item, error)
	Update(ctx context.Context, i Item) (Item, error)
}
