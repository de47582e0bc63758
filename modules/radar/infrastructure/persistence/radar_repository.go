package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/pkg/composables"
)

const (
	selectRadarColumns = "id, name, rings, quadrants, created_at, updated_at"
	pgUniqueViolation  = "23505"
)

type RadarRepository struct{}

func NewRadarRepository() radar.Repository {
	return &RadarRepository{}
}

func (r *RadarRepository) GetAll(ctx context.Context) ([]radar.Radar, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, fmt.Sprintf("SELECT %s FROM radars ORDER BY name", selectRadarColumns))
	if err != nil {
		return nil, fmt.Errorf("list radars: %w", err)
	}
	defer rows.Close()

	var out []radar.Radar
	for rows.Next() {
		entity, err := scanRadar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, rows.Err()
}

func (r *RadarRepository) GetByID(ctx context.Context, id uuid.UUID) (radar.Radar, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return radar.Radar{}, err
	}

	row := tx.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM radars WHERE id = $1", selectRadarColumns), id)
	entity, err := scanRadar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return radar.Radar{}, radar.ErrNotFound
		}
		return radar.Radar{}, err
	}
	return entity, nil
}

func (r *RadarRepository) Create(ctx context.Context, entity radar.Radar) (radar.Radar, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return radar.Radar{}, err
	}

	row := tx.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO radars (name, rings, quadrants)
			VALUES ($1, $2, $3)
			RETURNING %s`, selectRadarColumns),
		entity.Name(), entity.Rings(), entity.Quadrants(),
	)
	created, err := scanRadar(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return radar.Radar{}, radar.ErrNameTaken
		}
		return radar.Radar{}, fmt.Errorf("create radar: %w", err)
	}
	return created, nil
}

func (r *RadarRepository) Update(ctx context.Context, entity radar.Radar) (radar.Radar, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return radar.Radar{}, err
	}

	row := tx.QueryRow(ctx,
		fmt.Sprintf(`UPDATE radars
			SET name = $2, rings = $3, quadrants = $4, updated_at = now()
			WHERE id = $1
			RETURNING %s`, selectRadarColumns),
		entity.ID(), entity.Name(), entity.Rings(), entity.Quadrants(),
	)
	updated, err := scanRadar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return radar.Radar{}, radar.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return radar.Radar{}, radar.ErrNameTaken
		}
		return radar.Radar{}, fmt.Errorf("update radar: %w", err)
	}
	return updated, nil
}

func scanRadar(row pgx.Row) (radar.Radar, error) {
	var (
		id        uuid.UUID
		name      string
		rings     []string
		quadrants []string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &rings, &quadrants, &createdAt, &updatedAt); err != nil {
		return radar.Radar{}, err
	}
	return radar.Hydrate(id, name, rings, quadrants, createdAt, updatedAt), nil
}
