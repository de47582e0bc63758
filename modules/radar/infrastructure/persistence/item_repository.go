package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/pkg/composables"
	"github.com/iota-uz/radar-admin/pkg/repo"
)

const selectItemColumns = "id, name, description, ring, ru, probation_result, created_at, updated_at"

type ItemRepository struct{}

func NewItemRepository() item.Repository {
	return &ItemRepository{}
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (item.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return item.Item{}, err
	}

	row := tx.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM radar_items WHERE id = $1", selectItemColumns), id)
	entity, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.Item{}, item.ErrNotFound
		}
		return item.Item{}, err
	}

	placements, err := r.placements(ctx, tx, entity.ID())
	if err != nil {
		return item.Item{}, err
	}
	return withPlacements(entity, placements), nil
}

func (r *ItemRepository) GetByRadar(ctx context.Context, params *item.FindParams) ([]item.Item, int64, error) {
	if params == nil {
		params = &item.FindParams{}
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := tx.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM radar_items
			WHERE id IN (SELECT item_id FROM radar_item_placements WHERE radar_id = $1)
			ORDER BY name
			OFFSET $2 LIMIT $3`, selectItemColumns),
		params.RadarID, offset, limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list radar items: %w", err)
	}
	defer rows.Close()

	var out []item.Item
	for rows.Next() {
		entity, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i, entity := range out {
		placements, err := r.placements(ctx, tx, entity.ID())
		if err != nil {
			return nil, 0, err
		}
		out[i] = withPlacements(entity, placements)
	}

	var total int64
	err = tx.QueryRow(ctx,
		"SELECT count(DISTINCT item_id) FROM radar_item_placements WHERE radar_id = $1",
		params.RadarID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *ItemRepository) Create(ctx context.Context, entity item.Item) (item.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return item.Item{}, err
	}

	row := tx.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO radar_items (name, description, ring, ru, probation_result)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING %s`, selectItemColumns),
		entity.Name(), entity.Description(), entity.Ring(), entity.RU(), string(entity.ProbationResult()),
	)
	created, err := scanItem(row)
	if err != nil {
		return item.Item{}, fmt.Errorf("create radar item: %w", err)
	}

	if err := r.replacePlacements(ctx, tx, created.ID(), entity.Placements()); err != nil {
		return item.Item{}, err
	}
	return withPlacements(created, entity.Placements()), nil
}

func (r *ItemRepository) Update(ctx context.Context, entity item.Item) (item.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return item.Item{}, err
	}

	row := tx.QueryRow(ctx,
		fmt.Sprintf(`UPDATE radar_items
			SET name = $2, description = $3, ring = $4, ru = $5, probation_result = $6, updated_at = now()
			WHERE id = $1
			RETURNING %s`, selectItemColumns),
		entity.ID(), entity.Name(), entity.Description(), entity.Ring(), entity.RU(), string(entity.ProbationResult()),
	)
	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.Item{}, item.ErrNotFound
		}
		return item.Item{}, fmt.Errorf("update radar item: %w", err)
	}

	if err := r.replacePlacements(ctx, tx, updated.ID(), entity.Placements()); err != nil {
		return item.Item{}, err
	}
	return withPlacements(updated, entity.Placements()), nil
}

func (r *ItemRepository) placements(ctx context.Context, tx repo.Tx, itemID uuid.UUID) ([]item.Placement, error) {
	rows, err := tx.Query(ctx,
		"SELECT radar_id, quadrant FROM radar_item_placements WHERE item_id = $1 ORDER BY position",
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("load placements: %w", err)
	}
	defer rows.Close()

	var out []item.Placement
	for rows.Next() {
		var p item.Placement
		if err := rows.Scan(&p.RadarID, &p.Quadrant); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ItemRepository) replacePlacements(ctx context.Context, tx repo.Tx, itemID uuid.UUID, placements []item.Placement) error {
	if _, err := tx.Exec(ctx, "DELETE FROM radar_item_placements WHERE item_id = $1", itemID); err != nil {
		return fmt.Errorf("clear placements: %w", err)
	}
	for pos, p := range placements {
		_, err := tx.Exec(ctx,
			`INSERT INTO radar_item_placements (item_id, radar_id, quadrant, position)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (item_id, radar_id, quadrant) DO NOTHING`,
			itemID, p.RadarID, p.Quadrant, pos,
		)
		if err != nil {
			return fmt.Errorf("insert placement: %w", err)
		}
	}
	return nil
}

func scanItem(row pgx.Row) (item.Item, error) {
	var (
		id              uuid.UUID
		name            string
		description     string
		ring            string
		ru              bool
		probationResult string
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(&id, &name, &description, &ring, &ru, &probationResult, &createdAt, &updatedAt); err != nil {
		return item.Item{}, err
	}
	return item.Hydrate(
		id,
		name,
		description,
		ring,
		ru,
		item.ParseProbationResult(probationResult),
		nil,
		createdAt,
		updatedAt,
	), nil
}

func withPlacements(entity item.Item, placements []item.Placement) item.Item {
	return item.Hydrate(
		entity.ID(),
		entity.Name(),
		entity.Description(),
		entity.Ring(),
		entity.RU(),
		entity.ProbationResult(),
		placements,
		entity.CreatedAt(),
		entity.UpdatedAt(),
	)
}
