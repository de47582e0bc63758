package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/domain/events"
	"github.com/iota-uz/radar-admin/pkg/eventbus"
)

type ItemService struct {
	repo      item.Repository
	radars    radar.Repository
	publisher eventbus.EventBus
}

func NewItemService(repo item.Repository, radars radar.Repository, publisher eventbus.EventBus) *ItemService {
	return &ItemService{repo: repo, radars: radars, publisher: publisher}
}

func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (item.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// validatePlacements rejects placements naming a quadrant their radar
// does not define. Placements on radars the catalog no longer knows are
// let through untouched; stale references stay editable until the user
// removes them.
func (s *ItemService) validatePlacements(ctx context.Context, placements []item.Placement) error {
	checked := make(map[uuid.UUID]radar.Radar, len(placements))
	for _, p := range placements {
		host, seen := checked[p.RadarID]
		if !seen {
			var err error
			host, err = s.radars.GetByID(ctx, p.RadarID)
			if err != nil {
				if errors.Is(err, radar.ErrNotFound) {
					host = radar.Radar{}
				} else {
					return err
				}
			}
			checked[p.RadarID] = host
		}
		if host.ID() == uuid.Nil {
			continue
		}
		if !host.HasQuadrant(p.Quadrant) {
			return item.ErrQuadrantNotDefined
		}
	}
	return nil
}

func (s *ItemService) GetByRadar(ctx context.Context, params *item.FindParams) ([]item.Item, int64, error) {
	return s.repo.GetByRadar(ctx, params)
}

// Create registers a new item under the given radar. The dto's placement
// list drives the stored associations; when it carries no placement for
// radarID, the item is placed into that radar's first quadrant so a
// created item is always reachable from the radar it was created under.
func (s *ItemService) Create(ctx context.Context, radarID uuid.UUID, dto *item.CreateDTO) (item.Item, error) {
	if dto == nil {
		return item.Item{}, errors.New("missing dto")
	}
	dto.Normalize()

	placements, err := dto.Placements()
	if err != nil {
		return item.Item{}, err
	}

	host, err := s.radars.GetByID(ctx, radarID)
	if err != nil {
		return item.Item{}, err
	}
	onHost := false
	for _, p := range placements {
		if p.RadarID == host.ID() {
			onHost = true
			break
		}
	}
	if !onHost && len(host.Quadrants()) > 0 {
		placements = append(placements, item.Placement{RadarID: host.ID(), Quadrant: host.Quadrants()[0]})
	}

	if err := s.validatePlacements(ctx, placements); err != nil {
		return item.Item{}, err
	}

	entity := item.New(
		dto.Name,
		dto.Description,
		dto.Ring,
		dto.RU,
		item.ParseProbationResult(dto.ProbationResult),
		placements,
	)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return item.Item{}, err
	}
	s.publisher.Publish(&events.ItemCreated{Session: eventSession(ctx), ItemID: created.ID(), RadarID: host.ID(), Name: created.Name()})
	return created, nil
}

func (s *ItemService) Update(ctx context.Context, id uuid.UUID, dto *item.UpdateDTO) (item.Item, error) {
	if dto == nil {
		return item.Item{}, errors.New("missing dto")
	}
	dto.Normalize()

	placements, err := dto.Placements()
	if err != nil {
		return item.Item{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return item.Item{}, err
	}

	if err := s.validatePlacements(ctx, placements); err != nil {
		return item.Item{}, err
	}

	entity := item.Hydrate(
		existing.ID(),
		dto.Name,
		dto.Description,
		dto.Ring,
		dto.RU,
		item.ParseProbationResult(dto.ProbationResult),
		placements,
		existing.CreatedAt(),
		existing.UpdatedAt(),
	)
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return item.Item{}, err
	}
	s.publisher.Publish(&events.ItemUpdated{Session: eventSession(ctx), ItemID: updated.ID(), Name: updated.Name()})
	return updated, nil
}
