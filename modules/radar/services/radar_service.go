package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/domain/events"
	"github.com/iota-uz/radar-admin/pkg/composables"
	"github.com/iota-uz/radar-admin/pkg/eventbus"
)

// eventSession snapshots the request metadata for outgoing events. Both
// lookups miss outside an HTTP request, leaving the session empty.
func eventSession(ctx context.Context) events.Session {
	var s events.Session
	if ip, ok := composables.UseIP(ctx); ok {
		s.IP = ip
	}
	if ua, ok := composables.UseUserAgent(ctx); ok {
		s.UserAgent = ua
	}
	return s
}

type RadarService struct {
	repo      radar.Repository
	publisher eventbus.EventBus
}

func NewRadarService(repo radar.Repository, publisher eventbus.EventBus) *RadarService {
	return &RadarService{repo: repo, publisher: publisher}
}

func (s *RadarService) GetAll(ctx context.Context) ([]radar.Radar, error) {
	return s.repo.GetAll(ctx)
}

func (s *RadarService) GetByID(ctx context.Context, id uuid.UUID) (radar.Radar, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RadarService) Create(ctx context.Context, dto *radar.CreateDTO) (radar.Radar, error) {
	if dto == nil {
		return radar.Radar{}, errors.New("missing dto")
	}
	dto.Normalize()
	entity := radar.New(dto.Name, dto.Rings, dto.Quadrants)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return radar.Radar{}, err
	}
	s.publisher.Publish(&events.RadarCreated{Session: eventSession(ctx), RadarID: created.ID(), Name: created.Name()})
	return created, nil
}

func (s *RadarService) Update(ctx context.Context, id uuid.UUID, dto *radar.UpdateDTO) (radar.Radar, error) {
	if dto == nil {
		return radar.Radar{}, errors.New("missing dto")
	}
	dto.Normalize()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return radar.Radar{}, err
	}

	entity := radar.Hydrate(
		existing.ID(),
		dto.Name,
		dto.Rings,
		dto.Quadrants,
		existing.CreatedAt(),
		existing.UpdatedAt(),
	)
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return radar.Radar{}, err
	}
	s.publisher.Publish(&events.RadarUpdated{Session: eventSession(ctx), RadarID: updated.ID(), Name: updated.Name()})
	return updated, nil
}
