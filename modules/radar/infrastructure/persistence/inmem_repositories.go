package persistence

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
)

type SafeMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		m: make(map[K]V),
	}
}

func (s *SafeMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *SafeMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, found := s.m[key]
	return val, found
}

func (s *SafeMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Collect(maps.Values(s.m))
}

// InmemRadarRepository backs service tests; same contract as the pg
// repository, no context transaction required.
type InmemRadarRepository struct {
	storage *SafeMap[uuid.UUID, radar.Radar]
}

func NewInmemRadarRepository() *InmemRadarRepository {
	return &InmemRadarRepository{
		storage: NewSafeMap[uuid.UUID, radar.Radar](),
	}
}

func (r *InmemRadarRepository) GetAll(ctx context.Context) ([]radar.Radar, error) {
	out := r.storage.Values()
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r *InmemRadarRepository) GetByID(ctx context.Context, id uuid.UUID) (radar.Radar, error) {
	entity, found := r.storage.Get(id)
	if !found {
		return radar.Radar{}, radar.ErrNotFound
	}
	return entity, nil
}

func (r *InmemRadarRepository) Create(ctx context.Context, entity radar.Radar) (radar.Radar, error) {
	for _, existing := range r.storage.Values() {
		if existing.Name() == entity.Name() {
			return radar.Radar{}, radar.ErrNameTaken
		}
	}
	created := radar.Hydrate(
		uuid.New(),
		entity.Name(),
		entity.Rings(),
		entity.Quadrants(),
		entity.CreatedAt(),
		entity.UpdatedAt(),
	)
	r.storage.Set(created.ID(), created)
	return created, nil
}

func (r *InmemRadarRepository) Update(ctx context.Context, entity radar.Radar) (radar.Radar, error) {
	if _, found := r.storage.Get(entity.ID()); !found {
		return radar.Radar{}, radar.ErrNotFound
	}
	r.storage.Set(entity.ID(), entity)
	return entity, nil
}

type InmemItemRepository struct {
	storage *SafeMap[uuid.UUID, item.Item]
}

func NewInmemItemRepository() *InmemItemRepository {
	return &InmemItemRepository{
		storage: NewSafeMap[uuid.UUID, item.Item](),
	}
}

func (r *InmemItemRepository) GetByID(ctx context.Context, id uuid.UUID) (item.Item, error) {
	entity, found := r.storage.Get(id)
	if !found {
		return item.Item{}, item.ErrNotFound
	}
	return entity, nil
}

func (r *InmemItemRepository) GetByRadar(ctx context.Context, params *item.FindParams) ([]item.Item, int64, error) {
	if params == nil {
		params = &item.FindParams{}
	}
	var matched []item.Item
	for _, entity := range r.storage.Values() {
		if entity.OnRadar(params.RadarID) {
			matched = append(matched, entity)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name() < matched[j].Name() })

	total := int64(len(matched))
	offset := max(params.Offset, 0)
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *InmemItemRepository) Create(ctx context.Context, entity item.Item) (item.Item, error) {
	created := item.Hydrate(
		uuid.New(),
		entity.Name(),
		entity.Description(),
		entity.Ring(),
		entity.RU(),
		entity.ProbationResult(),
		entity.Placements(),
		entity.CreatedAt(),
		entity.UpdatedAt(),
	)
	r.storage.Set(created.ID(), created)
	return created, nil
}

func (r *InmemItemRepository) Update(ctx context.Context, entity item.Item) (item.Item, error) {
	if _, found := r.storage.Get(entity.ID()); !found {
		return item.Item{}, item.ErrNotFound
	}
	r.storage.Set(entity.ID(), entity)
	return entity, nil
}
