package mappers

import (
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

// ItemToWire shapes an item for the API payload: the placement list stays
// flat, one entry per radar/quadrant pair, in stored order.
func ItemToWire(entity item.Item) *viewmodels.ItemWire {
	placements := entity.Placements()
	radars := make([]viewmodels.ItemPlacement, 0, len(placements))
	for _, p := range placements {
		radars = append(radars, viewmodels.ItemPlacement{
			ID:       p.RadarID.String(),
			Quadrant: p.Quadrant,
		})
	}
	return &viewmodels.ItemWire{
		ID:              entity.ID().String(),
		Name:            entity.Name(),
		Description:     entity.Description(),
		Ring:            entity.Ring(),
		RU:              entity.RU(),
		ProbationResult: string(entity.ProbationResult()),
		Radars:          radars,
	}
}

func ItemsToWire(entities []item.Item) []*viewmodels.ItemWire {
	out := make([]*viewmodels.ItemWire, 0, len(entities))
	for _, e := range entities {
		out = append(out, ItemToWire(e))
	}
	return out
}
