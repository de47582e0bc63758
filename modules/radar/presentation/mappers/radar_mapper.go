package mappers

import (
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

func RadarToListItem(entity radar.Radar) *viewmodels.RadarListItem {
	return &viewmodels.RadarListItem{
		ID:        entity.ID().String(),
		Name:      entity.Name(),
		Rings:     entity.Rings(),
		Quadrants: entity.Quadrants(),
	}
}

func RadarsToListItems(entities []radar.Radar) []*viewmodels.RadarListItem {
	out := make([]*viewmodels.RadarListItem, 0, len(entities))
	for _, e := range entities {
		out = append(out, RadarToListItem(e))
	}
	return out
}

// RadarToFormVM shapes a radar for the definition editors: rings and
// quadrants become wrapped-value lists.
func RadarToFormVM(entity radar.Radar) *viewmodels.RadarFormVM {
	return &viewmodels.RadarFormVM{
		ID:        entity.ID().String(),
		Name:      entity.Name(),
		Rings:     FieldsToObjects(entity.Rings()),
		Quadrants: FieldsToObjects(entity.Quadrants()),
	}
}
