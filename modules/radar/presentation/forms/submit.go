package forms

import (
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/mappers"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

// FlattenAssociations inverts association rows into wire placement
// pairs: one pair per selected quadrant, in row order, display labels
// discarded. Rows without a radar or with no quadrants selected drop
// out, which is how the form expresses removing a radar. ItemForm and
// the submit path both flatten through here.
func FlattenAssociations(associations []viewmodels.ItemAssociation) []viewmodels.ItemPlacement {
	out := make([]viewmodels.ItemPlacement, 0, len(associations))
	for _, row := range associations {
		if row.RadarID == "" {
			continue
		}
		for _, q := range row.Quadrants {
			out = append(out, viewmodels.ItemPlacement{
				ID:       row.RadarID,
				Quadrant: mappers.UnwrapOption(q),
			})
		}
	}
	return out
}

// SubmitToUpdateDTO maps a submitted form back to the wire shape. The
// probation switch is expanded against the result the item carried
// before the edit so a false value never fabricates a failure.
func SubmitToUpdateDTO(vm *viewmodels.ItemFormVM, previous item.ProbationResult) *item.UpdateDTO {
	pairs := FlattenAssociations(vm.Associations)
	radars := make([]item.PlacementDTO, 0, len(pairs))
	for _, p := range pairs {
		radars = append(radars, item.PlacementDTO{ID: p.ID, Quadrant: p.Quadrant})
	}
	return &item.UpdateDTO{
		Name:            vm.Name,
		Description:     vm.Description,
		Ring:            mappers.UnwrapOption(vm.Ring),
		RU:              vm.RU,
		ProbationResult: string(mappers.UnwrapProbationResult(vm.ProbationPassed, previous)),
		Radars:          radars,
	}
}
