package forms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/forms"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

func TestFlattenAssociations(t *testing.T) {
	t.Parallel()

	r1, r2 := uuid.NewString(), uuid.NewString()
	pairs := forms.FlattenAssociations([]viewmodels.ItemAssociation{
		{
			RadarID: r1,
			Label:   "Radar One",
			Quadrants: []viewmodels.Option{
				{ID: "q1", Label: "q1"},
				{ID: "q2", Label: "q2"},
			},
		},
		// All quadrants deselected: the row survives in the form but
		// contributes no wire pairs.
		{RadarID: r2, Label: "Radar Two", Quadrants: nil},
		// Pending row with no radar chosen yet.
		{RadarID: "", Quadrants: []viewmodels.Option{{ID: "q9", Label: "q9"}}},
	})

	require.Len(t, pairs, 2)
	assert.Equal(t, viewmodels.ItemPlacement{ID: r1, Quadrant: "q1"}, pairs[0])
	assert.Equal(t, viewmodels.ItemPlacement{ID: r1, Quadrant: "q2"}, pairs[1])
}

func TestSubmitToUpdateDTO(t *testing.T) {
	t.Parallel()

	r1 := uuid.NewString()
	vm := &viewmodels.ItemFormVM{
		Name:            "Terraform",
		Description:     "infra as code",
		Ring:            viewmodels.Option{ID: "adopt", Label: "adopt"},
		RU:              true,
		ProbationPassed: true,
		Associations: []viewmodels.ItemAssociation{
			{
				RadarID:   r1,
				Label:     "stale label, never trusted",
				Quadrants: []viewmodels.Option{{ID: "q1", Label: "q1"}},
			},
		},
	}

	dto := forms.SubmitToUpdateDTO(vm, item.ProbationNone)
	assert.Equal(t, "Terraform", dto.Name)
	assert.Equal(t, "adopt", dto.Ring)
	assert.True(t, dto.RU)
	assert.Equal(t, "passed", dto.ProbationResult)

	// Only the id and quadrant survive the flatten; the label is
	// recomputed from the catalog on the next load.
	require.Len(t, dto.Radars, 1)
	assert.Equal(t, item.PlacementDTO{ID: r1, Quadrant: "q1"}, dto.Radars[0])
}

func TestSubmitToUpdateDTO_ProbationExpansion(t *testing.T) {
	t.Parallel()

	// Switch off on an item that never entered probation stays absent.
	dto := forms.SubmitToUpdateDTO(&viewmodels.ItemFormVM{Name: "Bun", Ring: viewmodels.Option{ID: "assess"}}, item.ProbationNone)
	assert.Equal(t, "", dto.ProbationResult)

	// Switch off where a terminal result existed records a failure.
	dto = forms.SubmitToUpdateDTO(&viewmodels.ItemFormVM{Name: "Deno", Ring: viewmodels.Option{ID: "assess"}}, item.ProbationPassed)
	assert.Equal(t, "failed", dto.ProbationResult)

	dto = forms.SubmitToUpdateDTO(&viewmodels.ItemFormVM{Name: "Deno", Ring: viewmodels.Option{ID: "assess"}, ProbationPassed: true}, item.ProbationFailed)
	assert.Equal(t, "passed", dto.ProbationResult)
}
