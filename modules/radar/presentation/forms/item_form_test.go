package forms_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/forms"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

func nowAt() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func TestGroupPlacements(t *testing.T) {
	t.Parallel()

	r1, r2 := uuid.New(), uuid.New()
	order, grouped := forms.GroupPlacements([]item.Placement{
		{RadarID: r1, Quadrant: "q1"},
		{RadarID: r2, Quadrant: "q3"},
		{RadarID: r1, Quadrant: "q2"},
		{RadarID: r1, Quadrant: "q1"},
	})

	require.Equal(t, []uuid.UUID{r1, r2}, order)
	assert.Equal(t, []string{"q1", "q2"}, grouped[r1])
	assert.Equal(t, []string{"q3"}, grouped[r2])
}

func TestBuildItemForm_Reconciliation(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Radar One", nil, []string{"q1", "q2", "q3"}, nowAt(), nowAt())
	r2 := radar.Hydrate(uuid.New(), "Radar Two", nil, []string{"q3", "q4"}, nowAt(), nowAt())
	catalog := []radar.Radar{r1, r2}

	entity := item.Hydrate(uuid.New(), "Kafka", "", "adopt", false, item.ProbationNone, []item.Placement{
		{RadarID: r1.ID(), Quadrant: "q1"},
		{RadarID: r1.ID(), Quadrant: "q2"},
		{RadarID: r2.ID(), Quadrant: "q3"},
	}, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, catalog)
	rows := form.Associations()
	require.Len(t, rows, 2)

	assert.Equal(t, r1.ID().String(), rows[0].RadarID)
	assert.Equal(t, "Radar One", rows[0].Label)
	assert.Equal(t, []viewmodels.Option{
		{ID: "q1", Label: "q1"},
		{ID: "q2", Label: "q2"},
	}, rows[0].Quadrants)

	assert.Equal(t, r2.ID().String(), rows[1].RadarID)
	assert.Equal(t, "Radar Two", rows[1].Label)
	assert.Equal(t, []viewmodels.Option{{ID: "q3", Label: "q3"}}, rows[1].Quadrants)
}

func TestBuildItemForm_MissingCatalogRadarKeepsRow(t *testing.T) {
	t.Parallel()

	gone := uuid.New()
	entity := item.Hydrate(uuid.New(), "Vault", "", "hold", false, item.ProbationNone,
		[]item.Placement{{RadarID: gone, Quadrant: "q1"}}, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, nil)
	rows := form.Associations()
	require.Len(t, rows, 1)
	assert.Equal(t, gone.String(), rows[0].RadarID)
	assert.Equal(t, gone.String(), rows[0].Label)
	assert.Equal(t, []viewmodels.Option{{ID: "q1", Label: "q1"}}, rows[0].Quadrants)
}

func TestItemForm_RoundTrip(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Backend", nil, []string{"q1", "q2"}, nowAt(), nowAt())
	r2 := radar.Hydrate(uuid.New(), "Frontend", nil, []string{"q3"}, nowAt(), nowAt())

	wire := []item.Placement{
		{RadarID: r1.ID(), Quadrant: "q1"},
		{RadarID: r1.ID(), Quadrant: "q2"},
		{RadarID: r2.ID(), Quadrant: "q3"},
	}
	entity := item.Hydrate(uuid.New(), "gRPC", "", "trial", false, item.ProbationNone, wire, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, []radar.Radar{r1, r2})
	flat := form.Flatten()

	require.Len(t, flat, len(wire))
	for i, p := range wire {
		assert.Equal(t, p.RadarID.String(), flat[i].ID)
		assert.Equal(t, p.Quadrant, flat[i].Quadrant)
	}
}

func TestItemForm_AddAssociationCap(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Only", nil, []string{"q1"}, nowAt(), nowAt())
	entity := item.Hydrate(uuid.New(), "Redis", "", "adopt", false, item.ProbationNone,
		[]item.Placement{{RadarID: r1.ID(), Quadrant: "q1"}}, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, []radar.Radar{r1})
	assert.False(t, form.CanAddAssociation())
	assert.ErrorIs(t, form.AddAssociation(), forms.ErrAssociationLimit)
	assert.Len(t, form.Associations(), 1)
}

func TestItemForm_SelectRadarDefaultsToAllQuadrants(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Radar One", nil, []string{"q1", "q2", "q3"}, nowAt(), nowAt())
	entity := item.Hydrate(uuid.New(), "Helm", "", "assess", false, item.ProbationNone, nil, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, []radar.Radar{r1})
	require.NoError(t, form.AddAssociation())
	require.NoError(t, form.SelectRadar(0, r1.ID().String()))

	row := form.Associations()[0]
	assert.Equal(t, "Radar One", row.Label)
	assert.Equal(t, []viewmodels.Option{
		{ID: "q1", Label: "q1"},
		{ID: "q2", Label: "q2"},
		{ID: "q3", Label: "q3"},
	}, row.Quadrants)
}

func TestItemForm_SelectRadarRestoresPersistedSubset(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Radar One", nil, []string{"q1", "q2", "q3"}, nowAt(), nowAt())
	entity := item.Hydrate(uuid.New(), "Istio", "", "hold", false, item.ProbationNone,
		[]item.Placement{{RadarID: r1.ID(), Quadrant: "q2"}}, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, []radar.Radar{r1})
	require.NoError(t, form.RemoveAssociation(0))
	require.NoError(t, form.AddAssociation())
	require.NoError(t, form.SelectRadar(0, r1.ID().String()))

	assert.Equal(t, []viewmodels.Option{{ID: "q2", Label: "q2"}}, form.Associations()[0].Quadrants)
}

func TestItemForm_SelectRadarUnknown(t *testing.T) {
	t.Parallel()

	entity := item.Hydrate(uuid.New(), "Nomad", "", "hold", false, item.ProbationNone, nil, nowAt(), nowAt())
	r1 := radar.Hydrate(uuid.New(), "Radar One", nil, []string{"q1"}, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, []radar.Radar{r1})
	require.NoError(t, form.AddAssociation())
	assert.ErrorIs(t, form.SelectRadar(0, uuid.NewString()), forms.ErrUnknownRadar)
	assert.ErrorIs(t, form.SelectRadar(3, r1.ID().String()), forms.ErrRowOutOfRange)
}

func TestItemForm_FlattenSkipsEmptyRows(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Radar One", nil, []string{"q1", "q2"}, nowAt(), nowAt())
	r2 := radar.Hydrate(uuid.New(), "Radar Two", nil, []string{"q3"}, nowAt(), nowAt())
	entity := item.Hydrate(uuid.New(), "Consul", "", "trial", false, item.ProbationNone, []item.Placement{
		{RadarID: r1.ID(), Quadrant: "q1"},
		{RadarID: r2.ID(), Quadrant: "q3"},
	}, nowAt(), nowAt())

	form := forms.BuildItemForm(entity, []radar.Radar{r1, r2})

	// Deselecting every quadrant keeps the row but removes its pairs,
	// which is equivalent to removing the row after flattening.
	require.NoError(t, form.SetQuadrants(0, nil))
	flat := form.Flatten()
	require.Len(t, flat, 1)
	assert.Equal(t, r2.ID().String(), flat[0].ID)
	assert.Equal(t, "q3", flat[0].Quadrant)

	// A pending row with no radar chosen contributes nothing either.
	require.NoError(t, form.RemoveAssociation(1))
	require.NoError(t, form.AddAssociation())
	assert.Empty(t, form.Flatten())
}

func TestItemForm_ProbationRoundTrip(t *testing.T) {
	t.Parallel()

	passed := item.Hydrate(uuid.New(), "Deno", "", "assess", false, item.ProbationPassed, nil, nowAt(), nowAt())
	form := forms.BuildItemForm(passed, nil)
	assert.True(t, form.ProbationPassed)
	assert.Equal(t, item.ProbationPassed, form.ProbationResult())

	form.ProbationPassed = false
	assert.Equal(t, item.ProbationFailed, form.ProbationResult())

	never := item.Hydrate(uuid.New(), "Bun", "", "assess", false, item.ProbationNone, nil, nowAt(), nowAt())
	form = forms.BuildItemForm(never, nil)
	assert.False(t, form.ProbationPassed)
	assert.Equal(t, item.ProbationNone, form.ProbationResult())
}

func TestItemForm_ViewModel(t *testing.T) {
	t.Parallel()

	r1 := radar.Hydrate(uuid.New(), "Radar One", []string{"adopt"}, []string{"q1"}, nowAt(), nowAt())
	r2 := radar.Hydrate(uuid.New(), "Radar Two", nil, []string{"q2"}, nowAt(), nowAt())
	entity := item.Hydrate(uuid.New(), "Terraform", "infra as code", "adopt", true, item.ProbationPassed,
		[]item.Placement{{RadarID: r1.ID(), Quadrant: "q1"}}, nowAt(), nowAt())

	vm := forms.BuildItemForm(entity, []radar.Radar{r1, r2}).ViewModel()
	assert.Equal(t, entity.ID().String(), vm.ID)
	assert.Equal(t, "Terraform", vm.Name)
	assert.Equal(t, viewmodels.Option{ID: "adopt", Label: "adopt"}, vm.Ring)
	assert.True(t, vm.RU)
	assert.True(t, vm.ProbationPassed)
	assert.True(t, vm.CanAddRadar)
	require.Len(t, vm.Associations, 1)
	assert.Equal(t, "Radar One", vm.Associations[0].Label)
}
