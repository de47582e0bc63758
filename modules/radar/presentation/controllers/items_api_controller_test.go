package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/infrastructure/persistence"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/controllers"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
	"github.com/iota-uz/radar-admin/modules/radar/services"
	"github.com/iota-uz/radar-admin/pkg/application"
	"github.com/iota-uz/radar-admin/pkg/eventbus"
)

type apiFixture struct {
	router *mux.Router
	radars *services.RadarService
	items  *services.ItemService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	bus := eventbus.NewEventPublisher(logger)

	radarRepo := persistence.NewInmemRadarRepository()
	radarService := services.NewRadarService(radarRepo, bus)
	itemService := services.NewItemService(persistence.NewInmemItemRepository(), radarRepo, bus)

	app := application.New(&application.ApplicationOptions{
		Bundle:   application.LoadBundle(),
		EventBus: bus,
		Logger:   logger,
	})
	app.RegisterServices(radarService, itemService)

	router := mux.NewRouter()
	controllers.NewItemsAPIController(app).Register(router)
	controllers.NewRadarsAPIController(app).Register(router)

	return &apiFixture{router: router, radars: radarService, items: itemService}
}

func (f *apiFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) postJSON(t *testing.T, path string, body any, hx bool) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestItemsAPI_GetForm_Reconciliation(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	r1, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Radar One",
		Quadrants: []string{"q1", "q2", "q3"},
	})
	require.NoError(t, err)
	r2, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Radar Two",
		Quadrants: []string{"q3", "q4"},
	})
	require.NoError(t, err)

	created, err := f.items.Create(context.Background(), r1.ID(), &item.CreateDTO{
		Name: "Kubernetes",
		Ring: "adopt",
		Radars: []item.PlacementDTO{
			{ID: r1.ID().String(), Quadrant: "q1"},
			{ID: r1.ID().String(), Quadrant: "q2"},
			{ID: r2.ID().String(), Quadrant: "q3"},
		},
	})
	require.NoError(t, err)

	rec := f.get(t, "/radar/api/items/"+created.ID().String()+"/form")
	require.Equal(t, http.StatusOK, rec.Code)

	var vm viewmodels.ItemFormVM
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))

	assert.Equal(t, "Kubernetes", vm.Name)
	assert.Equal(t, "adopt", vm.Ring.ID)
	require.Len(t, vm.Associations, 2)
	assert.Equal(t, "Radar One", vm.Associations[0].Label)
	assert.Len(t, vm.Associations[0].Quadrants, 2)
	assert.Equal(t, "Radar Two", vm.Associations[1].Label)
	assert.Equal(t, "q3", vm.Associations[1].Quadrants[0].ID)
	assert.False(t, vm.CanAddRadar)
}

func TestItemsAPI_SubmitForm(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	r1, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Languages",
		Quadrants: []string{"q1", "q2"},
	})
	require.NoError(t, err)
	r2, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Platforms",
		Quadrants: []string{"q3"},
	})
	require.NoError(t, err)

	created, err := f.items.Create(context.Background(), r1.ID(), &item.CreateDTO{
		Name:            "Rust",
		Ring:            "trial",
		ProbationResult: "passed",
		Radars: []item.PlacementDTO{
			{ID: r1.ID().String(), Quadrant: "q1"},
			{ID: r2.ID().String(), Quadrant: "q3"},
		},
	})
	require.NoError(t, err)

	rec := f.postJSON(t, "/radar/api/items/"+created.ID().String()+"/form", viewmodels.ItemFormVM{
		Name: "Rust",
		Ring: viewmodels.Option{ID: "trial", Label: "trial"},
		Associations: []viewmodels.ItemAssociation{
			{
				RadarID: r1.ID().String(),
				Label:   "renamed by the client",
				Quadrants: []viewmodels.Option{
					{ID: "q1", Label: "q1"},
					{ID: "q2", Label: "q2"},
				},
			},
			// All quadrants deselected: the association is removed.
			{RadarID: r2.ID().String(), Label: "Platforms"},
		},
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var wire viewmodels.ItemWire
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wire))
	require.Len(t, wire.Radars, 2)
	assert.Equal(t, viewmodels.ItemPlacement{ID: r1.ID().String(), Quadrant: "q1"}, wire.Radars[0])
	assert.Equal(t, viewmodels.ItemPlacement{ID: r1.ID().String(), Quadrant: "q2"}, wire.Radars[1])
	// Switch off against a stored passed result records a failure.
	assert.Equal(t, "failed", wire.ProbationResult)

	assert.Contains(t, rec.Header().Get("HX-Trigger"), "addSnackbar")
}

func TestItemsAPI_SubmitForm_PlainRequestSkipsSnackbar(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	host, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Tools",
		Quadrants: []string{"q1"},
	})
	require.NoError(t, err)
	created, err := f.items.Create(context.Background(), host.ID(), &item.CreateDTO{Name: "Vim", Ring: "adopt"})
	require.NoError(t, err)

	rec := f.postJSON(t, "/radar/api/items/"+created.ID().String()+"/form", viewmodels.ItemFormVM{
		Name: "Vim",
		Ring: viewmodels.Option{ID: "adopt", Label: "adopt"},
		Associations: []viewmodels.ItemAssociation{
			{RadarID: host.ID().String(), Quadrants: []viewmodels.Option{{ID: "q1", Label: "q1"}}},
		},
	}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
}

func TestItemsAPI_Get_NotFound(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.get(t, "/radar/api/items/6fa0f7a4-54c3-4fd2-96c0-7ea20aa8b5d1")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.get(t, "/radar/api/items/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemsAPI_ListByRadar(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	host, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Backend",
		Quadrants: []string{"q1"},
	})
	require.NoError(t, err)
	_, err = f.items.Create(context.Background(), host.ID(), &item.CreateDTO{Name: "Postgres", Ring: "adopt"})
	require.NoError(t, err)

	rec := f.get(t, "/radar/api/radars/"+host.ID().String()+"/items")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Items []viewmodels.ItemWire `json:"items"`
		Total int64                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, int64(1), payload.Total)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Postgres", payload.Items[0].Name)
	require.Len(t, payload.Items[0].Radars, 1)
	assert.Equal(t, "q1", payload.Items[0].Radars[0].Quadrant)
}

func TestRadarsAPI_ListAndGet(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	created, err := f.radars.Create(context.Background(), &radar.CreateDTO{
		Name:      "Platform",
		Rings:     []string{"adopt", "trial"},
		Quadrants: []string{"infra"},
	})
	require.NoError(t, err)

	rec := f.get(t, "/radar/api/radars")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Items []viewmodels.RadarListItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Platform", list.Items[0].Name)

	rec = f.get(t, "/radar/api/radars/"+created.ID().String())
	require.Equal(t, http.StatusOK, rec.Code)

	var form viewmodels.RadarFormVM
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	require.Len(t, form.Rings, 2)
	assert.Equal(t, "trial", form.Rings[1].Value)
	require.Len(t, form.Quadrants, 1)
	assert.Equal(t, "infra", form.Quadrants[0].Value)
}
