package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/forms"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/mappers"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
	"github.com/iota-uz/radar-admin/modules/radar/services"
	"github.com/iota-uz/radar-admin/pkg/application"
	"github.com/iota-uz/radar-admin/pkg/composables"
	"github.com/iota-uz/radar-admin/pkg/htmx"
	"github.com/iota-uz/radar-admin/pkg/intl"
	"github.com/iota-uz/radar-admin/pkg/middleware"

	goi18n "github.com/iota-uz/go-i18n/v2/i18n"
)

type ItemsAPIController struct {
	app      application.Application
	items    *services.ItemService
	radars   *services.RadarService
	basePath string
}

func NewItemsAPIController(app application.Application) application.Controller {
	return &ItemsAPIController{
		app:      app,
		items:    app.Service(services.ItemService{}).(*services.ItemService),
		radars:   app.Service(services.RadarService{}).(*services.RadarService),
		basePath: "/radar/api",
	}
}

func (c *ItemsAPIController) Key() string {
	return c.basePath + "/items"
}

func (c *ItemsAPIController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.ProvideLocalizer(c.app),
	}

	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware...)
	router.HandleFunc("/radars/{radar_id}/items", c.ListByRadar).Methods(http.MethodGet)
	router.HandleFunc("/items/{item_id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/items/{item_id}/form", c.GetForm).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(commonMiddleware...)
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("/radars/{radar_id}/items", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/items/{item_id}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/items/{item_id}/form", c.SubmitForm).Methods(http.MethodPost)
}

func (c *ItemsAPIController) ListByRadar(w http.ResponseWriter, r *http.Request) {
	radarID, ok := pathUUID(mux.Vars(r), "radar_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_INVALID_ID", "invalid radar id")
		return
	}

	pagination := composables.UsePaginated(r)
	entities, total, err := c.items.GetByRadar(r.Context(), &item.FindParams{
		RadarID: radarID,
		Limit:   pagination.Limit,
		Offset:  pagination.Offset,
	})
	if err != nil {
		c.writeItemError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": mappers.ItemsToWire(entities),
		"total": total,
	})
}

func (c *ItemsAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(mux.Vars(r), "item_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_ID", "invalid item id")
		return
	}

	entity, err := c.items.GetByID(r.Context(), id)
	if err != nil {
		c.writeItemError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ItemToWire(entity))
}

// GetForm reconciles the item against the current radar catalog and
// returns the form shape. Both loads must succeed; a failed catalog
// fetch is an explicit error, never an empty form.
func (c *ItemsAPIController) GetForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(mux.Vars(r), "item_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_ID", "invalid item id")
		return
	}

	entity, err := c.items.GetByID(r.Context(), id)
	if err != nil {
		c.writeItemError(w, r, err)
		return
	}
	catalog, err := c.radars.GetAll(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "RADAR_INTERNAL", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, forms.BuildItemForm(entity, catalog).ViewModel())
}

func (c *ItemsAPIController) Create(w http.ResponseWriter, r *http.Request) {
	radarID, ok := pathUUID(mux.Vars(r), "radar_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_INVALID_ID", "invalid radar id")
		return
	}

	var dto item.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_JSON", "invalid json")
		return
	}

	if errs, ok := dto.Ok(r.Context()); !ok {
		writeValidationErrors(w, r, errs)
		return
	}

	created, err := c.items.Create(r.Context(), radarID, &dto)
	if err != nil {
		c.writeItemError(w, r, err)
		return
	}

	if htmx.IsHxRequest(r) {
		htmx.AddSnackbar(w, c.localized(r, "RadarItem.Messages.Created", "item created"), htmx.StatusSuccess)
		htmx.Redirect(w, "/radar/items")
	}
	writeJSON(w, http.StatusCreated, mappers.ItemToWire(created))
}

func (c *ItemsAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(mux.Vars(r), "item_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_ID", "invalid item id")
		return
	}

	var dto item.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_JSON", "invalid json")
		return
	}

	c.update(w, r, id, &dto)
}

// SubmitForm accepts the form shape back, inverts it to the wire shape
// and stores the result. The label on each association row is discarded;
// only radar ids and quadrant selections survive the flatten.
func (c *ItemsAPIController) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(mux.Vars(r), "item_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_ID", "invalid item id")
		return
	}

	var vm viewmodels.ItemFormVM
	if err := json.NewDecoder(r.Body).Decode(&vm); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_ITEM_INVALID_JSON", "invalid json")
		return
	}

	existing, err := c.items.GetByID(r.Context(), id)
	if err != nil {
		c.writeItemError(w, r, err)
		return
	}

	c.update(w, r, id, forms.SubmitToUpdateDTO(&vm, existing.ProbationResult()))
}

func (c *ItemsAPIController) update(w http.ResponseWriter, r *http.Request, id uuid.UUID, dto *item.UpdateDTO) {
	if errs, ok := dto.Ok(r.Context()); !ok {
		writeValidationErrors(w, r, errs)
		return
	}

	updated, err := c.items.Update(r.Context(), id, dto)
	if err != nil {
		c.writeItemError(w, r, err)
		return
	}

	if htmx.IsHxRequest(r) {
		htmx.AddSnackbar(w, c.localized(r, "RadarItem.Messages.Updated", "item updated"), htmx.StatusSuccess)
	}
	writeJSON(w, http.StatusOK, mappers.ItemToWire(updated))
}

func (c *ItemsAPIController) writeItemError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, item.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "RADAR_ITEM_NOT_FOUND", c.localized(r, "RadarItem.Errors.NotFound", "radar item not found"))
	case errors.Is(err, radar.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "RADAR_NOT_FOUND", c.localized(r, "Radar.Errors.NotFound", "radar not found"))
	case errors.Is(err, item.ErrQuadrantNotDefined):
		writeAPIError(w, r, http.StatusUnprocessableEntity, "RADAR_QUADRANT_NOT_DEFINED", c.localized(r, "RadarItem.Errors.QuadrantNotDefined", "quadrant is not defined on the radar"))
	default:
		writeAPIError(w, r, http.StatusInternalServerError, "RADAR_INTERNAL", "internal error")
	}
}

func (c *ItemsAPIController) localized(r *http.Request, messageID, fallback string) string {
	l, ok := intl.UseLocalizer(r.Context())
	if !ok {
		return fallback
	}
	localized, err := l.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil || strings.TrimSpace(localized) == "" {
		return fallback
	}
	return localized
}
