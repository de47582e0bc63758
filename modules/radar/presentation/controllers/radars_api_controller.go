package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	goi18n "github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/mappers"
	"github.com/iota-uz/radar-admin/modules/radar/services"
	"github.com/iota-uz/radar-admin/pkg/application"
	"github.com/iota-uz/radar-admin/pkg/htmx"
	"github.com/iota-uz/radar-admin/pkg/intl"
	"github.com/iota-uz/radar-admin/pkg/middleware"
)

type RadarsAPIController struct {
	app      application.Application
	radars   *services.RadarService
	basePath string
}

func NewRadarsAPIController(app application.Application) application.Controller {
	return &RadarsAPIController{
		app:      app,
		radars:   app.Service(services.RadarService{}).(*services.RadarService),
		basePath: "/radar/api",
	}
}

func (c *RadarsAPIController) Key() string {
	return c.basePath + "/radars"
}

func (c *RadarsAPIController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.ProvideLocalizer(c.app),
	}

	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware...)
	router.HandleFunc("/radars", c.List).Methods(http.MethodGet)
	router.HandleFunc("/radars/{radar_id}", c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(commonMiddleware...)
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("/radars", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/radars/{radar_id}", c.Update).Methods(http.MethodPut)
}

// List returns the full radar catalog; the item form reconciles against
// exactly this payload, so no pagination is applied.
func (c *RadarsAPIController) List(w http.ResponseWriter, r *http.Request) {
	entities, err := c.radars.GetAll(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "RADAR_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": mappers.RadarsToListItems(entities),
	})
}

func (c *RadarsAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(mux.Vars(r), "radar_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_INVALID_ID", "invalid radar id")
		return
	}

	entity, err := c.radars.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, radar.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "RADAR_NOT_FOUND", c.localized(r, "Radar.Errors.NotFound", "radar not found"))
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "RADAR_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.RadarToFormVM(entity))
}

func (c *RadarsAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto radar.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_INVALID_JSON", "invalid json")
		return
	}

	if errs, ok := dto.Ok(r.Context()); !ok {
		writeValidationErrors(w, r, errs)
		return
	}

	created, err := c.radars.Create(r.Context(), &dto)
	if err != nil {
		c.writeRadarError(w, r, err)
		return
	}

	if htmx.IsHxRequest(r) {
		htmx.AddSnackbar(w, c.localized(r, "Radar.Messages.Created", "radar created"), htmx.StatusSuccess)
		htmx.Redirect(w, "/radar/radars")
	}
	writeJSON(w, http.StatusCreated, mappers.RadarToFormVM(created))
}

func (c *RadarsAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(mux.Vars(r), "radar_id")
	if !ok {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_INVALID_ID", "invalid radar id")
		return
	}

	var dto radar.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "RADAR_INVALID_JSON", "invalid json")
		return
	}

	if errs, ok := dto.Ok(r.Context()); !ok {
		writeValidationErrors(w, r, errs)
		return
	}

	updated, err := c.radars.Update(r.Context(), id, &dto)
	if err != nil {
		c.writeRadarError(w, r, err)
		return
	}

	if htmx.IsHxRequest(r) {
		htmx.AddSnackbar(w, c.localized(r, "Radar.Messages.Updated", "radar updated"), htmx.StatusSuccess)
	}
	writeJSON(w, http.StatusOK, mappers.RadarToFormVM(updated))
}

func (c *RadarsAPIController) writeRadarError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, radar.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "RADAR_NOT_FOUND", c.localized(r, "Radar.Errors.NotFound", "radar not found"))
	case errors.Is(err, radar.ErrNameTaken):
		writeAPIError(w, r, http.StatusConflict, "RADAR_NAME_TAKEN", c.localized(r, "Radar.Errors.NameTaken", "radar name already exists"))
	default:
		writeAPIError(w, r, http.StatusInternalServerError, "RADAR_INTERNAL", "internal error")
	}
}

func (c *RadarsAPIController) localized(r *http.Request, messageID, fallback string) string {
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
