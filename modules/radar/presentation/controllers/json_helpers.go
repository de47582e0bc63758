package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/pkg/configuration"
	"github.com/iota-uz/radar-admin/pkg/httpapi"
	"github.com/iota-uz/radar-admin/pkg/intl"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		panic(err)
	}
}

func ensureRequestID(w http.ResponseWriter, r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(configuration.Use().RequestIDHeader)
	if header == "" {
		header = "X-Request-ID"
	}

	requestID := strings.TrimSpace(r.Header.Get(header))
	if requestID == "" {
		requestID = strings.TrimSpace(r.Header.Get("X-Request-Id"))
	}
	if requestID == "" {
		requestID = uuid.NewString()
		w.Header().Set(header, requestID)
	}
	return requestID
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	if locale, ok := intl.UseLocale(r.Context()); ok {
		w.Header().Set("Content-Language", locale.String())
	}
	meta := map[string]string{
		"request_id": ensureRequestID(w, r),
	}
	writeJSON(w, status, httpapi.ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

func writeValidationErrors(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	meta := map[string]string{
		"request_id": ensureRequestID(w, r),
	}
	for field, message := range errs {
		meta["field."+field] = message
	}
	writeJSON(w, http.StatusUnprocessableEntity, httpapi.ErrorEnvelope{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Meta:    meta,
	})
}

func pathUUID(vars map[string]string, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(vars[key]))
	return id, err == nil
}
