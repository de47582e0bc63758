package htmx

import (
	"encoding/json"
	"net/http"
)

// Snackbar statuses understood by the admin shell's toast listener.
const (
	StatusSuccess = "success"
	StatusAlert   = "alert"
)

type snackbarPayload struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsHxRequest reports whether the request was issued by HTMX.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// AddSnackbar queues a toast on the client via the HX-Trigger response
// header. Must be called before the response status is written.
func AddSnackbar(w http.ResponseWriter, message, status string) {
	payload, err := json.Marshal(map[string]any{
		"addSnackbar": snackbarPayload{Message: message, Status: status},
	})
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(payload))
}

// Redirect instructs HTMX to perform a client-side redirect.
func Redirect(w http.ResponseWriter, path string) {
	w.Header().Set("HX-Redirect", path)
}
