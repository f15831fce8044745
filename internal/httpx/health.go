package httpx

import (
	"net/http"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ReadyHandler reports readiness once ready returns true. size is included
// in the response body.
func ReadyHandler(ready func() bool, size func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready() {
			JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Catalog not loaded")
			return
		}
		JSONSuccess(w, r, map[string]interface{}{"books": size()})
	}
}
