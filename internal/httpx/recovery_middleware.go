package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

func RecoveryMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				if err := recover(); err != nil {
					log.Error().
						Str("request_id", RequestIDFrom(r)).
						Interface("error", err).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					if !rw.wroteHeader() {
						JSONError(rw, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
					}
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
