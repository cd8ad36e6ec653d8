package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/northwestmeats/storefront/internal/util"
)

type StatusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LoggerMiddleware emits one structured line per completed request.
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger == nil {
				temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
				logger = &temp
			}

			recorder := &StatusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(recorder, r)

			event := logger.Info()
			if payload := util.GetTokenPayloadFromContext(r.Context()); payload != nil {
				event = event.Str("admin", payload.Username)
			}
			event.
				Str("request_id", util.GetRequestID(r.Context())).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recorder.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request completed")
		})
	}
}
