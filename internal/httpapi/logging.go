package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// logRequest emits one line per completed request.
func logRequest(r *http.Request, status int, start time.Time) {
	dur := time.Since(start)
	if zlog != nil {
		z := zlog.Info().Str("method", r.Method).Str("path", r.URL.Path).Int("status", status).Dur("dur", dur)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("request")
		return
	}
	log.Printf("http method=%s path=%s status=%d dur=%s", r.Method, r.URL.Path, status, dur)
}

// AccessLog instruments requests with one completion log line each.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: 200}
		start := time.Now()
		next.ServeHTTP(sr, r)
		logRequest(r, sr.status, start)
	})
}
