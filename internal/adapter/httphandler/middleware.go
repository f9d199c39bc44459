package httphandler

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
)

const unmatchedRoute = "unmatched"

type RequestRecorder interface {
	RecordRequest(method, route string, statusCode int, d time.Duration)
}

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// RecordMetrics labels requests by the matched mux pattern so that product
// ids do not blow up the label cardinality.
func RecordMetrics(rec RequestRecorder, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		rec.RecordRequest(r.Method, route, m.Code, m.Duration)
	}
	return http.HandlerFunc(hf)
}
