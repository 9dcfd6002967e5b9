package middleware

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	apiPrefix   = "/api"
	adminPrefix = "/admin"
)

// HitRecorder receives qualifying page hits.
type HitRecorder interface {
	Track(ctx context.Context, ip, rawUA, path string) error
}

// Tracker updates the visitor record for every qualifying request. API and
// admin paths bypass tracking entirely. Recording happens off the request
// goroutine so a slow storage call never delays the page.
func Tracker(tracking HitRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !underPrefix(path, apiPrefix) && !underPrefix(path, adminPrefix) {
				ip := ClientIP(r)
				rawUA := r.UserAgent()

				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()

					if err := tracking.Track(ctx, ip, rawUA, path); err != nil {
						log.Printf("failed to record visitor hit from %s: %v", ip, err)
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// underPrefix matches the prefix as a whole path segment, so /apiary is a
// page, not an API route.
func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// ClientIP returns the client address without the port. chi's RealIP
// middleware has already rewritten RemoteAddr from the proxy headers when
// they are present.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
