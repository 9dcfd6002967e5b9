package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type fakeRecorder struct {
	mu    sync.Mutex
	calls []trackedHit
}

type trackedHit struct {
	ip, rawUA, path string
}

func (f *fakeRecorder) Track(ctx context.Context, ip, rawUA, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, trackedHit{ip, rawUA, path})
	return nil
}

func (f *fakeRecorder) snapshot() []trackedHit {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]trackedHit, len(f.calls))
	copy(out, f.calls)
	return out
}

// waitForCalls polls for the async track goroutine to land.
func (f *fakeRecorder) waitForCalls(t *testing.T, n int) []trackedHit {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if calls := f.snapshot(); len(calls) >= n {
			return calls
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %d tracked hits, got %d", n, len(f.snapshot()))
	return nil
}

func serveTracked(recorder *fakeRecorder, path, remoteAddr, ua string) {
	handler := Tracker(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestTracker_RecordsPageHits(t *testing.T) {
	recorder := &fakeRecorder{}

	serveTracked(recorder, "/", "1.2.3.4:5678", "test-agent")
	serveTracked(recorder, "/about", "1.2.3.4:5678", "test-agent")

	calls := recorder.waitForCalls(t, 2)
	paths := map[string]bool{}
	for _, c := range calls {
		paths[c.path] = true
		if c.ip != "1.2.3.4" {
			t.Errorf("Expected address 1.2.3.4, got %q", c.ip)
		}
		if c.rawUA != "test-agent" {
			t.Errorf("Expected user agent passed through, got %q", c.rawUA)
		}
	}
	if !paths["/"] || !paths["/about"] {
		t.Errorf("Expected hits for / and /about, got %v", paths)
	}
}

func TestTracker_SkipsAPIAndAdminPaths(t *testing.T) {
	recorder := &fakeRecorder{}

	serveTracked(recorder, "/api", "1.2.3.4:5678", "test-agent")
	serveTracked(recorder, "/api/projects", "1.2.3.4:5678", "test-agent")
	serveTracked(recorder, "/api/track/end-session", "1.2.3.4:5678", "test-agent")
	serveTracked(recorder, "/admin", "1.2.3.4:5678", "test-agent")
	serveTracked(recorder, "/admin/dashboard", "1.2.3.4:5678", "test-agent")

	// Give any stray goroutine a moment to land before asserting zero.
	time.Sleep(50 * time.Millisecond)
	if calls := recorder.snapshot(); len(calls) != 0 {
		t.Errorf("Expected no tracked hits, got %v", calls)
	}
}

func TestTracker_PrefixMatchesWholeSegments(t *testing.T) {
	recorder := &fakeRecorder{}

	// Pages that merely start with the reserved prefixes are still pages.
	serveTracked(recorder, "/apiary", "1.2.3.4:5678", "test-agent")
	serveTracked(recorder, "/administrator", "1.2.3.4:5678", "test-agent")

	calls := recorder.waitForCalls(t, 2)
	paths := map[string]bool{}
	for _, c := range calls {
		paths[c.path] = true
	}
	if !paths["/apiary"] || !paths["/administrator"] {
		t.Errorf("Expected /apiary and /administrator to be tracked, got %v", paths)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"host with port", "1.2.3.4:999", "1.2.3.4"},
		{"bare host", "10.0.0.1", "10.0.0.1"},
		{"ipv6 with port", "[::1]:8080", "::1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if got := ClientIP(req); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
