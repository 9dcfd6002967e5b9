package services

import (
	"context"
	"strings"
	"time"

	"github.com/mssola/useragent"

	"portfolio-backend/internal/models"
)

type visitorStore interface {
	RecordHit(ctx context.Context, hit *models.VisitorHit) error
	AddSessionTime(ctx context.Context, ip string, seconds int64) error
	List(ctx context.Context) ([]*models.Visitor, error)
}

// TrackingService maintains the IP-keyed visitor session model: first/last
// visit bookkeeping, visit counting and client-reported time-on-site.
type TrackingService struct {
	repo visitorStore
}

func NewTrackingService(repo visitorStore) *TrackingService {
	return &TrackingService{repo: repo}
}

// Track records one qualifying page hit from the given address.
func (s *TrackingService) Track(ctx context.Context, ip, rawUA, path string) error {
	if ip == "" {
		return nil
	}

	browser, device, osName := classifyUserAgent(rawUA)
	return s.repo.RecordHit(ctx, &models.VisitorHit{
		IP:      ip,
		Browser: browser,
		Device:  device,
		OS:      osName,
		Path:    path,
		At:      time.Now().UTC(),
	})
}

// EndSession flushes a client-reported session window for the given address.
// A lost flush simply undercounts; a duplicate one double-counts.
func (s *TrackingService) EndSession(ctx context.Context, ip string, seconds int64) error {
	return s.repo.AddSessionTime(ctx, ip, seconds)
}

func (s *TrackingService) ListVisitors(ctx context.Context) ([]*models.Visitor, error) {
	return s.repo.List(ctx)
}

func classifyUserAgent(raw string) (browser, device, osName string) {
	ua := useragent.New(raw)

	browser, _ = ua.Browser()
	if browser == "" {
		browser = "Unknown"
	}

	osName = ua.OSInfo().Name
	if osName == "" {
		osName = "Unknown"
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "tablet") || strings.Contains(lower, "ipad"):
		device = "Tablet"
	case ua.Mobile():
		device = "Mobile"
	default:
		device = "Desktop"
	}
	return browser, device, osName
}
