package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/services"
)

type stubProjectRepo struct {
	featured []*models.Project
}

func (s *stubProjectRepo) Create(ctx context.Context, p *models.Project) error { return nil }
func (s *stubProjectRepo) List(ctx context.Context) ([]*models.Project, error) {
	return []*models.Project{}, nil
}
func (s *stubProjectRepo) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	return s.featured, nil
}
func (s *stubProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return nil, repository.ErrNotFound
}
func (s *stubProjectRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Project, error) {
	return nil, repository.ErrNotFound
}
func (s *stubProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return repository.ErrNotFound
}

type stubCourseworkRepo struct{}

func (s *stubCourseworkRepo) Create(ctx context.Context, c *models.Coursework) error { return nil }
func (s *stubCourseworkRepo) List(ctx context.Context) ([]*models.Coursework, error) {
	return []*models.Coursework{}, nil
}
func (s *stubCourseworkRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Coursework, error) {
	return nil, repository.ErrNotFound
}
func (s *stubCourseworkRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Coursework, error) {
	return nil, repository.ErrNotFound
}
func (s *stubCourseworkRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return repository.ErrNotFound
}

type stubContactRepo struct{}

func (s *stubContactRepo) Create(ctx context.Context, c *models.Contact) error { return nil }
func (s *stubContactRepo) List(ctx context.Context) ([]*models.Contact, error) {
	return []*models.Contact{}, nil
}
func (s *stubContactRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return nil, repository.ErrNotFound
}
func (s *stubContactRepo) SetRead(ctx context.Context, id primitive.ObjectID, isRead bool) (*models.Contact, error) {
	return nil, repository.ErrNotFound
}
func (s *stubContactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return repository.ErrNotFound
}

type stubMailer struct{}

func (s *stubMailer) SendContactNotification(c *models.Contact) error { return nil }

type stubResumeRepo struct{}

func (s *stubResumeRepo) Get(ctx context.Context) (*models.Resume, error) {
	return &models.Resume{}, nil
}
func (s *stubResumeRepo) Upsert(ctx context.Context, link string) (*models.Resume, error) {
	return &models.Resume{Link: &link}, nil
}

type stubTracking struct{}

func (s *stubTracking) Track(ctx context.Context, ip, rawUA, path string) error { return nil }
func (s *stubTracking) EndSession(ctx context.Context, ip string, seconds int64) error {
	return nil
}
func (s *stubTracking) ListVisitors(ctx context.Context) ([]*models.Visitor, error) {
	return []*models.Visitor{}, nil
}

func newTestRouter(projects *stubProjectRepo) http.Handler {
	respond := handlers.NewResponder("test")
	admin := services.NewEmailAdminPolicy("admin@example.com")
	tracking := &stubTracking{}

	return New(
		handlers.NewProjectHandler(projects, respond),
		handlers.NewCourseworkHandler(&stubCourseworkRepo{}, admin, respond),
		handlers.NewContactHandler(&stubContactRepo{}, &stubMailer{}, admin, respond, handlers.DeliveryStore),
		handlers.NewResumeHandler(&stubResumeRepo{}, admin, respond),
		handlers.NewVisitorHandler(tracking, admin, respond),
		tracking,
		respond,
		"http://localhost:3000",
	)
}

func get(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rr.Body.String(), err)
	}
	return rr, body
}

func TestRouter_FeaturedMatchesBeforeID(t *testing.T) {
	projects := &stubProjectRepo{featured: []*models.Project{
		{ID: primitive.NewObjectID(), Title: "Portfolio", IsFeatured: true},
	}}
	router := newTestRouter(projects)

	rr, body := get(t, router, "/api/projects/featured")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if body["success"] != true {
		t.Error("Expected success envelope")
	}
	if body["count"].(float64) != 1 {
		t.Errorf("Expected count 1, got %v", body["count"])
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(&stubProjectRepo{})

	rr, body := get(t, router, "/api/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rr.Code)
	}
	if body["success"] != false {
		t.Error("Expected success false")
	}
	if body["message"] != "Route not found" {
		t.Errorf("Expected 'Route not found', got %v", body["message"])
	}
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(&stubProjectRepo{})

	rr, body := get(t, router, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if body["success"] != true {
		t.Error("Expected success true")
	}
	if body["message"] != "Portfolio API is running" {
		t.Errorf("Unexpected message: %v", body["message"])
	}
	if _, ok := body["timestamp"]; !ok {
		t.Error("Expected timestamp in health response")
	}
}

func TestRouter_TrackerScriptRoute(t *testing.T) {
	router := newTestRouter(&stubProjectRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/track/script.js", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Errorf("Expected application/javascript, got %q", ct)
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := newTestRouter(&stubProjectRepo{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on the response")
	}
}
