package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/services"
	"portfolio-backend/web"
)

type trackingService interface {
	EndSession(ctx context.Context, ip string, seconds int64) error
	ListVisitors(ctx context.Context) ([]*models.Visitor, error)
}

type VisitorHandler struct {
	tracking trackingService
	admin    services.AdminPolicy
	respond  *Responder
}

func NewVisitorHandler(tracking trackingService, admin services.AdminPolicy, respond *Responder) *VisitorHandler {
	return &VisitorHandler{tracking: tracking, admin: admin, respond: respond}
}

func (h *VisitorHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.admin.IsAdmin(strings.TrimSpace(r.URL.Query().Get("userEmail"))) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	visitors, err := h.tracking.ListVisitors(r.Context())
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch visitors", err)
		return
	}
	h.respond.List(w, len(visitors), visitors)
}

// EndSession flushes the elapsed seconds the client accumulated for the
// session window of the caller's address.
func (h *VisitorHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	var req models.EndSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.SessionID) == "" || req.TimeSpent == nil {
		h.respond.Fail(w, http.StatusBadRequest, "sessionId and timeSpent are required", nil)
		return
	}

	// The shipped script sends whole seconds, but other callers may not.
	seconds := int64(math.Round(*req.TimeSpent))
	if seconds < 0 {
		// totalTimeSpent only ever increases
		h.respond.Fail(w, http.StatusBadRequest, "timeSpent must not be negative", nil)
		return
	}

	err := h.tracking.EndSession(r.Context(), middleware.ClientIP(r), seconds)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Visitor not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to record session time", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Session recorded", nil)
}

// Script serves the client heartbeat script.
func (h *VisitorHandler) Script(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.WriteHeader(http.StatusOK)
	w.Write(web.TrackerScript)
}
