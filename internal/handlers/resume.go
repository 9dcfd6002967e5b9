package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type resumeRepository interface {
	Get(ctx context.Context) (*models.Resume, error)
	Upsert(ctx context.Context, link string) (*models.Resume, error)
}

type ResumeHandler struct {
	repo    resumeRepository
	admin   services.AdminPolicy
	respond *Responder
}

func NewResumeHandler(repo resumeRepository, admin services.AdminPolicy, respond *Responder) *ResumeHandler {
	return &ResumeHandler{repo: repo, admin: admin, respond: respond}
}

func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	resume, err := h.repo.Get(r.Context())
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch resume link", err)
		return
	}
	h.respond.Success(w, http.StatusOK, "", resume)
}

// Put upserts the singleton; unlike the other resources it never 404s.
func (h *ResumeHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.ResumeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !h.admin.IsAdmin(strings.TrimSpace(req.UserEmail)) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	link, err := requiredString(req.Link, "Link")
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		h.respond.Fail(w, http.StatusBadRequest, "Link must start with http:// or https://", nil)
		return
	}

	resume, err := h.repo.Upsert(r.Context(), link)
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to update resume link", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Resume link updated successfully", resume)
}
