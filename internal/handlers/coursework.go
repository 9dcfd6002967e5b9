package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/services"
)

type courseworkRepository interface {
	Create(ctx context.Context, c *models.Coursework) error
	List(ctx context.Context) ([]*models.Coursework, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Coursework, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Coursework, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CourseworkHandler struct {
	repo    courseworkRepository
	admin   services.AdminPolicy
	respond *Responder
}

func NewCourseworkHandler(repo courseworkRepository, admin services.AdminPolicy, respond *Responder) *CourseworkHandler {
	return &CourseworkHandler{repo: repo, admin: admin, respond: respond}
}

func (h *CourseworkHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch coursework", err)
		return
	}
	h.respond.List(w, len(items), items)
}

func (h *CourseworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid coursework ID", nil)
		return
	}

	item, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Coursework not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch coursework", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "", item)
}

func (h *CourseworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CourseworkInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Admin gate runs before any other validation.
	if !h.admin.IsAdmin(strings.TrimSpace(req.UserEmail)) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	item, err := courseworkFromInput(&req)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.repo.Create(r.Context(), item); err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to create coursework", err)
		return
	}

	h.respond.Success(w, http.StatusCreated, "Coursework created successfully", item)
}

func (h *CourseworkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.CourseworkInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !h.admin.IsAdmin(strings.TrimSpace(req.UserEmail)) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid coursework ID", nil)
		return
	}

	item, err := courseworkFromInput(&req)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, courseworkFields(item))
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Coursework not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to update coursework", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Coursework updated successfully", updated)
}

func (h *CourseworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.admin.IsAdmin(strings.TrimSpace(r.URL.Query().Get("userEmail"))) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid coursework ID", nil)
		return
	}

	err = h.repo.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Coursework not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to delete coursework", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Coursework deleted successfully", nil)
}

func courseworkFromInput(req *models.CourseworkInput) (*models.Coursework, error) {
	title, err := requiredString(req.Title, "Title")
	if err != nil {
		return nil, err
	}

	return &models.Coursework{
		Title:       title,
		Code:        optionalString(req.Code),
		Description: optionalString(req.Description),
		Instructor:  optionalString(req.Instructor),
		Status:      enumOrDefault(req.Status, models.CourseworkStatuses, models.StatusOngoing),
		Tags:        stringArray(req.Tags),
	}, nil
}

func courseworkFields(c *models.Coursework) bson.M {
	return bson.M{
		"title":       c.Title,
		"code":        c.Code,
		"description": c.Description,
		"instructor":  c.Instructor,
		"status":      c.Status,
		"tags":        c.Tags,
	}
}
