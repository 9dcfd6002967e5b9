package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

type projectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	List(ctx context.Context) ([]*models.Project, error)
	ListFeatured(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProjectHandler has no admin gate: write protection for projects lives in
// the calling frontend.
type ProjectHandler struct {
	repo    projectRepository
	respond *Responder
}

func NewProjectHandler(repo projectRepository, respond *Responder) *ProjectHandler {
	return &ProjectHandler{repo: repo, respond: respond}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.List(r.Context())
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch projects", err)
		return
	}
	h.respond.List(w, len(projects), projects)
}

func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.ListFeatured(r.Context())
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch featured projects", err)
		return
	}
	h.respond.List(w, len(projects), projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid project ID", nil)
		return
	}

	project, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Project not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch project", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "", project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	project, err := projectFromInput(&req)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.repo.Create(r.Context(), project); err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to create project", err)
		return
	}

	h.respond.Success(w, http.StatusCreated, "Project created successfully", project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid project ID", nil)
		return
	}

	var req models.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	project, err := projectFromInput(&req)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, projectFields(project))
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Project not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to update project", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Project updated successfully", updated)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid project ID", nil)
		return
	}

	err = h.repo.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Project not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to delete project", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Project deleted successfully", nil)
}

func projectFromInput(req *models.ProjectInput) (*models.Project, error) {
	title, err := requiredString(req.Title, "Title")
	if err != nil {
		return nil, err
	}
	description, err := requiredString(req.Description, "Description")
	if err != nil {
		return nil, err
	}
	image, err := requiredString(req.Image, "Image")
	if err != nil {
		return nil, err
	}

	return &models.Project{
		Title:            title,
		Description:      description,
		Image:            image,
		Tags:             stringArray(req.Tags),
		LiveLink:         optionalString(req.LiveLink),
		ClientSourceCode: optionalString(req.ClientSourceCode),
		ServerSourceCode: optionalString(req.ServerSourceCode),
		IsFeatured:       coerceBool(req.IsFeatured),
	}, nil
}

func projectFields(p *models.Project) bson.M {
	return bson.M{
		"title":            p.Title,
		"description":      p.Description,
		"image":            p.Image,
		"tags":             p.Tags,
		"liveLink":         p.LiveLink,
		"clientSourceCode": p.ClientSourceCode,
		"serverSourceCode": p.ServerSourceCode,
		"isFeatured":       p.IsFeatured,
	}
}
