package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/services"
)

// Contact delivery variants: persist the message, relay it by email, or both.
const (
	DeliveryStore = "store"
	DeliveryEmail = "email"
	DeliveryBoth  = "both"
)

type contactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	List(ctx context.Context) ([]*models.Contact, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	SetRead(ctx context.Context, id primitive.ObjectID, isRead bool) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactMailer interface {
	SendContactNotification(c *models.Contact) error
}

type ContactHandler struct {
	repo     contactRepository
	mailer   contactMailer
	admin    services.AdminPolicy
	respond  *Responder
	delivery string
}

func NewContactHandler(repo contactRepository, mailer contactMailer, admin services.AdminPolicy, respond *Responder, delivery string) *ContactHandler {
	switch delivery {
	case DeliveryStore, DeliveryEmail, DeliveryBoth:
	default:
		delivery = DeliveryStore
	}
	return &ContactHandler{repo: repo, mailer: mailer, admin: admin, respond: respond, delivery: delivery}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name, err := requiredString(req.Name, "Name")
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	email, err := requiredString(req.Email, "Email")
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !validEmail(email) {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid email format", nil)
		return
	}
	message, err := requiredString(req.Message, "Message")
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	contact := &models.Contact{
		Name:    name,
		Email:   email,
		Subject: optionalString(req.Subject),
		Message: message,
	}

	if h.delivery == DeliveryStore || h.delivery == DeliveryBoth {
		if err := h.repo.Create(r.Context(), contact); err != nil {
			h.respond.Fail(w, http.StatusInternalServerError, "Failed to save message", err)
			return
		}
	}

	if h.delivery == DeliveryEmail || h.delivery == DeliveryBoth {
		if err := h.mailer.SendContactNotification(contact); err != nil {
			if h.delivery == DeliveryEmail {
				h.respond.Fail(w, http.StatusInternalServerError, "Failed to send message", err)
				return
			}
			// Stored copy survives; the relay is best-effort.
			log.Printf("failed to relay contact message from %s: %v", contact.Email, err)
		}
	}

	var data interface{}
	if h.delivery != DeliveryEmail {
		data = contact
	}
	h.respond.Success(w, http.StatusCreated, "Message sent successfully", data)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.admin.IsAdmin(strings.TrimSpace(r.URL.Query().Get("userEmail"))) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	contacts, err := h.repo.List(r.Context())
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch contacts", err)
		return
	}
	h.respond.List(w, len(contacts), contacts)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.admin.IsAdmin(strings.TrimSpace(r.URL.Query().Get("userEmail"))) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid contact ID", nil)
		return
	}

	contact, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Contact not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to fetch contact", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "", contact)
}

// Update flips the read flag on a stored message.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ContactUpdateInput
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
		h.respond.Fail(w, http.StatusBadRequest, "Invalid contact ID", nil)
		return
	}

	updated, err := h.repo.SetRead(r.Context(), id, coerceBool(req.IsRead))
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Contact not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to update contact", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Contact updated successfully", updated)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.admin.IsAdmin(strings.TrimSpace(r.URL.Query().Get("userEmail"))) {
		h.respond.Fail(w, http.StatusForbidden, "Admin access required", nil)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid contact ID", nil)
		return
	}

	err = h.repo.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.respond.Fail(w, http.StatusNotFound, "Contact not found", nil)
		return
	}
	if err != nil {
		h.respond.Fail(w, http.StatusInternalServerError, "Failed to delete contact", err)
		return
	}

	h.respond.Success(w, http.StatusOK, "Contact deleted successfully", nil)
}
