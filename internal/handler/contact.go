package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
)

// ContactStore is the contact-message persistence surface the handlers need.
type ContactStore interface {
	Create(ctx context.Context, m model.Contact) (model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ContactHandler serves the public contact form and the gated admin views.
type ContactHandler struct {
	Contacts ContactStore
	Publish  Publisher
}

func NewContactHandler(contacts ContactStore, publish Publisher) *ContactHandler {
	return &ContactHandler{Contacts: contacts, Publish: publish}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Create handles POST /contact (public). All four fields are required.
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email, subject and message are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	saved, err := h.Contacts.Create(ctx, model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save message"})
	}

	_ = h.Publish(ctx, queue.SubmissionReceivedEvent{
		Kind:       "contact",
		DocumentID: saved.ID.Hex(),
		Name:       saved.Name,
		Email:      saved.Email,
		Subject:    saved.Subject,
		ReceivedAt: saved.Date.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// List handles GET /contact. Admin-only, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	items, err := h.Contacts.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /contact/:id. Admin-only; repeated deletes 404.
func (h *ContactHandler) Delete(c echo.Context) error {
	err := h.Contacts.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
