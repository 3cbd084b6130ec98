package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
)

// TeamStore is the team-member persistence surface the handlers need.
type TeamStore interface {
	Create(ctx context.Context, m model.TeamMember) (model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	GetByID(ctx context.Context, id string) (model.TeamMember, error)
	Update(ctx context.Context, id string, upd repository.TeamUpdate) (model.TeamMember, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, updates []repository.OrderUpdate) error
}

// TeamHandler serves the public team reads and the gated team writes.
type TeamHandler struct {
	Team  TeamStore
	Media MediaUploader
}

func NewTeamHandler(team TeamStore, media MediaUploader) *TeamHandler {
	return &TeamHandler{Team: team, Media: media}
}

// List handles GET /team. Public; sorted by the manual order key.
func (h *TeamHandler) List(c echo.Context) error {
	items, err := h.Team.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /team/:id. Public.
func (h *TeamHandler) Get(c echo.Context) error {
	m, err := h.Team.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team member not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, m)
}

// Create handles POST /team (multipart). Exactly one image is required;
// the image is uploaded before the record is persisted and removed again
// if persisting fails.
func (h *TeamHandler) Create(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	position := strings.TrimSpace(c.FormValue("position"))
	description := strings.TrimSpace(c.FormValue("description"))
	if name == "" || position == "" || description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, position and description are required"})
	}

	order := 0
	if v := strings.TrimSpace(c.FormValue("order")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order"})
		}
		order = n
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["image"]) != 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "exactly one image is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	imageURL, err := h.Media.Upload(ctx, "team", form.File["image"][0])
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	m, err := h.Team.Create(ctx, model.TeamMember{
		Name:        name,
		Position:    position,
		Description: description,
		Image:       imageURL,
		Order:       order,
	})
	if err != nil {
		rollbackUploads(ctx, h.Media, []string{imageURL})
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create team member"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /team/:id (multipart). Only supplied fields change.
// A new image replaces the stored URL; the superseded remote file is left
// in place.
func (h *TeamHandler) Update(c echo.Context) error {
	id := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	var upd repository.TeamUpdate
	if vals, ok := form.Value["name"]; ok && len(vals) > 0 {
		v := strings.TrimSpace(vals[0])
		if v == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
		}
		upd.Name = &v
	}
	if vals, ok := form.Value["position"]; ok && len(vals) > 0 {
		v := strings.TrimSpace(vals[0])
		if v == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "position cannot be empty"})
		}
		upd.Position = &v
	}
	if vals, ok := form.Value["description"]; ok && len(vals) > 0 {
		v := strings.TrimSpace(vals[0])
		if v == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "description cannot be empty"})
		}
		upd.Description = &v
	}
	if vals, ok := form.Value["order"]; ok && len(vals) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order"})
		}
		upd.Order = &n
	}

	var staged string
	if files := form.File["image"]; len(files) > 0 {
		url, err := h.Media.Upload(ctx, "team", files[0])
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
		}
		staged = url
		upd.Image = &url
	}

	m, err := h.Team.Update(ctx, id, upd)
	if err != nil {
		if staged != "" {
			rollbackUploads(ctx, h.Media, []string{staged})
		}
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team member not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /team/:id. The remote image file stays in place.
func (h *TeamHandler) Delete(c echo.Context) error {
	err := h.Team.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team member not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type reorderReq struct {
	OrderUpdates []repository.OrderUpdate `json:"orderUpdates"`
}

// Reorder handles POST /team/order. The id/order pairs are applied as a
// single batch write; every id is validated before anything is written, so
// a bad id rejects the whole request. The re-sorted list is returned.
func (h *TeamHandler) Reorder(c echo.Context) error {
	var req reorderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.OrderUpdates) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "orderUpdates is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Team.Reorder(ctx, req.OrderUpdates); err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reorder failed"})
	}

	items, err := h.Team.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}
