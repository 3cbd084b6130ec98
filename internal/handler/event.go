package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
)

// EventStore is the event persistence surface the handlers need.
type EventStore interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id string) (model.Event, error)
	Update(ctx context.Context, id string, upd repository.EventUpdate) (model.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventHandler serves the public event reads and the gated event writes.
type EventHandler struct {
	Events EventStore
	Media  MediaUploader
}

func NewEventHandler(events EventStore, media MediaUploader) *EventHandler {
	return &EventHandler{Events: events, Media: media}
}

// List handles GET /events. Public; events come back newest date first.
func (h *EventHandler) List(c echo.Context) error {
	items, err := h.Events.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /events/:id. Public.
func (h *EventHandler) Get(c echo.Context) error {
	e, err := h.Events.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, e)
}

// Create handles POST /events (multipart). All photos are uploaded to the
// media host first and the record is persisted once; when any step fails,
// objects staged by this request are removed again so no orphaned record
// or half-referenced upload survives.
func (h *EventHandler) Create(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	dateStr := strings.TrimSpace(c.FormValue("date"))
	venue := strings.TrimSpace(c.FormValue("venue"))
	description := strings.TrimSpace(c.FormValue("description"))
	if name == "" || dateStr == "" || venue == "" || description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, date, venue and description are required"})
	}
	date, ok := parseDate(dateStr)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	uploaded := []string{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["photos"] {
			url, err := h.Media.Upload(ctx, "events", fh)
			if err != nil {
				rollbackUploads(ctx, h.Media, uploaded)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
			}
			uploaded = append(uploaded, url)
		}
	}

	e, err := h.Events.Create(ctx, model.Event{
		Name:        name,
		Date:        date,
		Venue:       venue,
		Description: description,
		Photos:      uploaded,
	})
	if err != nil {
		rollbackUploads(ctx, h.Media, uploaded)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}
	return c.JSON(http.StatusCreated, e)
}

// Update handles PUT /events/:id (multipart). Only supplied fields change.
// Photo handling merges the kept URLs from existingPhotos with any newly
// uploaded files; a request carrying neither leaves the photo list
// untouched, and an existingPhotos key with no values clears it.
func (h *EventHandler) Update(c echo.Context) error {
	id := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	cur, err := h.Events.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var upd repository.EventUpdate
	if vals, ok := form.Value["name"]; ok && len(vals) > 0 {
		v := strings.TrimSpace(vals[0])
		if v == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
		}
		upd.Name = &v
	}
	if vals, ok := form.Value["date"]; ok && len(vals) > 0 {
		d, ok := parseDate(vals[0])
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
		}
		upd.Date = &d
	}
	if vals, ok := form.Value["venue"]; ok && len(vals) > 0 {
		v := strings.TrimSpace(vals[0])
		if v == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue cannot be empty"})
		}
		upd.Venue = &v
	}
	if vals, ok := form.Value["description"]; ok && len(vals) > 0 {
		v := strings.TrimSpace(vals[0])
		if v == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "description cannot be empty"})
		}
		upd.Description = &v
	}

	existing, hasExisting := form.Value["existingPhotos"]
	newFiles := form.File["photos"]
	uploaded := []string{}
	if hasExisting || len(newFiles) > 0 {
		// Absent existingPhotos means "keep what is there", not "clear".
		kept := cur.Photos
		if hasExisting {
			kept = existing
		}
		for _, fh := range newFiles {
			url, err := h.Media.Upload(ctx, "events", fh)
			if err != nil {
				rollbackUploads(ctx, h.Media, uploaded)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
			}
			uploaded = append(uploaded, url)
		}
		merged := append(append([]string{}, kept...), uploaded...)
		upd.Photos = &merged
	}

	e, err := h.Events.Update(ctx, id, upd)
	if err != nil {
		rollbackUploads(ctx, h.Media, uploaded)
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /events/:id. The document is removed but remote
// photo files are left in place; deleting an already-deleted id is a 404.
func (h *EventHandler) Delete(c echo.Context) error {
	err := h.Events.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, repository.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
