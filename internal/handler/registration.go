package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
)

// maxResumeBytes caps volunteer resumes at 5 MB; the global request body
// limit is higher to leave room for multi-photo event uploads.
const maxResumeBytes = 5 << 20

// RegistrationStore is the registration persistence surface the handlers
// need. The collection is append-only, so there is no update or delete.
type RegistrationStore interface {
	Create(ctx context.Context, reg model.Registration) (model.Registration, error)
	List(ctx context.Context) ([]model.Registration, error)
}

// RegistrationHandler serves the public volunteer form and the gated
// admin listing.
type RegistrationHandler struct {
	Regs    RegistrationStore
	Media   MediaUploader
	Publish Publisher
}

func NewRegistrationHandler(regs RegistrationStore, media MediaUploader, publish Publisher) *RegistrationHandler {
	return &RegistrationHandler{Regs: regs, Media: media, Publish: publish}
}

// Create handles POST /api/registrations (public, multipart). A PDF
// resume is mandatory and is checked server-side for MIME type and size
// regardless of what the browser validated. The record is persisted only
// after the upload succeeds; a failed persist removes the staged file.
func (h *RegistrationHandler) Create(c echo.Context) error {
	reg := model.Registration{
		Name:                      strings.TrimSpace(c.FormValue("name")),
		PhoneNumber:               strings.TrimSpace(c.FormValue("phoneNumber")),
		Email:                     strings.ToLower(strings.TrimSpace(c.FormValue("email"))),
		Address:                   strings.TrimSpace(c.FormValue("address")),
		City:                      strings.TrimSpace(c.FormValue("city")),
		State:                     strings.TrimSpace(c.FormValue("state")),
		Occupation:                strings.TrimSpace(c.FormValue("occupation")),
		WorksDone:                 strings.TrimSpace(c.FormValue("worksDone")),
		ContributionsAchievements: strings.TrimSpace(c.FormValue("contributionsAchievements")),
	}
	if reg.Name == "" || reg.PhoneNumber == "" || reg.Email == "" ||
		reg.Address == "" || reg.City == "" || reg.State == "" || reg.Occupation == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields except worksDone and contributionsAchievements are required"})
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["resume"]) != 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a resume file is required"})
	}
	resume := form.File["resume"][0]
	if resume.Size > maxResumeBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "resume must be 5MB or smaller"})
	}
	if ct := resume.Header.Get("Content-Type"); ct != "application/pdf" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "resume must be a PDF"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	resumeURL, err := h.Media.Upload(ctx, "resumes", resume)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}
	reg.ResumeURL = resumeURL

	saved, err := h.Regs.Create(ctx, reg)
	if err != nil {
		rollbackUploads(ctx, h.Media, []string{resumeURL})
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save registration"})
	}

	// Best effort: the registration is already persisted.
	_ = h.Publish(ctx, queue.SubmissionReceivedEvent{
		Kind:       "registration",
		DocumentID: saved.ID.Hex(),
		Name:       saved.Name,
		Email:      saved.Email,
		ReceivedAt: saved.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, saved)
}

// List handles GET /registrations. Admin-only, newest first.
func (h *RegistrationHandler) List(c echo.Context) error {
	items, err := h.Regs.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}
