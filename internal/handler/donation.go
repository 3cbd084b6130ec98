package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/payment"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
)

// DonationStore is the donation persistence surface the handlers need.
type DonationStore interface {
	Create(ctx context.Context, d model.Donation) (model.Donation, error)
	List(ctx context.Context) ([]model.Donation, error)
}

// OrderCreator is the gateway surface used for phase one of a donation.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (payment.Order, error)
}

// DonationHandler serves the two-phase donation flow: order creation
// before payment, and the confirmation save after the gateway reports
// success. Both calls are public; the confirmation trusts the
// client-supplied amount and payment id, the two phases being correlated
// only by the client passing the same amount through.
type DonationHandler struct {
	Donations DonationStore
	Gateway   OrderCreator
	Publish   Publisher
}

func NewDonationHandler(donations DonationStore, gateway OrderCreator, publish Publisher) *DonationHandler {
	return &DonationHandler{Donations: donations, Gateway: gateway, Publish: publish}
}

type orderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type saveDonationReq struct {
	Amount    int64  `json:"amount"`
	PaymentID string `json:"paymentId"`
}

// CreateOrder handles POST /create-order. The gateway call is synchronous
// and its order object is relayed to the client verbatim.
func (h *DonationHandler) CreateOrder(c echo.Context) error {
	var req orderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 20*time.Second)
	defer cancel()

	order, err := h.Gateway.CreateOrder(ctx, req.Amount, req.Currency, req.Receipt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment order failed"})
	}
	return c.JSON(http.StatusOK, order)
}

// SaveDonation handles POST /save-donation, persisting the confirmation
// the client reports after the gateway completed the charge.
func (h *DonationHandler) SaveDonation(c echo.Context) error {
	var req saveDonationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.PaymentID = strings.TrimSpace(req.PaymentID)
	if req.Amount <= 0 || req.PaymentID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount and paymentId are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	saved, err := h.Donations.Create(ctx, model.Donation{
		Amount:    req.Amount,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save donation"})
	}

	_ = h.Publish(ctx, queue.SubmissionReceivedEvent{
		Kind:       "donation",
		DocumentID: saved.ID.Hex(),
		Amount:     saved.Amount,
		ReceivedAt: saved.Date.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// List handles GET /donations. Admin-only, newest first.
func (h *DonationHandler) List(c echo.Context) error {
	items, err := h.Donations.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}
