package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/payment"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
)

func TestCreateOrderRelaysGatewayResponse(t *testing.T) {
	gw := &fakeGateway{order: payment.Order{
		"id":       "order_123",
		"amount":   float64(50000),
		"currency": "INR",
		"status":   "created",
	}}
	h := NewDonationHandler(&fakeDonationStore{}, gw, noopPublisher)

	body := `{"amount":50000,"currency":"INR","receipt":"don_1"}`
	c, rec := newContext(t, http.MethodPost, "/create-order", strings.NewReader(body), echo.MIMEApplicationJSON)
	if err := h.CreateOrder(c); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body)
	}
	if gw.gotAmount != 50000 || gw.gotCurrency != "INR" {
		t.Errorf("gateway got amount=%d currency=%q", gw.gotAmount, gw.gotCurrency)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["id"] != "order_123" || resp["status"] != "created" {
		t.Errorf("order relayed wrong: %v", resp)
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	for _, body := range []string{`{"amount":0}`, `{"amount":-100}`, `{}`} {
		gw := &fakeGateway{}
		h := NewDonationHandler(&fakeDonationStore{}, gw, noopPublisher)

		c, rec := newContext(t, http.MethodPost, "/create-order", strings.NewReader(body), echo.MIMEApplicationJSON)
		if err := h.CreateOrder(c); err != nil {
			t.Fatalf("create order: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		if gw.gotAmount != 0 {
			t.Errorf("body %s: gateway was called", body)
		}
	}
}

func TestCreateOrderGatewayFailureIs500(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("payment order failed: status 502")}
	h := NewDonationHandler(&fakeDonationStore{}, gw, noopPublisher)

	c, rec := newContext(t, http.MethodPost, "/create-order", strings.NewReader(`{"amount":100}`), echo.MIMEApplicationJSON)
	if err := h.CreateOrder(c); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestSaveDonationPersistsAndPublishes(t *testing.T) {
	store := &fakeDonationStore{}
	var published []queue.SubmissionReceivedEvent
	h := NewDonationHandler(store, &fakeGateway{}, capturePublisher(&published))

	body := `{"amount":50000,"paymentId":"pay_abc"}`
	c, rec := newContext(t, http.MethodPost, "/save-donation", strings.NewReader(body), echo.MIMEApplicationJSON)
	if err := h.SaveDonation(c); err != nil {
		t.Fatalf("save donation: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body)
	}
	if len(store.donations) != 1 {
		t.Fatalf("persisted %d donations, want 1", len(store.donations))
	}
	if store.donations[0].Amount != 50000 || store.donations[0].PaymentID != "pay_abc" {
		t.Errorf("saved %+v", store.donations[0])
	}
	if len(published) != 1 || published[0].Kind != "donation" || published[0].Amount != 50000 {
		t.Errorf("published = %+v, want one donation event", published)
	}
}

func TestSaveDonationValidation(t *testing.T) {
	for _, body := range []string{
		`{"paymentId":"pay_abc"}`,
		`{"amount":100}`,
		`{"amount":100,"paymentId":"  "}`,
		`{"amount":-1,"paymentId":"pay_abc"}`,
	} {
		store := &fakeDonationStore{}
		h := NewDonationHandler(store, &fakeGateway{}, noopPublisher)

		c, rec := newContext(t, http.MethodPost, "/save-donation", strings.NewReader(body), echo.MIMEApplicationJSON)
		if err := h.SaveDonation(c); err != nil {
			t.Fatalf("save donation: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		if len(store.donations) != 0 {
			t.Errorf("body %s: a donation was persisted", body)
		}
	}
}
