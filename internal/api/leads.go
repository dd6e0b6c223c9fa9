package api

import (
	"context"
	"net/http"

	"github.com/golasco/golasco/internal/domain"
)

// LeadRequest declares interest in a property.
type LeadRequest struct {
	PropertyID string          `json:"property_id"`
	Type       domain.LeadType `json:"type"`
	Message    string          `json:"message,omitempty"`
}

// CreateLead submits a site-visit or loan enquiry.
func (c *Client) CreateLead(ctx context.Context, req LeadRequest) (*domain.Lead, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/leads", req)
	if err != nil {
		return nil, err
	}

	var lead domain.Lead
	if err := parseResponse(resp, &lead); err != nil {
		return nil, err
	}

	return &lead, nil
}

// BookingOrderRequest asks the backend to open a payment order for a
// property booking. Amount is the booking amount in major currency units.
type BookingOrderRequest struct {
	PropertyID string  `json:"property_id"`
	Amount     float64 `json:"amount"`
}

// BookingOrder is a provider-side payment order together with the lead
// that tracks it.
type BookingOrder struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CheckoutKey string  `json:"razorpay_key"`
	LeadID      string  `json:"lead_id"`
}

// CreateBookingOrder opens a payment order for a booking lead.
func (c *Client) CreateBookingOrder(ctx context.Context, req BookingOrderRequest) (*BookingOrder, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/leads/booking/create-order", req)
	if err != nil {
		return nil, err
	}

	var order BookingOrder
	if err := parseResponse(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// BookingVerification carries the provider's proof of payment back to
// the backend for signature verification.
type BookingVerification struct {
	LeadID            string `json:"lead_id"`
	ProviderOrderID   string `json:"razorpay_order_id"`
	ProviderPaymentID string `json:"razorpay_payment_id"`
	ProviderSignature string `json:"razorpay_signature"`
}

// VerifyBooking asks the backend to verify a completed payment.
func (c *Client) VerifyBooking(ctx context.Context, req BookingVerification) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/leads/booking/verify", req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// MyLeads fetches the signed-in user's leads.
func (c *Client) MyLeads(ctx context.Context) ([]domain.Lead, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/leads/my", nil)
	if err != nil {
		return nil, err
	}

	var leads []domain.Lead
	if err := parseResponse(resp, &leads); err != nil {
		return nil, err
	}

	return leads, nil
}
