// Package booking runs the booking-payment handshake: role gate, payment
// widget load, order creation, checkout, and backend verification.
package booking

import (
	"context"
	"errors"
	"math"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/checkout"
	"github.com/golasco/golasco/internal/domain"
	golerrors "github.com/golasco/golasco/internal/errors"
	"github.com/golasco/golasco/internal/log"
	"github.com/golasco/golasco/internal/session"
)

// Status is the terminal state of one booking attempt. Every attempt ends
// in exactly one of these; none of them transitions further.
type Status int

const (
	// StatusVerified means the payment was captured and the backend
	// confirmed the signature. The property is booked.
	StatusVerified Status = iota
	// StatusManualVerify means the provider reported a capture but the
	// backend could not verify it. The money may have moved; the booking
	// will be reconciled by hand.
	StatusManualVerify
	// StatusRedirectLogin means the visitor was not signed in. Nothing
	// was sent to the backend.
	StatusRedirectLogin
	// StatusRejected means the signed-in role may not book. Nothing was
	// sent to the backend.
	StatusRejected
	// StatusAbandoned means the payer closed the widget without paying.
	// The order stays open on the provider side and simply expires.
	StatusAbandoned
	// StatusFailed means the attempt broke before any money could move:
	// widget unavailable or order creation refused.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusVerified:
		return "verified"
	case StatusManualVerify:
		return "manual-verify"
	case StatusRedirectLogin:
		return "redirect-login"
	case StatusRejected:
		return "rejected"
	case StatusAbandoned:
		return "abandoned"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one booking attempt. Err is set for every
// status except StatusVerified and StatusAbandoned.
type Outcome struct {
	Status Status
	LeadID string
	Err    error
}

// Flow drives booking attempts. It holds no per-attempt state; one Flow
// serves any number of sequential or concurrent attempts.
type Flow struct {
	client *api.Client
	widget *checkout.Loader
	logger *log.Logger

	// DisplayName appears as the merchant line on the payment widget.
	DisplayName string
	// ThemeColor styles the payment widget.
	ThemeColor string
}

// NewFlow creates a booking flow.
func NewFlow(client *api.Client, widget *checkout.Loader) *Flow {
	return &Flow{
		client:      client,
		widget:      widget,
		logger:      log.DefaultLogger(),
		DisplayName: "Golasco Property",
		ThemeColor:  "#059669",
	}
}

// Book attempts to book the property for the session's user. The booking
// amount is a fixed 10% of the listed price; the widget is charged in
// minor currency units.
//
// Order: the session gate runs before any network activity, the widget
// must be available before an order is opened, and verification failure
// after a captured payment never claims the payment failed.
func (f *Flow) Book(ctx context.Context, sess session.Session, property *domain.Property) Outcome {
	if !sess.Active() {
		return Outcome{Status: StatusRedirectLogin, Err: golerrors.NewLoginRequiredError()}
	}
	if sess.Role() != domain.RoleCustomer {
		return Outcome{
			Status: StatusRejected,
			Err:    golerrors.NewCustomerRequiredError(string(sess.Role())),
		}
	}

	widget, err := f.widget.Get(ctx)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	amount := property.BookingAmount()
	order, err := f.client.CreateBookingOrder(ctx, api.BookingOrderRequest{
		PropertyID: property.ID,
		Amount:     amount,
	})
	if err != nil {
		return Outcome{
			Status: StatusFailed,
			Err:    golerrors.NewOrderCreateError(api.DetailOf(err), err),
		}
	}

	f.logger.Info("booking order opened",
		"property_id", property.ID, "lead_id", order.LeadID, "amount", order.Amount)

	completion, err := widget.Open(ctx, checkout.Options{
		Key:         order.CheckoutKey,
		Amount:      int64(math.Round(order.Amount * 100)),
		Currency:    order.Currency,
		Name:        f.DisplayName,
		Description: "Booking for " + property.Title,
		OrderID:     order.OrderID,
		Prefill: checkout.Prefill{
			Email: sess.Identity.Email,
			Name:  sess.Identity.FullName,
		},
		Theme: checkout.Theme{Color: f.ThemeColor},
	})
	if err != nil {
		if errors.Is(err, checkout.ErrDismissed{}) {
			f.logger.Info("checkout dismissed", "lead_id", order.LeadID)
			return Outcome{Status: StatusAbandoned, LeadID: order.LeadID}
		}
		return Outcome{
			Status: StatusFailed,
			LeadID: order.LeadID,
			Err:    golerrors.NewSDKUnavailableError(err),
		}
	}

	if err := f.client.VerifyBooking(ctx, api.BookingVerification{
		LeadID:            order.LeadID,
		ProviderOrderID:   completion.OrderID,
		ProviderPaymentID: completion.PaymentID,
		ProviderSignature: completion.Signature,
	}); err != nil {
		f.logger.Warn("booking verification failed, payment may have captured",
			"lead_id", order.LeadID, "error", err)
		return Outcome{
			Status: StatusManualVerify,
			LeadID: order.LeadID,
			Err:    golerrors.NewVerifyError("", err),
		}
	}

	f.logger.Info("booking verified", "lead_id", order.LeadID)
	return Outcome{Status: StatusVerified, LeadID: order.LeadID}
}
