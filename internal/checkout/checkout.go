// Package checkout abstracts the payment provider's checkout widget. The
// booking flow hands it an order to collect payment for and receives
// either the provider's proof of payment or a dismiss/failure outcome.
package checkout

import "context"

// Prefill pre-populates the widget's contact fields from the signed-in
// identity.
type Prefill struct {
	Email string
	Name  string
}

// Theme styles the widget.
type Theme struct {
	Color string
}

// Options configures one opening of the checkout widget. Amount is in
// minor currency units (paise for INR), as the provider requires.
type Options struct {
	Key         string
	Amount      int64
	Currency    string
	Name        string
	Description string
	OrderID     string
	Prefill     Prefill
	Theme       Theme
}

// Completion is the provider's proof of a captured payment. All three
// fields are required for backend signature verification.
type Completion struct {
	OrderID   string
	PaymentID string
	Signature string
}

// ErrDismissed reports that the payer closed the widget without paying.
type ErrDismissed struct{}

func (ErrDismissed) Error() string { return "checkout dismissed" }

// Checkout opens the provider's payment widget.
type Checkout interface {
	// Open presents the widget and blocks until the payer completes,
	// dismisses, or the context is cancelled. A dismissal is reported as
	// ErrDismissed; any other error means the widget itself failed.
	Open(ctx context.Context, opts Options) (Completion, error)
}
