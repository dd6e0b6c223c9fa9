package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptCheckout is the terminal rendition of the provider widget. It shows
// the order summary, waits for the payment to be made through the
// provider's hosted page, and collects the resulting payment reference and
// signature for backend verification.
type PromptCheckout struct{}

// NewPromptCheckout creates a terminal checkout.
func NewPromptCheckout() *PromptCheckout {
	return &PromptCheckout{}
}

// Open implements Checkout.
func (p *PromptCheckout) Open(ctx context.Context, opts Options) (Completion, error) {
	proceed := true
	var paymentID, signature string

	summary := fmt.Sprintf("%s\n%s\n\nOrder %s\nAmount: %s %.2f",
		opts.Name, opts.Description, opts.OrderID,
		opts.Currency, float64(opts.Amount)/100)
	if opts.Prefill.Email != "" {
		summary += "\nBilled to: " + opts.Prefill.Name + " <" + opts.Prefill.Email + ">"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Proceed to payment?").
				Description(summary).
				Affirmative("Pay now").
				Negative("Cancel").
				Value(&proceed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Payment ID").
				Description("Shown by the payment page after the charge completes").
				Value(&paymentID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("payment ID is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Payment signature").
				Value(&signature).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("signature is required")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !proceed }),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if err == huh.ErrUserAborted {
			return Completion{}, ErrDismissed{}
		}
		return Completion{}, fmt.Errorf("checkout prompt failed: %w", err)
	}

	if !proceed {
		return Completion{}, ErrDismissed{}
	}

	return Completion{
		OrderID:   opts.OrderID,
		PaymentID: strings.TrimSpace(paymentID),
		Signature: strings.TrimSpace(signature),
	}, nil
}
