package cmd

import (
	"context"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/auth"
	"github.com/golasco/golasco/internal/booking"
	"github.com/golasco/golasco/internal/checkout"
	"github.com/golasco/golasco/internal/config"
	"github.com/golasco/golasco/internal/dashboard"
	"github.com/golasco/golasco/internal/session"
	"github.com/golasco/golasco/internal/tui"
	"github.com/golasco/golasco/internal/ux"
)

// newApp wires the services behind every command: the backend client, the
// persisted session, and the flows built on them. The stored session is
// hydrated before the first request so commands run authenticated when a
// prior login exists.
func newApp() *tui.App {
	cfg := loadedConfig

	client := api.NewClient(cfg.APIURL).WithTimeout(cfg.RequestTimeout)
	store := session.NewStore(config.Dir())

	authSvc := auth.NewService(client, store)
	authSvc.Hydrate()

	widget := checkout.NewLoader(func(ctx context.Context) (checkout.Checkout, error) {
		return checkout.NewPromptCheckout(), nil
	})

	return &tui.App{
		Auth:       authSvc,
		Dashboards: dashboard.NewLoader(client),
		Booking:    booking.NewFlow(client, widget),
		Client:     client,
	}
}

// formatter builds the output formatter selected by --output.
func formatter() (ux.Formatter, error) {
	return ux.NewFormatter(outputFormat, nil)
}
