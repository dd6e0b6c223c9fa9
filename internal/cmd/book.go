package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/booking"
	"github.com/golasco/golasco/internal/ux"
)

var bookCmd = &cobra.Command{
	Use:   "book PROPERTY_ID",
	Short: "Book a property with an online payment",
	Long: `Book a property. The booking amount is 10% of the listed price,
collected through the payment provider's checkout.

Requires a signed-in customer account. Agents, franchise owners, and
admins cannot book.

Examples:
  golasco book PROPERTY_ID`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()

		property, err := app.Client.GetProperty(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		fmt.Printf("Booking %s for ₹%.0f (10%% of ₹%.0f)\n",
			property.Title, property.BookingAmount(), property.Price)

		outcome := app.Booking.Book(cmd.Context(), app.Auth.Current(), property)
		switch outcome.Status {
		case booking.StatusVerified:
			fmt.Println("Booking confirmed. The property is reserved for you.")
			return nil
		case booking.StatusAbandoned:
			fmt.Println("Booking cancelled. No payment was taken.")
			return nil
		case booking.StatusManualVerify:
			fmt.Println("Payment received but not yet verified.")
			fmt.Println("We will verify your payment manually; the booking will appear once confirmed.")
			return nil
		case booking.StatusRedirectLogin:
			fmt.Println("Sign in with a customer account to book:")
			fmt.Println("  golasco auth login --email you@example.com --password ...")
			return outcome.Err
		default:
			return ux.EnhanceError(outcome.Err)
		}
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
}
