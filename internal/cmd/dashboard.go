package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/ux"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your role's dashboard",
	Long: `Show the dashboard for your role.

Each role sees its own summary: customers their leads and bookings,
agents their pipeline, franchise owners their inventory and revenue,
admins the accounts awaiting approval.

Examples:
  golasco dashboard
  golasco dashboard -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()

		sess := app.Auth.Current()
		dash, err := app.Dashboards.Load(cmd.Context(), sess)
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		if outputFormat != "text" && outputFormat != "" {
			switch {
			case dash.Customer != nil:
				return f.Format(dash.Customer)
			case dash.Agent != nil:
				return f.Format(dash.Agent)
			case dash.Franchise != nil:
				return f.Format(dash.Franchise)
			case dash.Admin != nil:
				return f.Format(dash.Admin)
			}
		}

		fmt.Printf("Dashboard · %s\n\n", sess.Role())
		switch {
		case dash.Customer != nil:
			c := dash.Customer
			fmt.Printf("Leads:              %d\n", c.TotalLeads)
			fmt.Printf("Completed bookings: %d\n", c.CompletedBookings)
			for _, l := range c.Leads {
				fmt.Printf("  %-10s %-12s property %s\n", l.Type, l.Status, l.PropertyID)
			}
		case dash.Agent != nil:
			a := dash.Agent
			fmt.Printf("Assigned leads: %d\n", a.TotalLeads)
			fmt.Printf("Properties:     %d\n", a.PropertiesCount)
		case dash.Franchise != nil:
			fr := dash.Franchise
			fmt.Printf("Properties: %d (%d available, %d booked, %d sold)\n",
				fr.TotalProperties, fr.AvailableProperties, fr.BookedProperties, fr.SoldProperties)
			fmt.Printf("Booking revenue: ₹%.0f\n", fr.TotalBookingAmount)
		case dash.Admin != nil:
			a := dash.Admin
			fmt.Printf("Total users:   %d\n", a.TotalUsers)
			fmt.Printf("Pending users: %d\n", len(a.PendingUsers))
			for _, u := range a.PendingUsers {
				fmt.Printf("  %-36s  %-20s  %s\n", u.ID, u.Email, u.Role)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
