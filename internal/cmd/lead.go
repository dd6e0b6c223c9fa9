package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/ux"
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Raise and follow property enquiries",
	Long: `Raise and follow property enquiries (leads).

A lead tracks a site visit request, a loan enquiry, or a booking against
a property. Requires a signed-in account.

Subcommands:
  create  Raise a site-visit or loan enquiry
  list    List your leads

Examples:
  golasco lead create PROPERTY_ID --type site_visit --message "Weekend preferred"
  golasco lead list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var leadCreateCmd = &cobra.Command{
	Use:   "create PROPERTY_ID",
	Short: "Raise a site-visit or loan enquiry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leadType, _ := cmd.Flags().GetString("type")
		message, _ := cmd.Flags().GetString("message")

		switch domain.LeadType(leadType) {
		case domain.LeadSiteVisit, domain.LeadLoan:
		case domain.LeadBooking:
			return fmt.Errorf("booking leads are created through 'golasco book'")
		default:
			return fmt.Errorf("unknown lead type %q (use site_visit or loan)", leadType)
		}

		app := newApp()
		lead, err := app.Client.CreateLead(cmd.Context(), api.LeadRequest{
			PropertyID: args[0],
			Type:       domain.LeadType(leadType),
			Message:    message,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}

		fmt.Printf("Enquiry raised: %s (%s, %s)\n", lead.ID, lead.Type, lead.Status)
		return nil
	},
}

var leadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()
		leads, err := app.Client.MyLeads(cmd.Context())
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		if outputFormat != "text" && outputFormat != "" {
			return f.Format(leads)
		}

		if len(leads) == 0 {
			fmt.Println("No leads yet.")
			return nil
		}
		for _, l := range leads {
			fmt.Printf("%-36s  %-10s  %-12s  property %s\n", l.ID, l.Type, l.Status, l.PropertyID)
		}
		return nil
	},
}

func init() {
	leadCmd.AddCommand(leadCreateCmd)
	leadCmd.AddCommand(leadListCmd)

	leadCreateCmd.Flags().String("type", "site_visit", "Lead type: site_visit or loan")
	leadCreateCmd.Flags().String("message", "", "Optional note for the agent")

	rootCmd.AddCommand(leadCmd)
}
