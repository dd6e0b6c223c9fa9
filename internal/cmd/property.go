package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/ux"
)

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Browse the property catalog",
	Long: `Browse the Golasco property catalog.

The catalog is public; no login is needed.

Subcommands:
  list  List properties, optionally filtered
  show  Show one property

Examples:
  golasco property list --city Pune --max-price 5000000
  golasco property show PROPERTY_ID`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var propertyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")
		propertyType, _ := cmd.Flags().GetString("type")
		maxPrice, _ := cmd.Flags().GetFloat64("max-price")

		app := newApp()
		properties, err := app.Client.ListProperties(cmd.Context(), api.PropertyFilter{
			City:         city,
			PropertyType: propertyType,
			MaxPrice:     maxPrice,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		if outputFormat != "text" && outputFormat != "" {
			return f.Format(properties)
		}

		if len(properties) == 0 {
			fmt.Println("No properties match.")
			return nil
		}
		var b strings.Builder
		for _, p := range properties {
			fmt.Fprintf(&b, "%-36s  %-30s  %-12s  ₹%.0f\n", p.ID, p.Title, p.Status, p.Price)
		}
		return f.Format(strings.TrimRight(b.String(), "\n"))
	},
}

var propertyShowCmd = &cobra.Command{
	Use:   "show PROPERTY_ID",
	Short: "Show one property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()
		property, err := app.Client.GetProperty(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		if outputFormat != "text" && outputFormat != "" {
			return f.Format(property)
		}

		return f.Format(fmt.Sprintf("%s\n%s · %s\n₹%.0f (booking amount ₹%.0f)\nStatus: %s\n\n%s",
			property.Title, property.City, property.PropertyType,
			property.Price, property.BookingAmount(), property.Status, property.Description))
	},
}

func init() {
	propertyCmd.AddCommand(propertyListCmd)
	propertyCmd.AddCommand(propertyShowCmd)

	propertyListCmd.Flags().String("city", "", "Filter by city")
	propertyListCmd.Flags().String("type", "", "Filter by property type")
	propertyListCmd.Flags().Float64("max-price", 0, "Filter by maximum price")

	rootCmd.AddCommand(propertyCmd)
}
