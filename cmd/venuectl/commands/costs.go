package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/venueprofit/internal/costs"
	"github.com/Simplici0/venueprofit/internal/money"
	"github.com/Simplici0/venueprofit/internal/profitability"
)

func CostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Inspect cost profiles",
	}
	cmd.AddCommand(costsListCmd())
	return cmd
}

func costsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost profiles with their daily unit cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			if category != "" && !costs.Category(category).Valid() {
				return fmt.Errorf("--category must be %q or %q", costs.CategoryHall, costs.CategoryRoom)
			}

			return withApp(cmd, func(a *app) error {
				profiles, err := costs.NewStore(a.db, a.log).List(cmd.Context(), costs.Category(category))
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(tw, "NAME\tCATEGORY\tUTILITY\tMAINTENANCE\tSTAFFING\tCONSUMABLE\tMARKETING\tASSET\tLIFESPAN\tUNIT COST\t")
				for _, p := range profiles {
					result := profitability.Calculate(p.CostInput(), profitability.BookingInput{NumberOfDays: 1, NumberOfPeople: 1}, a.cfg.Policy())
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t\n",
						p.Name, p.Category,
						money.Format(p.UtilityCost), money.Format(p.MaintenanceCost), money.Format(p.StaffingCost),
						money.Format(p.ConsumableCost), money.Format(p.MarketingCost), money.Format(p.AssetCost),
						p.Lifespan, money.Format(result.Breakdown.UnitCost))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().String("category", "", "restrict to Hall or Room")
	return cmd
}
