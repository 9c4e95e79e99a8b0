package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/venueprofit/internal/bookings"
	"github.com/Simplici0/venueprofit/internal/money"
	"github.com/Simplici0/venueprofit/internal/profitability"
)

func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Calculate the profitability of a booking",
		Long:  `Calculates cost, revenue and profit margin for a booking of the named room or hall using its current cost profile. With --save the booking is recorded under --customer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			unit, _ := flags.GetString("unit")
			days, _ := flags.GetInt("days")
			people, _ := flags.GetInt("people")
			rate, _ := flags.GetFloat64("rate")
			mode, _ := flags.GetString("mode")
			save, _ := flags.GetBool("save")
			customer, _ := flags.GetString("customer")

			req := bookings.Request{
				CustomerName:   customer,
				UnitName:       unit,
				NumberOfDays:   days,
				NumberOfPeople: people,
				SellingRate:    rate,
			}

			return withApp(cmd, func(a *app) error {
				policy := a.cfg.Policy()
				if mode != "" {
					policy.Mode = profitability.Mode(mode)
					if !policy.Mode.Valid() {
						return fmt.Errorf("--mode must be %q or %q", profitability.ModePerOccupant, profitability.ModeFlatRate)
					}
				}
				svc := a.service(policy)

				quote, err := svc.Preview(cmd.Context(), req)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, quote.String())
				fmt.Fprintf(out, "daily depreciation: %s\n", money.WithSymbol(quote.Result.Breakdown.DailyDepreciation))
				fmt.Fprintf(out, "unit cost per day:  %s\n", money.WithSymbol(quote.Result.Breakdown.UnitCost))
				fmt.Fprintf(out, "profit margin:      %s\n", money.Percent(quote.Result.Totals.ProfitMarginPercent))

				if !save {
					return nil
				}
				rec, err := svc.Record(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "saved booking #%d for %s on %s\n", rec.ID, rec.CustomerName, rec.DayOfWeek)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.String("unit", "", "room or hall name")
	flags.Int("days", 1, "number of days")
	flags.Int("people", 1, "number of people")
	flags.Float64("rate", 0, "selling rate per day")
	flags.String("mode", "", "cost mode: per_occupant or flat_rate (defaults to COST_MODE)")
	flags.Bool("save", false, "record the booking")
	flags.String("customer", "", "customer name, required with --save")
	_ = cmd.MarkFlagRequired("unit")
	return cmd
}
