package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Simplici0/venueprofit/internal/ledger"
	"github.com/Simplici0/venueprofit/internal/money"
)

func BookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect recorded bookings",
	}
	cmd.AddCommand(bookingsListCmd(), bookingsSearchCmd())
	return cmd
}

func bookingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				records, err := a.service(a.cfg.Policy()).List(cmd.Context())
				if err != nil {
					return err
				}
				return writeRecords(cmd.OutOrStdout(), records)
			})
		},
	}
}

func bookingsSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search bookings by name or date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			q, _ := flags.GetString("q")
			rawFrom, _ := flags.GetString("from")
			rawTo, _ := flags.GetString("to")

			q = strings.TrimSpace(q)
			if q == "" && rawFrom == "" && rawTo == "" {
				return errors.New("provide --q or --from and --to")
			}

			var from, to time.Time
			if q == "" {
				var err error
				if from, err = parseFlagDate("from", rawFrom); err != nil {
					return err
				}
				if to, err = parseFlagDate("to", rawTo); err != nil {
					return err
				}
			}

			return withApp(cmd, func(a *app) error {
				svc := a.service(a.cfg.Policy())

				var (
					records []ledger.Record
					err     error
				)
				if q != "" {
					records, err = svc.Search(cmd.Context(), q)
				} else {
					records, err = svc.SearchDateRange(cmd.Context(), from, to)
				}
				if err != nil {
					return err
				}
				return writeRecords(cmd.OutOrStdout(), records)
			})
		},
	}

	flags := cmd.Flags()
	flags.String("q", "", "customer or room/hall name fragment")
	flags.String("from", "", "first booking date, YYYY-MM-DD")
	flags.String("to", "", "last booking date, YYYY-MM-DD")
	return cmd
}

func parseFlagDate(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(ledger.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be formatted YYYY-MM-DD: %w", name, err)
	}
	return d, nil
}

func writeRecords(w io.Writer, records []ledger.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDAY\tCUSTOMER\tCATEGORY\tUNIT\tDAYS\tPEOPLE\tRATE\tCOST\tREVENUE\tMARGIN\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Date.Format(ledger.DateLayout), r.DayOfWeek, r.CustomerName, r.Category, r.UnitName,
			r.NumberOfDays, r.NumberOfPeople,
			money.Format(r.SellingRate), money.Format(r.TotalCost), money.Format(r.TotalRevenue),
			money.Format(r.ProfitMargin), r.Status)
	}
	return tw.Flush()
}
