package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/username/consumption-calendar/internal/billing"
	"github.com/username/consumption-calendar/internal/calendar"
	"github.com/username/consumption-calendar/internal/publisher"
	"github.com/username/consumption-calendar/internal/tray"
	"go.uber.org/zap"
)

func monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months of the calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tMonth\tDays")
			for _, m := range calendar.Months() {
				fmt.Fprintf(w, "%d\t%s\t%d\n", m.Index+1, m.Name, m.Days)
			}
			return w.Flush()
		},
	}
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "day <month> <day>",
		Short:   "Show consumption by band and hour for one day",
		Example: "  consumption-calendar day march 14\n  consumption-calendar day 2 28",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthIndex, err := calendar.ParseMonth(args[0])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", calendar.ErrInvalidDay, args[1])
			}

			manager := initializeManager(cfg)
			report, err := manager.Day(monthIndex, day)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), billing.FormatDay(*report))
			return nil
		},
	}
}

func monthCmd() *cobra.Command {
	var showDays bool

	cmd := &cobra.Command{
		Use:     "month <month>",
		Aliases: []string{"summary"},
		Short:   "Monthly consultation: lowest and highest days and total cost",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthIndex, err := calendar.ParseMonth(args[0])
			if err != nil {
				return err
			}

			manager := initializeManager(cfg)
			summary, err := manager.Month(monthIndex)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, billing.FormatMonth(*summary))

			if showDays {
				reports, err := manager.MonthDays(monthIndex)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				if err := printDayTable(out, reports, summary); err != nil {
					return fmt.Errorf("failed to print day table: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDays, "days", false, "Also print a per-day breakdown")

	return cmd
}

func printDayTable(out io.Writer, reports []billing.DayReport, summary *billing.MonthlySummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Day\t00-06\t07-17\t18-23\tTotal kWh\tCost\t\t")
	for _, r := range reports {
		mark := ""
		switch r.Day {
		case summary.MinDay:
			mark = "min"
		case summary.MaxDay:
			mark = "max"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\t%s\t\n",
			r.Day, r.Bands[0], r.Bands[1], r.Bands[2], r.TotalKWh, humanize.Comma(int64(r.Cost)), mark)
	}
	return w.Flush()
}

func publishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <month>",
		Short: "Publish the monthly consultation to MQTT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthIndex, err := calendar.ParseMonth(args[0])
			if err != nil {
				return err
			}

			pub, err := publisher.New(cfg.MQTT, logger)
			if err != nil {
				return fmt.Errorf("creating publisher: %w", err)
			}
			defer pub.Close()

			manager := initializeManager(cfg)
			summary, err := manager.Month(monthIndex)
			if err != nil {
				return err
			}

			published := 0
			if cfg.MQTT.PublishDays {
				reports, err := manager.MonthDays(monthIndex)
				if err != nil {
					return err
				}
				for i := range reports {
					if err := pub.PublishDay(&reports[i]); err != nil {
						return err
					}
					published++
				}
			}

			if err := pub.PublishSummary(summary); err != nil {
				return err
			}
			published++

			logger.Info("Published consultation",
				zap.String("month", summary.Month),
				zap.Int("messages", published))
			fmt.Fprintf(cmd.OutOrStdout(), "Published %d message(s) for %s to %s\n",
				published, summary.Month, pub.SummaryTopic(summary.Month))
			return nil
		},
	}
}

func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Show the calendar as a system tray menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := initializeManager(cfg)

			logger.Info("Starting system tray")
			tray.NewTrayApp(manager, cfg.Tray.Title, logger).Run()
			return nil
		},
	}
}
