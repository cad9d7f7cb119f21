package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase"
)

func newDayCommand(ctx context.Context, days usecase.IDayUseCase) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "day <user_id>",
		Short: "Show the bookings of a user on a date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			sheet, err := days.GetSheet(ctx, args[0], date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := sheet.Day.Slug()
			if sheet.Day.Locked {
				header += " (locked)"
			}
			fmt.Fprintln(out, header)
			if len(sheet.Bookings) == 0 {
				fmt.Fprintln(out, "no bookings")
				return nil
			}
			for _, b := range sheet.Bookings {
				fmt.Fprintf(out, "%3d. %s %s\n", b.Position, timesheet.FormatHours(b.Duration), b.Title)
			}
			fmt.Fprintf(out, "total %s\n", sheet.Total)
			if sheet.OverLimit {
				fmt.Fprintln(out, "warning: bookings exceed 24 hours")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse(entities.DateLayout, dateFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}
