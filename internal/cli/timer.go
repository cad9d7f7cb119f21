package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase"
)

func newTimerCommand(ctx context.Context, timers usecase.ITimerUseCase, user *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Start, stop, clear or show a timer.",
	}

	var title string
	start := &cobra.Command{
		Use:   "start <id>",
		Short: "Start a timer run.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := timers.Start(ctx, *user, args[0], title)
			if err != nil {
				return err
			}
			printTimer(cmd.OutOrStdout(), s)
			return nil
		},
	}
	start.Flags().StringVar(&title, "title", "", "Replace the timer title")

	stop := &cobra.Command{
		Use:   "stop <id>",
		Short: "Stop a timer run.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := timers.Stop(ctx, *user, args[0])
			if err != nil {
				return err
			}
			printTimer(cmd.OutOrStdout(), s)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "clear <id>",
		Short: "Reset a timer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := timers.Clear(ctx, *user, args[0])
			if err != nil {
				return err
			}
			printTimer(cmd.OutOrStdout(), s)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the elapsed time of a timer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := timers.Get(ctx, args[0])
			if err != nil {
				return err
			}
			printTimer(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.AddCommand(start, stop, reset, show)
	return cmd
}

func printTimer(w io.Writer, s usecase.TimerStatus) {
	state := "stopped"
	if s.Timer.Active {
		state = "running"
	}
	elapsed := s.ElapsedDisplay
	if elapsed == "" {
		elapsed = "00:00"
	}
	fmt.Fprintf(w, "%s [%s] %s elapsed=%s booked=%d:%02d\n", s.Timer.ID, state, s.Timer.Title, elapsed, s.Hours, s.Minutes)
}

func newMinutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "minutes <n>",
		Short: "Format a minute count as HH:MM.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse minutes: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), timesheet.FormatMinutes(n))
			return nil
		},
	}
}
