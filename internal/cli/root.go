package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inhouse/internal/app"
	"inhouse/internal/config"
	"inhouse/internal/usecase"
)

// Deps are the use cases the commands run against.
type Deps struct {
	Timers usecase.ITimerUseCase
	Days   usecase.IDayUseCase
	Sanity usecase.ISanityUseCase
}

// NewRootCommand creates the top-level Cobra command hosting the
// maintenance subcommands.
func NewRootCommand(ctx context.Context, deps Deps) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:           "inhousectl",
		Short:         "Maintenance and timer commands for the inhouse back office.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&user, "user", os.Getenv("INHOUSE_USER"), "User id recorded as modifier (default: $INHOUSE_USER)")

	cmd.AddCommand(
		newSanityCommand(ctx, deps.Sanity),
		newTimerCommand(ctx, deps.Timers, &user),
		newDayCommand(ctx, deps.Days),
		newMinutesCommand(),
	)

	return cmd
}

// ExecuteCommand loads the configuration, connects to DynamoDB and runs the
// root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ddb, err := app.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	uc := app.Build(ddb, cfg)
	cmd := NewRootCommand(ctx, Deps{Timers: uc.Timers, Days: uc.Days, Sanity: uc.Sanity})
	return cmd.Execute()
}

// Main is used by cmd/inhousectl to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
