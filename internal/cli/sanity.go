package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"inhouse/internal/usecase"
)

var ErrInconsistentPositions = errors.New("inconsistent positions found")

func newSanityCommand(ctx context.Context, sanity usecase.ISanityUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "sanity",
		Short: "Check that booking and step positions are unique within their scope.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := sanity.Check(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprintln(out, "no problems found")
				return nil
			}
			for _, f := range findings {
				fmt.Fprintln(out, f.String())
			}
			return fmt.Errorf("%w: %d", ErrInconsistentPositions, len(findings))
		},
	}
}
