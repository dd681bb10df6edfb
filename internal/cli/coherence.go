package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCoherenceCmd creates the coherence command.
func newCoherenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coherence ID",
		Short: "Report a state's stored coherence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openLedger()
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := db.GetState(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Measuring coherence: %.3f\n", s.MeasureCoherence())
			return nil
		},
	}
}
