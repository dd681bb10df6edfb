package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/quasi/internal/quasi"
)

// newDemoCmd creates the demo command: the canonical construct / measure /
// observe / invert walkthrough on the iceberg_01 sample state. It touches
// no ledger; the state lives and dies inside the run.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical demonstration sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			s := quasi.New("iceberg_01", "energy", 42.0, -41.8)
			fmt.Fprintln(out, s.Render())

			fmt.Fprintf(out, "\nMeasuring coherence: %.3f\n", s.MeasureCoherence())
			fmt.Fprintf(out, "Observing collapse: %.3f\n", s.Observe())
			fmt.Fprintf(out, "State after observation:\n%s\n", s.Render())

			fmt.Fprintln(out, "\nPerforming inversion...")
			s.Invert()
			fmt.Fprintf(out, "State after inversion:\n%s\n", s.Render())
			return nil
		},
	}
}
