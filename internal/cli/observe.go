package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// newObserveCmd creates the observe command.
func newObserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "observe ID",
		Short: "Collapse a state and report the collapsed value",
		Long: `Collapse a stored state: mark it observed and report the mean of its two
magnitudes. Observation is one-way and idempotent, so re-observing an
already-observed state reports the same value. Every call is appended to
the observation log.`,
		Args: cobra.ExactArgs(1),
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

			collapsed := s.Observe()
			if err := db.PutState(s); err != nil {
				return err
			}
			if err := db.RecordObservation(s.ID, collapsed); err != nil {
				return err
			}

			slog.Debug("state observed", "id", s.ID, "collapsed", collapsed)
			fmt.Fprintf(cmd.OutOrStdout(), "Observing collapse: %.3f\n", collapsed)
			fmt.Fprintln(cmd.OutOrStdout(), s.Render())
			return nil
		},
	}
}
