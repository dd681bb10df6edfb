package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talgya/quasi/internal/quasi"
)

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	var (
		id        string
		label     string
		primary   float64
		secondary float64
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Construct a state and persist it to the ledger",
		Example: `  # The sample pair from the demo
  quasi new --id iceberg_01 --label energy --primary 42.0 --secondary -41.8

  # Let quasi mint an id
  quasi new --label charge --primary 3.25 --secondary -8.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if id == "" {
				id = uuid.NewString()
			}

			s := quasi.New(id, label, primary, secondary)

			db, err := openLedger()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.PutState(s); err != nil {
				return err
			}

			slog.Debug("state created", "id", s.ID, "coherence", s.Field.Coherence)
			fmt.Fprintln(cmd.OutOrStdout(), s.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "state id (minted when empty)")
	cmd.Flags().StringVar(&label, "label", "", "token label")
	cmd.Flags().Float64Var(&primary, "primary", 0, "primary magnitude")
	cmd.Flags().Float64Var(&secondary, "secondary", 0, "secondary magnitude")

	return cmd
}
