package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// newInvertCmd creates the invert command.
func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert ID",
		Short: "Swap a state's primary and secondary tokens",
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

			s.Invert()
			if err := db.PutState(s); err != nil {
				return err
			}

			slog.Debug("state inverted", "id", s.ID)
			fmt.Fprintln(cmd.OutOrStdout(), s.Render())
			return nil
		},
	}
}
