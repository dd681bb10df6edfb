package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored states",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openLedger()
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := db.ListStates()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No states in the ledger.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tPRIMARY\tSECONDARY\tCOHERENCE\tSTATE\tCREATED")
			for _, e := range entries {
				tag := "Superposed"
				if e.State.Observed {
					tag = "Observed"
				}
				fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\t%s\t%s\n",
					e.State.ID,
					e.State.Field.Primary.Label,
					e.State.Field.Primary.Magnitude,
					e.State.Field.Secondary.Magnitude,
					e.State.Field.Coherence,
					tag,
					humanize.Time(e.CreatedAt),
				)
			}
			return w.Flush()
		},
	}
}
