package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// newLogCmd creates the log command.
func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent observations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openLedger()
			if err != nil {
				return err
			}
			defer db.Close()

			obs, err := db.RecentObservations(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(obs) == 0 {
				fmt.Fprintln(out, "No observations logged.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STATE\tCOLLAPSED\tOBSERVED")
			for _, o := range obs {
				fmt.Fprintf(w, "%s\t%.3f\t%s\n",
					o.StateID, o.Collapsed, humanize.Time(time.Unix(o.ObservedAt, 0)))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum observations to show")

	return cmd
}
