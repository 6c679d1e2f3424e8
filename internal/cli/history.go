package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"donut-tell-me/internal/store"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs",
		Long: `List recent runs from the configured history store, newest first.

Examples:
  donut-tell-me history
  donut-tell-me history --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			a, err := setup(setupOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			runs, err := a.store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			printHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")

	return cmd
}

func printHistory(out io.Writer, runs []store.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs yet. Open the shop with: donut-tell-me play")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENDED\tBAKER\tOUTCOME\tREGULARS\tSERVED\tAVG RANK\tPOLICY")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.1f\t%s/%s\n",
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Player,
			r.Outcome,
			r.Regulars,
			r.Served,
			r.AverageRank,
			r.RankPolicy,
			r.QueuePolicy,
		)
	}
	w.Flush()
}
