package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/jobmart/internal/reconcile"
)

func newReconcileCmd() *cobra.Command {
	rec := &cobra.Command{
		Use:   "reconcile",
		Short: "Inspect and resolve the reconciliation journal",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List journal entries awaiting an operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			journal, err := reconcile.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer journal.Close()

			entries, err := journal.List(all)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tCOMMAND\tSUBJECT\tRECORDED\tRESOLVED\tERROR")
			for _, e := range entries {
				resolved := "-"
				if e.ResolvedAt != nil {
					resolved = e.ResolvedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Kind, e.Command, e.Subject, e.CreatedAt.Format(time.RFC3339), resolved, e.Error)
			}
			return w.Flush()
		},
	}
	list.Flags().Bool("all", false, "include resolved entries")

	resolve := &cobra.Command{
		Use:   "resolve <entry-id>",
		Short: "Mark a journal entry as handled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := reconcile.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer journal.Close()

			entry, err := journal.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "resolved %s (%s %s)\n", entry.ID, entry.Command, entry.Subject)
			return nil
		},
	}

	rec.AddCommand(list, resolve)
	return rec
}
