// Package cmd implements jobmartctl, the operator tool for funding decisions,
// balance lookups and the reconciliation journal.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/jobmart/internal/config"
	"github.com/GlebRadaev/jobmart/pkg/logger"
)

var cfg *config.Config

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "jobmartctl",
		Short:        "Operate a jobmart deployment",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if flag := cmd.Flags().Lookup("journal"); flag != nil && flag.Changed {
				loaded.JournalPath = flag.Value.String()
			}
			if flag := cmd.Flags().Lookup("database"); flag != nil && flag.Changed {
				loaded.Database = flag.Value.String()
			}
			cfg = loaded
			return logger.InitLogger(cfg)
		},
	}
	root.PersistentFlags().String("journal", "", "reconciliation journal file (default $JOURNAL_PATH)")
	root.PersistentFlags().String("database", "", "database DSN (default $DATABASE_URI)")

	root.AddCommand(newFundingCmd(), newBalanceCmd(), newReconcileCmd(), newAdminTokenCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
