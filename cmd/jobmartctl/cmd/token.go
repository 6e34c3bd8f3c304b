package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/jobmart/pkg/auth"
)

func newAdminTokenCmd() *cobra.Command {
	token := &cobra.Command{
		Use:   "admin-token",
		Short: "Manage the admin API token",
	}
	token.AddCommand(&cobra.Command{
		Use:   "hash <token>",
		Short: "Print the bcrypt hash to put in ADMIN_TOKEN_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := (&auth.HashService{}).HashToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	})
	return token
}
