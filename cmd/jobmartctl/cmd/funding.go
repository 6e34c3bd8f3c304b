package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

func newFundingCmd() *cobra.Command {
	funding := &cobra.Command{
		Use:   "funding",
		Short: "Decide pending wallet fundings",
	}
	funding.AddCommand(
		newDecisionCmd("approve", "Credit the wallet with a pending funding", func(ctx context.Context, id uuid.UUID) (*walletservice.FundingResult, error) {
			services, closeFn, err := openServices(ctx)
			if err != nil {
				return nil, err
			}
			defer closeFn()
			return services.AdminService.ApproveFunding(ctx, id)
		}),
		newDecisionCmd("reject", "Close a pending funding without credit", func(ctx context.Context, id uuid.UUID) (*walletservice.FundingResult, error) {
			services, closeFn, err := openServices(ctx)
			if err != nil {
				return nil, err
			}
			defer closeFn()
			return services.AdminService.RejectFunding(ctx, id)
		}),
	)
	return funding
}

func newDecisionCmd(use, short string, decide func(ctx context.Context, id uuid.UUID) (*walletservice.FundingResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <transaction-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}
			result, err := decide(cmd.Context(), id)
			if err != nil {
				return err
			}
			txn := result.Transaction
			note := ""
			if result.Replayed {
				note = " (already decided)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d coins for %s%s\n", txn.ID, txn.Status, txn.AmountCoins, txn.AccountID, note)
			return nil
		},
	}
}
