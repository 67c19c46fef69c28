package main

import "github.com/spf13/cobra"

func newTransactionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Inspect individual transactions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [payment-id]",
		Short: "Fetch a single transaction by payment id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := a.gateway.Reporting().GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(txn)
		},
	})

	return cmd
}
