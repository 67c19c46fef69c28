package main

import (
	"context"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/service"
	"github.com/spf13/cobra"
)

func newPaymentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Complete, return or void existing payments",
	}

	followUps := []struct {
		use   string
		short string
		call  func(p *service.PaymentsAPI, ctx context.Context, id string, amount float64) (*domain.Transaction, error)
	}{
		{"complete", "Capture a pre-authorized payment", (*service.PaymentsAPI).Complete},
		{"return", "Refund a completed payment", (*service.PaymentsAPI).Return},
		{"void", "Void an unsettled payment", (*service.PaymentsAPI).Void},
	}

	for _, f := range followUps {
		f := f // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		var amount float64
		sub := &cobra.Command{
			Use:   f.use + " [payment-id]",
			Short: f.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				txn, err := f.call(a.gateway.Payments(), cmd.Context(), args[0], amount)
				if err != nil {
					return err
				}
				return a.print(txn)
			},
		}
		sub.Flags().Float64Var(&amount, "amount", 0, "amount to apply")
		_ = sub.MarkFlagRequired("amount")
		cmd.AddCommand(sub)
	}

	return cmd
}
