package main

import "github.com/spf13/cobra"

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and delete payment profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get [customer-code]",
			Short: "Fetch a payment profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				profile, err := a.gateway.Profiles().GetProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(profile)
			},
		},
		&cobra.Command{
			Use:   "delete [customer-code]",
			Short: "Delete a payment profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.gateway.Profiles().DeleteProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(resp)
			},
		},
	)

	return cmd
}
