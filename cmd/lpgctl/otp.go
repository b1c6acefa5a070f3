package main

import (
	"fmt"

	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/service"

	"github.com/spf13/cobra"
)

var otpCmd = &cobra.Command{
	Use:   "otp",
	Short: "One-time code maintenance",
}

var otpPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired and consumed one-time codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		otp := service.NewOTPService(repository.NewOTPRepository(e.db), nil, service.LogMailer{}, service.OTPOptions{
			Length:      e.cfg.OTPLength,
			TTL:         e.cfg.OTPTTL(),
			MaxAttempts: e.cfg.OTPMaxAttempts,
		})
		n, err := otp.PurgeExpired(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "purged %d codes\n", n)
		return nil
	},
}

func init() {
	otpCmd.AddCommand(otpPurgeCmd)
	rootCmd.AddCommand(otpCmd)
}
