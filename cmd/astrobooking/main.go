package main

import (
	"os"

	"github.com/osa911/astrobooking/internal/logging"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

var rootCmd = &cobra.Command{
	Use:   "astrobooking",
	Short: "AstroSharma booking backend",
	Long: `astrobooking runs the booking and contact API of AstroSharma and carries
a few operational helpers for checking mail delivery.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.GetLogger()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(smtpTestCmd)
	rootCmd.AddCommand(sampleBookingCmd)
	rootCmd.AddCommand(versionCmd)

	smtpTestCmd.Flags().String("to", "", "Recipient of the probe email (defaults to ADMIN_EMAIL)")
	sampleBookingCmd.Flags().String("url", "http://localhost:5000", "Base URL of a running server")
	sampleBookingCmd.Flags().String("email", "", "User email for the sample booking (defaults to ADMIN_EMAIL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
