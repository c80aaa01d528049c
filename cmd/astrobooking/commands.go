package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osa911/astrobooking/internal/config"
	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/server"
	"github.com/osa911/astrobooking/internal/telemetry"
	"github.com/osa911/astrobooking/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading config: %v", err)
		os.Exit(1)
	}
	return cfg
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
		if err != nil {
			logger.Error("Failed to initialize tracing: %v", err)
			os.Exit(1)
		}
		defer shutdownTracing(context.Background())

		srv, err := server.NewServer(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to create server: %v", err)
			os.Exit(1)
		}
		if err := srv.Start(ctx); err != nil {
			logger.Error("Server stopped with error: %v", err)
			os.Exit(1)
		}
	},
}

var smtpTestCmd = &cobra.Command{
	Use:   "smtp-test",
	Short: "Send a plain text probe email through the configured transport",
	Long: `Send a single plain text email through the transport selected by
MAIL_TRANSPORT, using the same sender and credentials as the API.

Example:
  astrobooking smtp-test --to you@example.com`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			to = cfg.AdminEmail
		}
		if to == "" {
			logger.Error("No recipient: pass --to or set ADMIN_EMAIL")
			os.Exit(1)
		}

		srv, err := server.NewServer(cmd.Context(), cfg, logging.NewWriterLogger(os.Stderr, logging.LevelError))
		if err != nil {
			logger.Error("Failed to create mail transport: %v", err)
			os.Exit(1)
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending probe email to " + to + "..."
		s.Start()
		err = srv.Dispatcher().SendProbe(cmd.Context(), to)
		s.Stop()

		if err != nil {
			logger.Error("Probe email failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Probe email sent to %s via %s", to, cfg.MailTransport)
	},
}

var sampleBookingCmd = &cobra.Command{
	Use:   "sample-booking",
	Short: "Post a sample Quick Guidance booking to a running server",
	Run: func(cmd *cobra.Command, args []string) {
		baseURL, _ := cmd.Flags().GetString("url")
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			email = loadConfig().AdminEmail
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Posting sample booking..."
		s.Start()
		status, body, err := postSampleBooking(cmd.Context(), baseURL, email)
		s.Stop()

		if err != nil {
			logger.Error("Sample booking failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Response %d: %s", status, body)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("astrobooking version: %s", version.Info())
	},
}
