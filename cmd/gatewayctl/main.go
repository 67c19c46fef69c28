package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/bambora-gateway-go/internal/adapters/codec"
	"github.com/DanielPopoola/bambora-gateway-go/internal/adapters/executor"
	"github.com/DanielPopoola/bambora-gateway-go/internal/config"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/service"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type app struct {
	configPath string
	logger     *slog.Logger
	gateway    *service.Gateway
	out        io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout}
	if err := newRootCommand(a).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "gatewayctl",
		Short:             "Command line client for the Bambora payment gateway",
		Long:              `Fetch transactions, run report queries and manage payments and profiles against the Bambora gateway.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Version:           version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.gateway != nil {
				return nil
			}
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(
		newTransactionCommand(a),
		newReportCommand(a),
		newPaymentCommand(a),
		newProfileCommand(a),
	)

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a.logger = cfg.Logger.NewLogger()
	slog.SetDefault(a.logger)

	gw := service.NewGateway(a.logger,
		executor.NewHTTPExecutor(cfg.HTTP, a.logger),
		codec.NewJSONCodec(),
	)
	gw.SetMerchantID(cfg.Merchant.ID)
	gw.SetAPIVersion(cfg.Merchant.APIVersion)
	gw.SetPlatform(cfg.Merchant.Platform)
	gw.SetPaymentsAPIKey(cfg.Merchant.PaymentsPasscode)
	gw.SetProfilesAPIKey(cfg.Merchant.ProfilesPasscode)
	gw.SetReportingAPIKey(cfg.Merchant.ReportingPasscode)

	a.logger.Debug("gateway configured",
		"merchant_id", cfg.Merchant.ID,
		"api_version", cfg.Merchant.APIVersion,
		"platform", cfg.Merchant.Platform,
	)

	a.gateway = gw
	return nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
