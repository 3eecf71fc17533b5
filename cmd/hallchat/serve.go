package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hallchat/hallchat-server/internal/app"
	"github.com/hallchat/hallchat-server/internal/config"
	"github.com/hallchat/hallchat-server/internal/log"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
		shutdown   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chat server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLog := log.New(logLevel, "console")

			cfg, path, err := config.Load(bootLog, configPath)
			if err != nil {
				return err
			}

			// Flags win over config file and env.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("shutdown-timeout") {
				cfg.ShutdownTimeout = shutdown
			}

			logger := log.New(cfg.LogLevel, cfg.LogFormat)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting hallchat server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.New(cfg, logger).Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", config.Default().Addr, "HTTP listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", config.Default().LogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&shutdown, "shutdown-timeout", config.Default().ShutdownTimeout, "graceful shutdown timeout")

	return cmd
}
