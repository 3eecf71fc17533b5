package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hallchat/hallchat-server/internal/client"
)

func newChatCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Connect to a chat server from the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return client.Run(ctx, addr, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "ws://localhost:4444/ws", "server websocket address")

	return cmd
}
