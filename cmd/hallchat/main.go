package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "hallchat",
		Short:         "hallchat is a multi-room text chat service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newChatCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("hallchat: " + err.Error() + "\n")
		os.Exit(1)
	}
}
