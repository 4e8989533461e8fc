package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "infinity-manifest <player-url>",
	Short: "Find the stream manifest of a Mediaset Infinity video and print a yt-dlp command",
	Long: `Opens the Mediaset Infinity player page in a browser, blocks ad traffic,
accepts the cookie dialog and watches the network until a DASH or HLS
manifest is requested. The manifest is rewritten to its HLS playlist and a
ready-to-run yt-dlp command is printed.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), DefaultConfig(), args[0], cmd.OutOrStdout(), openBrowser)
	},
}

func main() {
	// Cancelling the context on Ctrl-C lets run's deferred teardown close the
	// browser and remove its profile directory.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
