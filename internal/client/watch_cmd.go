package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watch is the "other mounted view": it re-fetches the listing every
// time another documind process emits a change pulse.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow document changes made by other documind processes",
	Run: func(cmd *cobra.Command, args []string) {
		userID := ident.GetOrCreate()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		printDocuments(newAPI().ListFiles(ctx, userID))
		fmt.Println("Watching for changes (Ctrl+C to stop)...")

		err := events.Pulse.Watch(ctx, func() {
			fmt.Println("Change detected, refreshing...")
			printDocuments(newAPI().ListFiles(ctx, userID))
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Println("Watch stopped:", err)
		}
	},
}
