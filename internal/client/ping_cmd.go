package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/transport"
)

func init() {
	rootCmd.AddCommand(pingCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connection to the server",
	Run: func(cmd *cobra.Command, args []string) {
		base := cfg.ServerURL
		if base == "" {
			fmt.Println("Server URL not set in config")
			return
		}
		userID := ident.GetOrCreate()

		fmt.Printf("Pinging %s...\n", base)
		start := time.Now()
		resp, err := http.Get(fmt.Sprintf("%s%s/files?user_id=%s", base, transport.APIPrefix, url.QueryEscape(userID)))
		if err != nil {
			fmt.Printf("Failed to reach server: %v\n", err)
			return
		}
		defer func() { _ = resp.Body.Close() }()
		duration := time.Since(start)

		if resp.StatusCode == http.StatusOK {
			fmt.Printf("Server is reachable (Latency: %v)\n", duration)
		} else {
			fmt.Printf("Server returned status: %s\n", resp.Status)
		}
	},
}
