package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/chat"
)

func init() {
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a one-off question about your documents",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID := ident.GetOrCreate()
		question := strings.Join(args, " ")

		session := chat.NewSession(newAPI(), userID)
		reply, ok := session.Ask(cmd.Context(), question)
		if !ok {
			fmt.Println("Nothing to ask.")
			return
		}
		fmt.Println(reply.Content)
	},
}
