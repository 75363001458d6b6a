package client

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/chat"
)

func init() {
	rootCmd.AddCommand(chatCmd)
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat about your documents",
	Run: func(cmd *cobra.Command, args []string) {
		userID := ident.GetOrCreate()
		session := chat.NewSession(newAPI(), userID)

		fmt.Println(chat.Greeting)
		fmt.Println(`(type "exit" to leave)`)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			line := scanner.Text()
			if line == "exit" || line == "quit" {
				break
			}

			reply, ok := session.Ask(cmd.Context(), line)
			if !ok {
				continue
			}
			fmt.Println("documind>", reply.Content)
		}
		fmt.Printf("Goodbye! (%d messages this session)\n", len(session.Messages()))
	},
}
