package client

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/api"
	"github.com/Aaqilyousuf/documind-cli/internal/broadcast"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <file-id>",
	Short: "Delete a document from the server",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fileID := args[0]
		userID := ident.GetOrCreate()

		err := newAPI().DeleteFile(cmd.Context(), userID, fileID)
		switch {
		case errors.Is(err, api.ErrMissingParameter):
			fmt.Println("Error: No file ID available for deletion.")
			return
		case errors.Is(err, api.ErrTimeout):
			fmt.Println("Delete request timed out. Please try again.")
			return
		case err != nil:
			fmt.Println("Failed to delete document:", err)
			return
		}

		// Refresh first, then notify, so anything reacting to the
		// signal sees the registry already current.
		docs := newAPI().ListFiles(cmd.Context(), userID)
		events.Notify(broadcast.TopicFilesChanged)

		fmt.Println("Document deleted successfully!")
		printDocuments(docs)
	},
}
