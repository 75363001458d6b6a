package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/models"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the documents uploaded from this machine",
	Run: func(cmd *cobra.Command, args []string) {
		userID := ident.GetOrCreate()

		docs := newAPI().ListFiles(cmd.Context(), userID)
		printDocuments(docs)
	},
}

func printDocuments(docs []models.Document) {
	if len(docs) == 0 {
		fmt.Println("No documents uploaded")
		return
	}

	fmt.Printf("%d document%s uploaded:\n", len(docs), plural(len(docs)))
	for _, d := range docs {
		fmt.Printf("- [%s] %s (%s) - %s\n", d.ID, d.Name, d.MimeType, formatTimeAgo(d.CreatedAt))
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func formatTimeAgo(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
