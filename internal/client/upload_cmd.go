package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/models"
	"github.com/Aaqilyousuf/documind-cli/internal/reconcile"
	"github.com/Aaqilyousuf/documind-cli/internal/upload"
)

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload documents (PDF, CSV, TXT, DOCX)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID := ident.GetOrCreate()

		var selections []models.Selection
		for _, path := range args {
			sel, err := upload.NewSelection(path)
			if err != nil {
				fmt.Println("Skipping:", err)
				continue
			}
			selections = append(selections, sel)
		}
		if len(selections) == 0 {
			fmt.Println("No new files to upload!")
			return
		}

		orchestrator := &upload.Orchestrator{
			API:    newAPI(),
			Events: events,
			OnProgress: func(done, total int) {
				fmt.Printf("Processing documents... %d/%d\n", done, total)
			},
		}

		res, err := orchestrator.Run(cmd.Context(), userID, selections)
		if err != nil {
			fmt.Println("Upload failed:", err)
			if res.Uploaded > 0 {
				fmt.Printf("%d of %d file%s uploaded before the failure; re-run with the remaining files to retry.\n",
					res.Uploaded, res.Total, plural(res.Total))
			}
			return
		}

		fmt.Printf("Uploaded %d file%s successfully!\n", res.Uploaded, plural(res.Uploaded))
		merged := reconcile.Merge(res.Selections, res.Documents)
		printDisplayList(merged)
	},
}

func printDisplayList(list []models.Selection) {
	pending := 0
	for _, sel := range list {
		if !sel.Uploaded {
			pending++
		}
	}
	fmt.Printf("Files (%d) - %d new, %d uploaded\n", len(list), pending, len(list)-pending)
	for _, sel := range list {
		state := "uploaded"
		if !sel.Uploaded {
			state = "pending"
		}
		fmt.Printf("- %s (%s, %s)\n", sel.Name, sel.MimeType, state)
	}
}
