package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().Bool("reset", false, "Discard the identity and mint a new one")
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the anonymous identity this machine uploads under",
	Run: func(cmd *cobra.Command, args []string) {
		reset, _ := cmd.Flags().GetBool("reset")
		if reset {
			if err := ident.Clear(); err != nil {
				fmt.Println("Error resetting identity:", err)
				return
			}
			fmt.Println("Identity reset. Previously uploaded documents are no longer visible from here.")
		}
		fmt.Println(ident.GetOrCreate())
	},
}
