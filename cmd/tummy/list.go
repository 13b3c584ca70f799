package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tummy-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games registered in the arcade, in menu order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle")
	fmt.Fprintln(tw, "  --\t-----")
	for _, g := range games {
		fmt.Fprintf(tw, "  %s\t%s\n", g.ID, g.Title)
	}
	//nolint:errcheck // Writing to stdout
	tw.Flush()

	fmt.Println()
	fmt.Println("Run 'tummy play <id>' to play a game.")
}
