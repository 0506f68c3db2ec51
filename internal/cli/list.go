package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/qsolog/internal/models"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the logbook",
	Long:    `Display logged contacts, newest first.`,
	Args:    cobra.NoArgs,
	Run:     runList,
}

var listLimit int

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Limit the number of contacts to show")
}

func runList(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	entries, err := c.Store.ListLogs(listLimit)
	if err != nil {
		exitError("failed to read log: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No contacts logged yet")
		return
	}

	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Printf("%-19s  %-10s  %-6s  %-6s  %-5s  %-9s  %-5s  %s\n",
		"Timestamp", "Call", "RST TX", "RST RX", "Band", "Frequency", "Mode", "Comments")

	for _, e := range entries {
		yellow.Printf("%-19s", models.FormatTimestamp(e.Timestamp))
		cyan.Printf("  %-10s", e.Call)
		fmt.Printf("  %-6s  %-6s  %-5s  %-9s  %-5s  %s\n", e.RSTTX, e.RSTRX, e.Band, e.Frequency, e.Mode, e.Comments)
	}
}
