package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/analyzeme/analyzeme/internal/app/progression"
	"github.com/analyzeme/analyzeme/internal/daemon"
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent experience history",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	entries := d.Progression.RecentHistory(historyLimit)
	if len(entries) == 0 {
		fmt.Println("No experience recorded yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %+5d XP  %-24s (total %d)\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.Amount,
			progression.ReasonLabel(e.Reason), e.TotalAfter)
	}
	return nil
}
