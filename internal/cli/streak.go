package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/analyzeme/analyzeme/internal/app/progression"
	"github.com/analyzeme/analyzeme/internal/daemon"
)

func init() {
	rootCmd.AddCommand(streakCmd)
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current activity streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	current := d.Progression.CurrentStreak()

	fmt.Printf("%s %d day(s) — %s\n",
		progression.StreakEmoji(current), current, progression.StreakMessage(current))
	fmt.Printf("Longest: %d day(s)\n", d.Progression.LongestStreak())

	if d.Progression.StreakAtRisk(now) {
		if hours, ok := d.Progression.HoursUntilStreakLost(now); ok {
			fmt.Printf("At risk! Analyze something within %dh to keep it.\n", hours)
		}
	}
	return nil
}
