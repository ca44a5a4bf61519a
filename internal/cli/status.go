package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/analyzeme/analyzeme/internal/app/progression"
	"github.com/analyzeme/analyzeme/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progression summary (level, XP, streak, achievements)",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	sum := d.Progression.Summary()

	fmt.Printf("Level:         %d (%s)\n", sum.CurrentLevel, sum.LevelTitle)
	fmt.Printf("XP:            %d total", sum.TotalXP)
	if prog := d.Progression.LevelProgress(); prog.Needed > 0 {
		fmt.Printf(" — %d/%d into level (%.0f%%)", prog.Current, prog.Needed, prog.Percentage)
	} else {
		fmt.Printf(" — max level")
	}
	fmt.Println()

	fmt.Printf("Streak:        %d day(s) %s %s\n",
		sum.CurrentStreak, progression.StreakEmoji(sum.CurrentStreak), progression.StreakMessage(sum.CurrentStreak))
	fmt.Printf("Longest:       %d day(s)\n", sum.LongestStreak)
	if d.Progression.StreakAtRisk(now) {
		if hours, ok := d.Progression.HoursUntilStreakLost(now); ok {
			fmt.Printf("               streak at risk — %dh left\n", hours)
		}
	}

	fmt.Printf("Achievements:  %d / %d\n", sum.Achievements, sum.TotalAchievement)
	fmt.Printf("Analyses:      %d\n", sum.TotalAnalyses)
	fmt.Printf("Sources:       %d connected\n", sum.SourcesConnected)
	fmt.Printf("Exports:       %d\n", sum.ExportCount)
	fmt.Printf("State:         %s\n", stateDir(d))

	return nil
}

// stateDir resolves where the progression database lives.
func stateDir(d *daemon.Daemon) string {
	if d.Config.Storage.Dir != "" {
		return d.Config.Storage.Dir
	}
	return daemon.Home()
}
