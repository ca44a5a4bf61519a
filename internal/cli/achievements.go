package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/analyzeme/analyzeme/internal/daemon"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked achievements")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List unlocked achievements",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	fmt.Printf("Unlocked %d of %d (%d%%)\n\n",
		d.Progression.UnlockedCount(), d.Progression.TotalAchievements(), d.Progression.CompletionPercent())

	for _, def := range d.Progression.AchievementDefs() {
		unlocked := d.Progression.HasAchievement(def.ID)
		if !unlocked && !achievementsAll {
			continue
		}
		mark := " "
		if unlocked {
			mark = "x"
		}
		fmt.Printf("[%s] %s %-24s %-10s %4d XP  %s\n",
			mark, def.Icon, def.Name, def.Rarity, def.RewardXP, def.Description)
	}

	if !achievementsAll {
		fmt.Println("\nUse --all to include locked achievements.")
	}
	return nil
}
