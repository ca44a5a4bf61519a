package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/analyzeme/analyzeme/internal/daemon"
)

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progression state",
	Long:  `Replace the progression record with fresh defaults. This cannot be undone.`,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	// The engine's reset is unconditional; confirmation lives here.
	if !resetForce {
		fmt.Print("Reset all progression? This cannot be undone. [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	d.Progression.Reset()
	fmt.Println("Progression state reset.")
	return nil
}
