package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/analyzeme/analyzeme/internal/daemon"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export progression state as a JSON snapshot",
	Long:  `Write a backup snapshot of the full progression record to FILE, or to stdout.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	snapshot, err := d.Progression.Export()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(snapshot)
		return nil
	}

	if err := os.WriteFile(args[0], []byte(snapshot), 0600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Printf("Exported progression state to %s\n", args[0])
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Restore progression state from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Progression.Import(string(data)); err != nil {
		return err
	}
	fmt.Println("Progression state imported.")
	return nil
}
