package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/your-org/roster/internal/config"
	"github.com/your-org/roster/internal/store"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the startup roster without opening the interface",
		Long: `Display the students the interactive session would start with.

Uses the built-in roster, or the configured seed file if one is set.

Examples:
  roster list
  roster list --config roster.yaml`,
		RunE: runListCommand,
	}

	return cmd
}

func runListCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	seed := store.DefaultSeed()
	source := "built-in"
	if cfg.SeedFile != "" {
		if seed, err = store.LoadSeedFile(cfg.SeedFile); err != nil {
			return err
		}
		source = cfg.SeedFile
	}

	recordStore := store.NewSeeded(seed)
	students := recordStore.List()

	if len(students) == 0 {
		fmt.Println("📋 Startup roster is empty")
		return nil
	}

	color.NoColor = !cfg.UI.Color

	fmt.Printf("📋 Startup roster (%d students, source: %s):\n\n", len(students), source)

	nameColor := color.New(color.FgGreen, color.Bold)
	for _, s := range students {
		fmt.Printf("  %s %s\n", color.CyanString("#%d", s.ID), nameColor.Sprint(s.Name))
		fmt.Printf("     ✉️  %s\n", s.Email)
		fmt.Printf("     🎓 GPA %.2f\n", s.GPA)
	}

	fmt.Println()
	fmt.Println("💡 Run 'roster' to add, update, delete, and search interactively")
	return nil
}
