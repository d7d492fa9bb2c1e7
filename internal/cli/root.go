package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/your-org/roster/internal/application"
	"github.com/your-org/roster/internal/config"
	"github.com/your-org/roster/internal/logger"
)

var configFile string

// NewRootCommand creates the root command. Running it with no subcommand
// starts the interactive form-and-table interface.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage a student roster from the terminal",
		Long: `An in-memory student record manager with a form-and-table interface.

Students live only for the lifetime of the process; there is no database
and nothing is written to disk.

Examples:
  roster
  roster --config roster.yaml
  roster list`,
		SilenceUsage: true,
		RunE:         runRootCommand,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (optional)")
	cmd.AddCommand(NewListCommand())

	return cmd
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.LogLevel)

	container, err := application.Build(cfg)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	program := tea.NewProgram(container.UI, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}

	logger.Logger.Info().Int("students", container.Store.Count()).Msg("session ended, discarding roster")
	return nil
}
