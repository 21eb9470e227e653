package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig   string
	flagDB       string
	flagLogLevel string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:           "neon",
	Short:         "Neon: a cyberpunk schedule with quests and unlockable themes",
	Long:          "Neon is a local-first scheduling assistant. Close tasks, run timers and schedule events to trigger quests that unlock new themes.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/neon/config.yaml)")
	pf.StringVar(&flagDB, "db", "", "SQLite database path (default ~/.neon.db)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colors")

	rootCmd.AddCommand(
		newStatusCmd(),
		newThemesCmd(),
		newThemeCmd(),
		newQuestsCmd(),
		newQuestCmd(),
		newFireCmd(),
		newDoneCmd(),
		newEventCmd(),
		newEventsCmd(),
		newTimerCmd(),
		newTimersCmd(),
		newProfileCmd(),
		newFactsCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
