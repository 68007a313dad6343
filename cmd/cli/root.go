package cli

import (
	"github.com/kcaldas/console/cmd/tui"
	"github.com/kcaldas/console/pkg/events"
	"github.com/kcaldas/console/pkg/fileops"
	"github.com/kcaldas/console/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	noInput    bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive command console",
	Long: `console is a terminal command console with line editing, history and
configurable commands. Piped input is run line by line without the TUI.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure logger based on flags
		var logger logging.Logger
		if quiet {
			logger = logging.NewQuietLogger()
		} else if verbose {
			logger = logging.NewVerboseLogger()
		} else {
			logger = logging.NewDefaultLogger()
		}
		logging.SetGlobalLogger(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		headless := hasStdinInput()
		if !headless {
			// the terminal belongs to gocui from here on
			logging.SetGlobalLogger(tui.ProvideLogger())
		}

		bus := events.NewBus()
		s, err := newSession(sessionSettings{
			ConfigPath: configPath,
			NoInput:    noInput,
			Notifier:   bus,
			Logger:     logging.GetGlobalLogger(),
		})
		if err != nil {
			return err
		}
		defer s.Close()

		if headless {
			return runHeadless(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
		}

		t, err := tui.InjectTUI(s, bus, tui.DefaultConfig())
		if err != nil {
			return err
		}
		defer t.Stop()
		return t.Start()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.console/config.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
	RootCmd.Flags().BoolVar(&noInput, "no-input", false, "start with key input disabled")

	addCommands()
}

// addCommands adds all CLI subcommands to the root command
func addCommands() {
	RootCmd.AddCommand(NewInitCommand(fileops.NewFileOpsManager()))
}
