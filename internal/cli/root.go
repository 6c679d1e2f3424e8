package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command. Run without a subcommand it
// starts a local game.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "donut-tell-me",
		Short: "Donut Tell Me! - a terminal donut shop",
		Long: `Bake donuts for a line of picky customers. Each one has a hidden taste for
bases, glazings and sprinkles; a perfect donut turns them into a regular.
Make enough regulars to win.

Examples:
  donut-tell-me play
  donut-tell-me serve --port 2222
  donut-tell-me history --limit 20
  donut-tell-me --config shop.toml play`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, "")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(),
		"Path to a TOML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at debug level")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewHistoryCommand())

	return rootCmd
}

// defaultConfigPath returns the config path from the environment, if any.
func defaultConfigPath() string {
	return os.Getenv("DONUT_TELL_ME_CONFIG")
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
