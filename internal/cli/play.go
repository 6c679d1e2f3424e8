package cli

import (
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"donut-tell-me/internal/game"

	"github.com/spf13/cobra"
)

// NewPlayCommand creates the play command.
func NewPlayCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the shop in this terminal",
		Long: `Open the shop in this terminal.

Keys:
  Q/W or ←/→   cycle the base
  A/S          cycle the glazing
  Z/X          cycle the sprinkles
  N            cook a new donut
  Enter        offer the donut
  Esc          quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Baker name recorded in the history (defaults to the OS user)")

	return cmd
}

func runPlay(cmd *cobra.Command, name string) error {
	a, err := setup(setupOptions{logToFile: true, withRules: true})
	if err != nil {
		return err
	}
	defer a.Close()

	if name == "" {
		name = localUser()
	}
	g, err := game.NewLocal(game.Options{
		Player:  name,
		Shop:    a.cfg.Shop,
		Rules:   a.rules,
		Catalog: a.cat,
		Store:   a.store,
		Logger:  a.log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g.Run(ctx)
	return nil
}

func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "baker"
}
