package cli

import (
	"os"
	"os/signal"
	"syscall"

	"donut-tell-me/internal/server"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var (
		port    int
		hostKey string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the shop over SSH",
		Long: `Host the shop over SSH. Every connection gets its own shop.

Examples:
  donut-tell-me serve
  donut-tell-me serve --port 2323 --key /var/lib/donut/host_key

Connect with:
  ssh -t -p 2222 <host>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(setupOptions{withRules: true})
			if err != nil {
				return err
			}
			defer a.Close()

			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if cmd.Flags().Changed("key") {
				a.cfg.Server.HostKey = hostKey
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			srv, err := server.New(server.Options{
				Config:  a.cfg.Server,
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
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 2222, "SSH server port (overrides the config file)")
	cmd.Flags().StringVar(&hostKey, "key", "server_host_key", "Path to the PEM host key, generated if absent (overrides the config file)")

	return cmd
}
