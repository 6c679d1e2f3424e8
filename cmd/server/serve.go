package main

import (
	"donut-tell-me/internal/cli"

	"github.com/spf13/cobra"
)

// serveCommand is the root command's serve subcommand, so the server binary
// accepts the same flags as "donut-tell-me serve".
func serveCommand(args []string) *cobra.Command {
	root := cli.NewRootCommand()
	root.Use = "donut-tell-me-server"
	root.SetArgs(append([]string{"serve"}, args...))
	return root
}
