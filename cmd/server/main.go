// donut-tell-me-server hosts the shop over SSH, one independent game per
// connection. Build:
//
//	go build -o donut-tell-me-server ./cmd/server
//
// Usage:
//
//	./donut-tell-me-server [--config shop.toml] [--port 2222] [--key server_host_key]
//
// Connect from any terminal:
//
//	ssh -t -p 2222 localhost
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := serveCommand(os.Args[1:]).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
