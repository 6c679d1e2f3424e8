package main

import "donut-tell-me/internal/cli"

func main() {
	cli.Execute()
}
