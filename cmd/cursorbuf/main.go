package main

import "github.com/performancecopilot/cursorbuf/internal/cli"

func main() {
	cli.Execute()
}
