// Package main implements the greet CLI.
// Run bare it performs the classic greeting sequence; subcommands manage
// configuration and check the environment.
package main

import (
	"os"

	"github.com/l3aro/go-greet/cmd/greet/commands"
)

var (
	version   = "dev"
	buildTime = ""
)

func main() {
	commands.RootCmd.Flags().BoolP("version", "v", false, "Print version information")
	commands.RootCmd.SetVersionTemplate(`greet version {{.Version}}
`)
	commands.RootCmd.Version = version

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
