// Package commands implements the greet CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-greet/internal/config"
	"github.com/l3aro/go-greet/internal/log"
	"github.com/l3aro/go-greet/pkg/greet"
)

// RootCmd represents the base command. Run without a subcommand it
// performs the greeting sequence itself: banner, name prompt, greeting,
// and the sum report.
var RootCmd = &cobra.Command{
	Use:   "greet",
	Short: "greet - the classic console greeter",
	Long: `greet prints a hello banner, asks for your name, greets you back,
and reports the sum of 5 and 10.

Commands:
  init        Initialize configuration interactively
  doctor      Check configuration and environment health

Run greet with no arguments to perform the greeting sequence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGreet(cmd)
	},
}

func runGreet(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || cfg.Verbose {
		log.Default().SetLevel(log.DebugLevel)
		log.Default().Debug("configuration resolved", "language", cfg.Language)
	}

	sess := &greet.Session{Language: cfg.Language}
	return sess.Run()
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().Bool("verbose", false, "Enable verbose logging on stderr")
}
