package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-greet/internal/config"
	"github.com/l3aro/go-greet/internal/healthcheck"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and environment health",
	Long: `Verifies the effective configuration can drive the greeting sequence.

Reads the project config (./.greet/config.yaml) if present, otherwise
the global config (~/.greet/config.yaml), otherwise the built-in
defaults, and reports the banner line, the name input bound, and
whether stdin/stdout are attached to a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := loadConfigWithPath()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		result, err := healthcheck.Check(cfg, "", configPath)
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}

		displayDoctorResult(result)

		if result.Banner.Status == "error" || result.Input.Status == "error" {
			return fmt.Errorf("configuration is not usable")
		}

		return nil
	},
}

// loadConfigWithPath resolves the effective config file the way the
// greeting binaries do: project first, then global. When neither file
// exists the built-in defaults are returned with an empty path, since
// they already describe a complete greeting sequence.
func loadConfigWithPath() (*config.Config, string, error) {
	projectConfigPath := filepath.Join(".greet", "config.yaml")
	if fileExists(projectConfigPath) {
		cfg, err := config.LoadFromFile(projectConfigPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config from %s: %w", projectConfigPath, err)
		}
		return cfg, projectConfigPath, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalConfigPath := filepath.Join(home, ".greet", "config.yaml")
		if fileExists(globalConfigPath) {
			cfg, err := config.LoadFromFile(globalConfigPath)
			if err != nil {
				return nil, "", fmt.Errorf("failed to load config from %s: %w", globalConfigPath, err)
			}
			return cfg, globalConfigPath, nil
		}
	}

	return config.DefaultConfig(), "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func displayDoctorResult(result *healthcheck.Result) {
	if result.EffectivePath == "" {
		fmt.Println("Using config: built-in defaults (run 'greet init' to customize)")
	} else {
		fmt.Printf("Using config: %s (%s)\n", result.EffectivePath, result.EffectiveScope)
	}

	fmt.Println("\nBanner:")
	fmt.Printf("  Language: %s\n", result.Banner.Language)
	if result.Banner.Line != "" {
		fmt.Printf("  Line: %s\n", result.Banner.Line)
	}
	fmt.Printf("  Status: %s %s\n", formatStatusIcon(result.Banner.Status), result.Banner.Status)
	if result.Banner.Error != "" {
		fmt.Printf("  Error: %s\n", result.Banner.Error)
	}

	fmt.Println("\nName input:")
	fmt.Printf("  Capacity: %d\n", result.Input.Capacity)
	fmt.Printf("  Overflow: %s\n", result.Input.Overflow)
	fmt.Printf("  Status: %s %s\n", formatStatusIcon(result.Input.Status), result.Input.Status)
	if result.Input.Error != "" {
		fmt.Printf("  Error: %s\n", result.Input.Error)
	}

	fmt.Println("\nTerminal:")
	fmt.Printf("  Stdin: %s\n", formatTTYStatus(result.Terminal.StdinTTY))
	fmt.Printf("  Stdout: %s\n", formatTTYStatus(result.Terminal.StdoutTTY))
}

func formatTTYStatus(tty bool) string {
	if tty {
		return "✓ terminal"
	}
	return "◐ piped"
}

func formatStatusIcon(status string) string {
	switch status {
	case "ready":
		return "✓"
	case "error":
		return "✗"
	default:
		return "?"
	}
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
