package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-greet/internal/config"
	"github.com/l3aro/go-greet/internal/healthcheck"
	"github.com/l3aro/go-greet/pkg/greet"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize greet configuration interactively",
	Long: `Walks through the configuration options and writes a config file.

The wizard asks for the banner language, the name length bound used by
the bounded reader, and the overflow policy, then saves the result to
the global (~/.greet/config.yaml) or project (./.greet/config.yaml)
location and runs a health check against the saved file.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var languageChoice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Banner Language").
				Description("Named in the opening line of the greeting sequence").
				Options(
					huh.NewOption("Go", "Go"),
					huh.NewOption("C", "C"),
					huh.NewOption("C++", "C++"),
					huh.NewOption("Java", "Java"),
					huh.NewOption("Other...", "other"),
				).
				Value(&languageChoice),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	language := languageChoice
	if languageChoice == "other" {
		language = greet.DefaultLanguage
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Language Name").
					Description("Appears verbatim in the banner").
					Placeholder(greet.DefaultLanguage).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("language must not be empty")
						}
						return nil
					}).
					Value(&language),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
	}

	maxLenStr := strconv.Itoa(greet.DefaultMaxNameLen)
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum Name Length").
				Description("Longest name the bounded reader accepts, in characters").
				Placeholder(strconv.Itoa(greet.DefaultMaxNameLen)).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					if n <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}).
				Value(&maxLenStr),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}
	maxLen, err := strconv.Atoi(maxLenStr)
	if err != nil {
		return fmt.Errorf("invalid maximum name length: %w", err)
	}

	var overflowChoice string
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Overflow Policy").
				Description("What happens when a name exceeds the maximum length").
				Options(
					huh.NewOption("Truncate to the maximum length", string(greet.OverflowTruncate)),
					huh.NewOption("Reject with an error", string(greet.OverflowError)),
				).
				Value(&overflowChoice),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	var location string
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Config Location").
				Options(
					huh.NewOption("Global (~/.greet/config.yaml)", "global"),
					huh.NewOption("Project (./.greet/config.yaml)", "project"),
				).
				Value(&location),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	var configPath string
	if location == "global" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".greet", "config.yaml")
	} else {
		configPath = filepath.Join(".greet", "config.yaml")
	}

	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config already exists at %s. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.Language = language
	cfg.MaxNameLength = maxLen
	cfg.Overflow = greet.OverflowPolicy(overflowChoice)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Println("\n=== Configuration Preview ===")
	fmt.Printf("Config path: %s\n", configPath)
	fmt.Printf("Language: %s\n", cfg.Language)
	fmt.Printf("Banner: %s\n", greet.Banner(cfg.Language))
	fmt.Printf("Max name length: %d\n", cfg.MaxNameLength)
	fmt.Printf("Overflow policy: %s\n", cfg.Overflow)
	fmt.Println("=============================")

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", configPath)

	fmt.Println("\n=== Running Health Check ===")
	savedCfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to reload saved config: %w", err)
	}

	result, err := healthcheck.Check(savedCfg, configPath, configPath)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	fmt.Printf("\nConfig scope: %s\n", result.SavedScope)
	fmt.Printf("Config path: %s\n", result.SavedPath)

	fmt.Printf("\nBanner status: %s %s\n", formatStatusIcon(result.Banner.Status), result.Banner.Status)
	if result.Banner.Line != "" {
		fmt.Printf("  Line: %s\n", result.Banner.Line)
	}
	if result.Banner.Error != "" {
		fmt.Printf("  Error: %s\n", result.Banner.Error)
	}

	fmt.Printf("\nName input status: %s %s\n", formatStatusIcon(result.Input.Status), result.Input.Status)
	fmt.Printf("  Capacity: %d\n", result.Input.Capacity)
	fmt.Printf("  Overflow: %s\n", result.Input.Overflow)
	if result.Input.Error != "" {
		fmt.Printf("  Error: %s\n", result.Input.Error)
	}

	if result.Banner.Status == "error" || result.Input.Status == "error" {
		return fmt.Errorf("health check reported errors; fix the configuration and re-run 'greet doctor'")
	}

	fmt.Println("\n=== Initialization Complete ===")
	fmt.Println("Run 'greet' to see the greeting sequence.")

	return nil
}

func init() {
	RootCmd.AddCommand(initCmd)
}
