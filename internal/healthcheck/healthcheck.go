package healthcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/l3aro/go-greet/internal/config"
	"github.com/l3aro/go-greet/pkg/greet"
)

// BannerStatus reports whether the banner line renders for the
// configured language.
type BannerStatus struct {
	Language string
	Line     string
	Status   string // "ready" or "error"
	Error    string
}

// InputStatus reports the bounded name reader settings.
type InputStatus struct {
	Capacity int
	Overflow string
	Status   string // "ready" or "error"
	Error    string
}

// TerminalStatus reports whether the process is attached to a terminal.
// A piped stdin is fine for scripted runs; the prompt still prints.
type TerminalStatus struct {
	StdinTTY  bool
	StdoutTTY bool
}

// Result contains the full health check output for display.
type Result struct {
	SavedPath      string
	SavedScope     string // "global" or "project"
	EffectivePath  string
	EffectiveScope string // "global" or "project"
	Banner         BannerStatus
	Input          InputStatus
	Terminal       TerminalStatus
}

// Check performs a health check against the given config.
// savedPath is where the user saved config (may be empty outside init).
// effectivePath is the config file actually in use (considering priority).
func Check(cfg *config.Config, savedPath string, effectivePath string) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	result := &Result{
		SavedPath:      savedPath,
		SavedScope:     scopeFromPath(savedPath),
		EffectivePath:  effectivePath,
		EffectiveScope: scopeFromPath(effectivePath),
	}

	result.Banner = checkBanner(cfg)
	result.Input = checkInput(cfg)
	result.Terminal = checkTerminal()

	return result, nil
}

// scopeFromPath determines "global" or "project" scope from a config file path.
// Returns empty string if path is empty.
func scopeFromPath(path string) string {
	if path == "" {
		return ""
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalDir := filepath.Join(home, ".greet")
		if strings.HasPrefix(path, globalDir) {
			return "global"
		}
	}

	return "project"
}

// checkBanner verifies the banner line renders for the configured language.
func checkBanner(cfg *config.Config) BannerStatus {
	status := BannerStatus{Language: cfg.Language}

	if cfg.Language == "" {
		status.Status = "error"
		status.Error = "language is not configured"
		return status
	}

	status.Line = greet.Banner(cfg.Language)
	status.Status = "ready"
	return status
}

// checkInput verifies the bounded reader settings are usable.
func checkInput(cfg *config.Config) InputStatus {
	status := InputStatus{
		Capacity: cfg.MaxNameLength,
		Overflow: string(cfg.Overflow),
	}

	if cfg.MaxNameLength <= 0 {
		status.Status = "error"
		status.Error = "max_name_length must be positive"
		return status
	}

	switch cfg.Overflow {
	case greet.OverflowTruncate, greet.OverflowError:
		status.Status = "ready"
	default:
		status.Status = "error"
		status.Error = fmt.Sprintf("unknown overflow policy: %s", cfg.Overflow)
	}

	return status
}

// checkTerminal reports whether stdin and stdout are terminals.
func checkTerminal() TerminalStatus {
	return TerminalStatus{
		StdinTTY:  isTTY(os.Stdin),
		StdoutTTY: isTTY(os.Stdout),
	}
}

// isTTY checks a file descriptor for an interactive terminal.
func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
