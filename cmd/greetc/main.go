// Package main implements greetc, the bounded rendition of the greeter.
// The name read from stdin is capped at a configured number of
// characters; longer input is truncated or rejected, never allowed to
// overrun the bound.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/l3aro/go-greet/internal/config"
	"github.com/l3aro/go-greet/internal/log"
	"github.com/l3aro/go-greet/pkg/greet"
)

var (
	version   = "dev"
	buildTime = ""
)

func main() {
	configPath := ""
	maxLen := 0
	overflow := ""
	verbose := false

	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "-config", "--config":
			if i+1 < len(os.Args) {
				configPath = os.Args[i+1]
				i++
			}
		case "-max", "--max":
			if i+1 < len(os.Args) {
				if n, err := strconv.Atoi(os.Args[i+1]); err == nil {
					maxLen = n
				}
				i++
			}
		case "-overflow", "--overflow":
			if i+1 < len(os.Args) {
				overflow = os.Args[i+1]
				i++
			}
		case "-v", "--verbose", "-verbose":
			verbose = true
		case "-version", "--version":
			fmt.Printf("greetc version %s\n", version)
			os.Exit(0)
		case "-h", "--help", "-help":
			fmt.Println("Usage: greetc [options]")
			fmt.Println("Options:")
			fmt.Println("  -config PATH     Config file path (default: .greet/config.yaml)")
			fmt.Printf("  -max N           Maximum name length in characters (default: %d)\n", greet.DefaultMaxNameLen)
			fmt.Println("  -overflow MODE   Oversized name handling: truncate or error")
			fmt.Println("  -v, -verbose     Enable verbose logging on stderr")
			fmt.Println("  -h, -help        Show this help message")
			os.Exit(0)
		}
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if maxLen > 0 {
		cfg.MaxNameLength = maxLen
	}
	if overflow != "" {
		cfg.Overflow = greet.OverflowPolicy(overflow)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "greetc: %v\n", err)
		os.Exit(1)
	}

	logger := log.Default()
	if verbose || cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("starting greetc", "version", version)
	logger.Debug("name input bound", "max", cfg.MaxNameLength, "overflow", string(cfg.Overflow))

	sess := &greet.Session{
		Language: cfg.Language,
		Reader:   cfg.BoundedReader(),
	}

	if err := sess.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "greetc: %v\n", err)
		os.Exit(1)
	}
}
