// Package main implements greetln, the line-reading rendition of the
// greeter. The whole input line, spaces included, becomes the name.
package main

import (
	"fmt"
	"os"

	"github.com/l3aro/go-greet/internal/config"
	"github.com/l3aro/go-greet/pkg/greet"
)

var version = "dev"

func main() {
	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "-version", "--version":
			fmt.Printf("greetln version %s\n", version)
			os.Exit(0)
		case "-h", "--help", "-help":
			fmt.Println("Usage: greetln")
			fmt.Println("Reads one full line from stdin as the name.")
			fmt.Println("Configuration comes from .greet/config.yaml, ~/.greet/config.yaml,")
			fmt.Println("or GREET_* environment variables.")
			os.Exit(0)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	sess := &greet.Session{
		Language: cfg.Language,
		Reader:   greet.LineReader{},
	}

	if err := sess.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "greetln: %v\n", err)
		os.Exit(1)
	}
}
