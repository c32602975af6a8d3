package greet

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Session runs the greeter-and-adder sequence against an input/output
// pair: banner, prompt, name read, personalized greeting, sum report.
// The zero value reads a token of any length from standard input and
// writes to standard output.
type Session struct {
	// In is the input stream. Defaults to os.Stdin.
	In io.Reader

	// Out is the output stream. Defaults to os.Stdout.
	Out io.Writer

	// Language names the implementation language in the banner line.
	// Defaults to DefaultLanguage.
	Language string

	// Reader extracts the name in step two. Defaults to TokenReader.
	Reader NameReader
}

// Run executes the sequence. End of stream and read failures degrade to
// an empty name so the sequence always completes; the one exception is
// ErrNameTooLong from a BoundedReader in OverflowError mode, which is
// returned to the caller after the prompt with no greeting written.
func (s *Session) Run() error {
	in := s.In
	if in == nil {
		in = os.Stdin
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	language := s.Language
	if language == "" {
		language = DefaultLanguage
	}
	reader := s.Reader
	if reader == nil {
		reader = TokenReader{}
	}

	fmt.Fprintln(out, Banner(language))
	fmt.Fprint(out, Prompt)

	name, err := reader.ReadName(in)
	if err != nil {
		if errors.Is(err, ErrNameTooLong) {
			return err
		}
		// No token arrived; greet nobody in particular.
		name = ""
	}

	fmt.Fprintln(out, Greeting(name))
	fmt.Fprintln(out, SumReport(5, 10))
	return nil
}
