package greet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Run(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		In:  strings.NewReader("Ada\n"),
		Out: &out,
	}

	err := s.Run()
	require.NoError(t, err)

	want := "Hello, World from Go!\n" +
		"What is your name? " +
		"Hello, Ada!\n" +
		"The sum of 5 and 10 is 15\n"
	assert.Equal(t, want, out.String())
}

func TestSession_Run_Language(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		In:       strings.NewReader("Ada\n"),
		Out:      &out,
		Language: "C++",
	}

	err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, World from C++!\n")
}

func TestSession_Run_EmptyInput(t *testing.T) {
	// End of stream before any token must not fail the run.
	var out bytes.Buffer
	s := &Session{
		In:  strings.NewReader(""),
		Out: &out,
	}

	err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, !\n")
	assert.Contains(t, out.String(), "The sum of 5 and 10 is 15\n")
}

func TestSession_Run_LongTokenUnbounded(t *testing.T) {
	// The default reader must echo a name of any length verbatim and
	// still finish the sequence.
	long := strings.Repeat("n", 70000)

	var out bytes.Buffer
	s := &Session{
		In:  strings.NewReader(long + "\n"),
		Out: &out,
	}

	err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, "+long+"!\n")
	assert.Contains(t, out.String(), "The sum of 5 and 10 is 15\n")
}

func TestSession_Run_BoundedTruncate(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		In:     strings.NewReader(strings.Repeat("a", 60) + "\n"),
		Out:    &out,
		Reader: BoundedReader{Max: 49},
	}

	err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, "+strings.Repeat("a", 49)+"!\n")
}

func TestSession_Run_BoundedOverflowError(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		In:     strings.NewReader("toolong\n"),
		Out:    &out,
		Reader: BoundedReader{Max: 5, Overflow: OverflowError},
	}

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameTooLong)

	// The run stops after the prompt; no greeting or sum is written.
	assert.Contains(t, out.String(), Prompt)
	assert.NotContains(t, out.String(), "Hello, toolo")
	assert.NotContains(t, out.String(), "The sum of")
}

func TestSession_Run_LineReader(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		In:     strings.NewReader("Ada Lovelace\n"),
		Out:    &out,
		Reader: LineReader{},
	}

	err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, Ada Lovelace!\n")
}

func TestSession_Run_PromptPrecedesRead(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		In:  strings.NewReader("Ada\n"),
		Out: &out,
	}

	require.NoError(t, s.Run())

	promptAt := strings.Index(out.String(), Prompt)
	greetAt := strings.Index(out.String(), "Hello, Ada!")
	require.GreaterOrEqual(t, promptAt, 0)
	require.GreaterOrEqual(t, greetAt, 0)
	assert.Less(t, promptAt, greetAt)
}
