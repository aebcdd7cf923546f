package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	err    error
	input  string
	prompt string
}

func (f *fakePrompter) Prompt(prompt string) (string, error) {
	f.prompt = prompt
	return f.input, f.err
}

func (f *fakePrompter) Close() error { return nil }

func TestReadCommandTrims(t *testing.T) {
	t.Parallel()

	prompter := &fakePrompter{input: "  next 3 \n"}

	result, err := ReadCommand(prompter, "day 0>")

	require.NoError(t, err)
	assert.Equal(t, "next 3", result)
	assert.Contains(t, prompter.prompt, "day 0>")
}

func TestReadCommandCancellation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		name string
	}{
		{name: "ctrl-c", err: liner.ErrPromptAborted},
		{name: "eof", err: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadCommand(&fakePrompter{err: tt.err}, ">")
			assert.ErrorIs(t, err, ErrCancelled)
		})
	}
}

func TestReadCommandOtherError(t *testing.T) {
	t.Parallel()

	_, err := ReadCommand(&fakePrompter{err: errors.New("tty gone")}, ">")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestCompleter(t *testing.T) {
	t.Parallel()

	complete := Completer([]string{"next", "show", "quit", "help"})

	assert.Equal(t, []string{"next"}, complete("n"))
	assert.Equal(t, []string{"show"}, complete("SH"))
	assert.Len(t, complete(""), 4)
	assert.Empty(t, complete("x"))
}
