package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a liner-based prompter that tab-completes words
func NewLinerPrompter(words []string) *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(Completer(words))
	return &LinerPrompter{State: line}
}

// Prompt reads a line and adds non-empty input to the session history
func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	input, err := p.State.Prompt(prompt)
	if err != nil {
		return "", err //nolint:wrapcheck // mapped by ReadCommand
	}
	if strings.TrimSpace(input) != "" {
		p.AppendHistory(input)
	}
	return input, nil
}

// Completer returns a liner completer that offers words with the typed prefix
func Completer(words []string) liner.Completer {
	return func(line string) []string {
		var matches []string
		for _, word := range words {
			if strings.HasPrefix(word, strings.ToLower(line)) {
				matches = append(matches, word)
			}
		}
		return matches
	}
}

// ReadCommand reads one line with a coloured prompt and returns it trimmed
func ReadCommand(prompter Prompter, prompt string) (string, error) {
	input, err := prompter.Prompt(color.CyanString(prompt + " "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("command input failed: %w", err)
	}
	return strings.TrimSpace(input), nil
}
