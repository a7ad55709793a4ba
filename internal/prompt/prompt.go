// internal/prompt/prompt.go
//
// Interactive guess input. Owns the readline session and the re-prompt
// loop: a guess only leaves this package once it is uppercase, exactly
// WordLength letters, and present in the vocabulary, so the round state
// machine downstream never sees malformed input.

package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/isaDue99/Wordle/internal/game"
)

// ErrAborted is returned when the player interrupts the prompt
// (Ctrl+C or EOF) instead of entering a guess.
var ErrAborted = errors.New("prompt: aborted by player")

// Reader prompts the player for guesses until a valid one is entered.
type Reader struct {
	rl      *readline.Instance
	limit   int
	allowed func(string) bool // vocabulary membership check
}

// New opens a readline session. allowed reports whether an
// uppercase-normalized word is in the vocabulary.
func New(limit int, allowed func(string) bool) (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          " > ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("prompt: init readline: %w", err)
	}
	return &Reader{rl: rl, limit: limit, allowed: allowed}, nil
}

// Close releases the readline session.
func (r *Reader) Close() error { return r.rl.Close() }

// Guess reads one validated guess for the given zero-based round number,
// re-prompting with a reason on every invalid entry. Returns ErrAborted
// if the player bails out mid-prompt.
func (r *Reader) Guess(round int) (string, error) {
	r.rl.SetPrompt(fmt.Sprintf(" (round %d of %d): ", round+1, r.limit))
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", ErrAborted
		}
		if err != nil {
			return "", fmt.Errorf("prompt: read guess: %w", err)
		}

		guess := strings.ToUpper(strings.TrimSpace(line))
		if reason := r.check(guess); reason != "" {
			fmt.Fprintln(r.rl.Stdout(), " "+reason)
			continue
		}
		return guess, nil
	}
}

// check validates one uppercase-normalized guess and returns a reason
// to show the player, or "" when the guess is acceptable.
func (r *Reader) check(guess string) string {
	if len(guess) != game.WordLength {
		return fmt.Sprintf("Guess must be %d letters!", game.WordLength)
	}
	if !r.allowed(guess) {
		return fmt.Sprintf("%s is not in wordlist!", guess)
	}
	return ""
}
