// internal/game/round.go
//
// Round state machine. A Round owns the secret word, the ordered attempt
// history, and the letter status table for one play-through, and decides
// when the game is won or lost.

package game

import "fmt"

// Round is the state of a single play-through.
// It is not safe for concurrent use; a game is strictly sequential.
type Round struct {
	secret   string
	limit    int
	attempts []Attempt
	statuses Statuses
	outcome  Outcome
}

// NewRound starts a round against secret with the standard tries limit.
// The secret is taken as-is: an override that fails length or vocabulary
// checks is deliberately allowed (it just makes the round unwinnable),
// so this constructor does not re-validate it.
func NewRound(secret string) *Round {
	return &Round{
		secret:  secret,
		limit:   TriesLimit,
		outcome: InProgress,
	}
}

// Play scores one validated guess and advances the state machine.
// Returns the recorded attempt so the caller can render it.
//
// Transitions:
//   - guess equals the secret → Won (terminal).
//   - tries limit reached without a match → Lost (terminal).
//   - otherwise the round stays in progress.
//
// The guess must be exactly WordLength uppercase letters and already
// vocabulary-checked; the input layer guarantees that before calling in.
// A violation here is a programming error, not a user error, so Play
// panics rather than returning an error.
func (r *Round) Play(guess string) Attempt {
	if r.outcome != InProgress {
		panic("game: Play called on a finished round")
	}
	if len(guess) != WordLength {
		panic(fmt.Sprintf("game: guess %q is not %d letters", guess, WordLength))
	}

	marks := Score(guess, r.secret)
	att := Attempt{Guess: guess, Marks: marks}
	r.attempts = append(r.attempts, att)
	r.statuses = r.statuses.Upgrade(guess, marks)

	if guess == r.secret {
		r.outcome = Won
	} else if len(r.attempts) >= r.limit {
		r.outcome = Lost
	}
	return att
}

// Outcome reports the current round state.
func (r *Round) Outcome() Outcome { return r.outcome }

// Secret returns the word being guessed.
func (r *Round) Secret() string { return r.secret }

// Limit returns the maximum number of attempts for this round.
func (r *Round) Limit() int { return r.limit }

// Attempts returns the ordered history of scored guesses so far.
// The slice is shared; callers must not modify it.
func (r *Round) Attempts() []Attempt { return r.attempts }

// Statuses returns the current A–Z letter status table.
func (r *Round) Statuses() Statuses { return r.statuses }
