// internal/game/types.go
//
// Core type definitions for the Wordle round engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - LetterStatus: best result ever seen for an alphabet letter.
//   - Attempt: one guess paired with its marks.
//   - Outcome: coarse round state (playing/won/lost).

package game

const (
	// TriesLimit is the number of guesses a player gets per round.
	TriesLimit = 6
	// WordLength is the number of letters per word. Changing it without a
	// matching wordlist breaks the game.
	WordLength = 5
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret word at this exact position.
//   - "present": letter is in the secret word at a different position,
//     within the remaining frequency budget for that letter.
//   - "absent":  letter is not in the secret word, or its occurrences
//     were already claimed by other positions.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// LetterStatus ranks what a round has revealed about one alphabet letter.
// The order matters: a status only ever upgrades, never downgrades.
type LetterStatus int

const (
	StatusUnseen LetterStatus = iota
	StatusAbsent
	StatusPresent
	StatusCorrect
)

// status maps a per-position mark to the letter status it implies.
func (m Mark) status() LetterStatus {
	switch m {
	case MarkCorrect:
		return StatusCorrect
	case MarkPresent:
		return StatusPresent
	default:
		return StatusAbsent
	}
}

// Attempt pairs one submitted guess with its per-letter marks.
type Attempt struct {
	Guess string // uppercase, exactly WordLength letters
	Marks []Mark // one mark per position
}

// Outcome is the coarse state of a round.
type Outcome string

const (
	InProgress Outcome = "playing"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)
