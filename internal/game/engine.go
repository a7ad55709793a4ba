// internal/game/engine.go
//
// Core engine for a single Wordle round.
// Responsibilities:
//   - Score guesses against the secret word using the classic two-pass
//     Wordle algorithm, with correct duplicate-letter handling.
//   - Track state transitions: playing → won/lost.
//   - Maintain the attempt history and the per-letter status table.
//
// Notes:
//   - Scoring is a pure function; the round owns all mutable state.
//   - Guess validation (length, vocabulary) happens before a guess reaches
//     this package; a malformed guess here is a programming error.

package game

// Score evaluates guess against secret and returns one Mark per guess
// position.
//
// Pass 1:
//   - Mark exact positional matches Correct.
//   - Count the secret's remaining (non-matched) letters.
//
// Pass 2:
//   - For each non-Correct guess position, left to right: if there is
//     remaining count for that letter, mark Present and decrement the
//     count; otherwise mark Absent.
//
// Exact matches always claim a letter's budget before any Present does,
// so a duplicate appearing earlier in the guess than its Correct twin can
// still come out Absent. Example: secret STEPS, guess HEELS — the E at
// index 2 is Correct and the E at index 1 is Absent, because STEPS has
// only one E.
//
// Both words are expected uppercase. If the secret has a different length
// than the guess (an unvalidated secret override), extra or missing
// positions simply never match, which makes the round unwinnable but
// keeps scoring well defined.
func Score(guess, secret string) []Mark {
	guessRunes := []rune(guess)
	secretRunes := []rune(secret)
	n := len(guessRunes)
	res := make([]Mark, n)

	// Letter frequency budget: secret letters not claimed by an exact match.
	var counts [26]int
	for i, r := range secretRunes {
		if i < n && guessRunes[i] == r {
			continue
		}
		if j := idx(r); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if i < len(secretRunes) && guessRunes[i] == secretRunes[i] {
			res[i] = MarkCorrect
		}
	}

	// Second pass: resolve present/absent for the rest.
	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter rune to 0..25.
// Out-of-range results mean "not a letter we track".
func idx(r rune) int { return int(r - 'A') }
