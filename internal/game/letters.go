// internal/game/letters.go
//
// Per-round letter status table, used to render the on-screen A–Z legend.
// The table is a plain value with copy-on-upgrade semantics: Upgrade
// returns a new table rather than mutating shared state, so each round
// owns exactly one and nothing can leak across rounds.

package game

// Statuses holds the best status seen so far for each letter A–Z.
// The zero value is a fresh table with every letter StatusUnseen.
type Statuses [26]LetterStatus

// Upgrade folds one scored guess into the table and returns the result.
// A letter's status only moves up the order
// Unseen < Absent < Present < Correct, never down: Absent from a later
// guess means "no budget left in that guess", not "not in the secret",
// so it must not overwrite an earlier Present or Correct.
func (s Statuses) Upgrade(guess string, marks []Mark) Statuses {
	for i, r := range []rune(guess) {
		j := idx(r)
		if j < 0 || j >= 26 || i >= len(marks) {
			continue
		}
		if st := marks[i].status(); st > s[j] {
			s[j] = st
		}
	}
	return s
}

// Of reports the status of a single letter. Letters outside A–Z are
// always StatusUnseen.
func (s Statuses) Of(r rune) LetterStatus {
	j := idx(r)
	if j < 0 || j >= 26 {
		return StatusUnseen
	}
	return s[j]
}
