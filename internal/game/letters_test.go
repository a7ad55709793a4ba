package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusesZeroValueIsUnseen(t *testing.T) {
	var s Statuses
	for r := 'A'; r <= 'Z'; r++ {
		assert.Equal(t, StatusUnseen, s.Of(r))
	}
}

// Absent → Present → Correct upgrades stick; a later Absent must not
// pull the letter back down.
func TestStatusesUpgradeIsMonotone(t *testing.T) {
	var s Statuses

	// R scored absent: secret has no R at all.
	s = s.Upgrade("ROOMY", Score("ROOMY", "GLASS"))
	assert.Equal(t, StatusAbsent, s.Of('R'))

	// R scored present.
	s = s.Upgrade("ROOMY", Score("ROOMY", "CARVE"))
	assert.Equal(t, StatusPresent, s.Of('R'))

	// R scored correct.
	s = s.Upgrade("CRANE", Score("CRANE", "CRUMB"))
	assert.Equal(t, StatusCorrect, s.Of('R'))

	// A later guess where R gets no budget leaves it correct.
	s = s.Upgrade("ROOMY", Score("ROOMY", "GLASS"))
	assert.Equal(t, StatusCorrect, s.Of('R'))
}

// Duplicate letters in one guess keep their best mark: for secret STEPS
// and guess HEELS, E is both correct (index 2) and absent (index 1), and
// the table must record correct.
func TestStatusesBestMarkWinsWithinOneGuess(t *testing.T) {
	var s Statuses
	s = s.Upgrade("HEELS", Score("HEELS", "STEPS"))
	assert.Equal(t, StatusCorrect, s.Of('E'))
	assert.Equal(t, StatusCorrect, s.Of('S'))
	assert.Equal(t, StatusAbsent, s.Of('H'))
	assert.Equal(t, StatusAbsent, s.Of('L'))
}

// Upgrade returns a new value and leaves the receiver alone.
func TestStatusesUpgradeCopies(t *testing.T) {
	var before Statuses
	after := before.Upgrade("CRANE", Score("CRANE", "CRANE"))

	assert.Equal(t, StatusUnseen, before.Of('C'))
	assert.Equal(t, StatusCorrect, after.Of('C'))
}

func TestStatusesOfIgnoresNonLetters(t *testing.T) {
	var s Statuses
	s = s.Upgrade("CRANE", Score("CRANE", "CRANE"))
	assert.Equal(t, StatusUnseen, s.Of('?'))
	assert.Equal(t, StatusUnseen, s.Of('a'))
}
