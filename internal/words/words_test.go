package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	in := []string{
		"crane",
		"STEPS",
		"  elbow  ",
		"heels\r", // stray carriage return
		"planet",  // truncated to the first five letters
		"cat",     // too short, dropped
		"",
	}

	got := normalize(in)
	assert.Equal(t, []string{"CRANE", "STEPS", "ELBOW", "HEELS", "PLANE"}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nsteps\nheels\n"), 0o644))

	lines, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "steps", "heels"}, lines)
}

func TestReadWordFileMissing(t *testing.T) {
	_, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

// Init runs once per process, so the full load/lookup/select flow is
// covered by a single test against a temp wordlist.
func TestInitFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nsteps\nheels\nelbow\n"), 0o644))

	require.NoError(t, Init(path))
	require.NoError(t, Init(path)) // idempotent

	assert.Equal(t, 4, Count())
	assert.Equal(t, path, Source())

	assert.True(t, Contains("CRANE"))
	assert.True(t, Contains("crane"))
	assert.False(t, Contains("MOUNT"))
	assert.False(t, Contains(""))

	for i := 0; i < 20; i++ {
		assert.True(t, Contains(Random()))
	}
}
