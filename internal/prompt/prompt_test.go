package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	vocab := map[string]bool{"CRANE": true, "STEPS": true}
	r := &Reader{limit: 6, allowed: func(w string) bool { return vocab[w] }}

	tests := []struct {
		name  string
		guess string
		want  string
	}{
		{"valid word", "CRANE", ""},
		{"too short", "CAT", "Guess must be 5 letters!"},
		{"too long", "CRANES", "Guess must be 5 letters!"},
		{"empty", "", "Guess must be 5 letters!"},
		{"not in wordlist", "ZZZZZ", "ZZZZZ is not in wordlist!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.check(tt.guess))
		})
	}
}
