// internal/words/words.go
//
// Wordlist management for the game.
//
// Responsibilities:
//   - Load the wordlist from an explicit path, the WORDLE_WORDLIST env
//     var, or the embedded default list.
//   - Maintain a set for fast guess-validation lookups.
//   - Pick the secret word (Random) and answer membership queries.
//
// Normalization:
//   - Each line is truncated to the first WordLength characters and
//     uppercased, which also strips trailing newlines from a properly
//     built list. Blank or too-short lines are dropped.
//
// Initialization is run once (sync.Once). An empty resulting list is a
// startup error: the program must exit before any round begins.

package words

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/isaDue99/Wordle/assets"
	"github.com/isaDue99/Wordle/internal/game"
)

var (
	initOnce   sync.Once
	list       []string            // ordered wordlist, uppercase
	set        map[string]struct{} // lookup set over list
	source     string              // where the list came from, for logging
	initialErr error
)

// Init loads the wordlist exactly once.
// Resolution order: explicit path argument, WORDLE_WORDLIST environment
// variable, embedded default list. Returns an error if the file cannot
// be read or the list ends up empty.
func Init(path string) error {
	initOnce.Do(func() {
		if path == "" {
			path = os.Getenv("WORDLE_WORDLIST")
		}

		var (
			lines []string
			err   error
		)
		if path != "" {
			source = path
			lines, err = readWordFile(path)
		} else {
			source = "embedded"
			lines, err = assets.Wordlist()
		}
		if err != nil {
			initialErr = fmt.Errorf("words: load %s: %w", source, err)
			return
		}

		list = normalize(lines)
		set = toSet(list)

		if len(list) == 0 {
			initialErr = fmt.Errorf("words: wordlist from %s is empty", source)
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize truncates each line to the first WordLength characters,
// uppercases it, and drops anything left shorter than WordLength.
func normalize(lines []string) []string {
	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if len(w) < game.WordLength {
			continue
		}
		out = append(out, strings.ToUpper(w[:game.WordLength]))
	}
	return out
}

// toSet converts a list of words into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Random returns a cryptographically random word from the list.
// Falls back to "CRANE" if the list was never loaded.
func Random() string {
	if len(list) == 0 {
		return "CRANE"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()]
}

// Contains reports whether w is in the wordlist. Lookup is
// case-insensitive since the list is uppercase-normalized.
func Contains(w string) bool {
	_, ok := set[strings.ToUpper(w)]
	return ok
}

// Count returns the number of loaded words.
func Count() int { return len(list) }

// Source reports where the wordlist was loaded from ("embedded" or a
// file path).
func Source() string { return source }
