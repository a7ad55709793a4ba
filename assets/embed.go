package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed wordlist.txt
var fs embed.FS

// Wordlist returns the raw lines of the embedded default wordlist.
// Blank lines and '#' comments are skipped; normalization (truncation,
// case) is the words package's job.
func Wordlist() ([]string, error) {
	f, err := fs.Open("wordlist.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
