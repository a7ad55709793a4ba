// internal/tui/render.go
//
// Terminal rendering for the game: welcome banner, the guess board, the
// A–Z letter legend, and end-of-round messages. Output is centered on a
// fixed 80-column console. Styling follows the classic scheme — correct
// letters black on green, present black on yellow, absent black on gray —
// and is dropped entirely when stdout is not a terminal so piped output
// stays clean.

package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/isaDue99/Wordle/internal/game"
)

const consoleWidth = 80

var (
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3"))
	absentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#666666"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	secretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Renderer writes game output to a single destination.
type Renderer struct {
	out   io.Writer
	color bool
	width int
}

// New builds a renderer. color toggles ANSI styling.
func New(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color, width: consoleWidth}
}

// Auto builds a stdout renderer with color enabled only on a terminal.
func Auto() *Renderer {
	fd := os.Stdout.Fd()
	return New(os.Stdout, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// Welcome prints the banner and the game instructions.
func (r *Renderer) Welcome() {
	fmt.Fprintln(r.out)
	r.rule("WELCOME TO WORDLE!")
	fmt.Fprintln(r.out)
	r.centerln(fmt.Sprintf("I have picked a %d-letter word, and you have %d rounds to guess it!",
		game.WordLength, game.TriesLimit))
	r.centerln("Type your guess and hit enter!")
	fmt.Fprintln(r.out)
}

// Board prints every board row (played attempts colored, the rest as
// blank placeholders) followed by the letter legend.
func (r *Renderer) Board(rd *game.Round) {
	atts := rd.Attempts()
	for i := 0; i < rd.Limit(); i++ {
		if i < len(atts) {
			r.centerRaw(game.WordLength, r.attemptRow(atts[i]))
		} else {
			r.centerln(strings.Repeat("_", game.WordLength))
		}
	}
	fmt.Fprintln(r.out)
	r.centerRaw(26*3, r.legend(rd.Statuses()))
	fmt.Fprintln(r.out)
}

// Win prints the victory message, revealing the secret.
func (r *Renderer) Win(secret string) {
	r.reveal("You did it!", secret)
}

// Lose prints the defeat message, revealing the secret.
func (r *Renderer) Lose(secret string) {
	r.reveal("Better luck next time!", secret)
}

// Debug prints a centered, tagged diagnostic line (secret override).
func (r *Renderer) Debug(msg string) {
	r.tagged("Debug:", msg, debugStyle)
}

// Note prints a centered, tagged warning line (unwinnable round).
func (r *Renderer) Note(msg string) {
	r.tagged("Note:", msg, noteStyle)
}

// Abort prints the exit notice for an interrupted round.
func (r *Renderer) Abort() {
	fmt.Fprintln(r.out)
	r.centerln("Exiting game...")
}

// attemptRow renders one guess with its per-letter colors.
func (r *Renderer) attemptRow(att game.Attempt) string {
	var sb strings.Builder
	for i, ch := range att.Guess {
		s := string(ch)
		if r.color && i < len(att.Marks) {
			s = r.markStyle(att.Marks[i]).Render(s)
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// legend renders every letter A–Z colored by its best status so far.
// Unseen letters stay unstyled.
func (r *Renderer) legend(st game.Statuses) string {
	var sb strings.Builder
	for ch := 'A'; ch <= 'Z'; ch++ {
		cell := " " + string(ch) + " "
		if r.color {
			switch st.Of(ch) {
			case game.StatusCorrect:
				cell = correctStyle.Render(cell)
			case game.StatusPresent:
				cell = presentStyle.Render(cell)
			case game.StatusAbsent:
				cell = absentStyle.Render(cell)
			}
		}
		sb.WriteString(cell)
	}
	return sb.String()
}

func (r *Renderer) markStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkCorrect:
		return correctStyle
	case game.MarkPresent:
		return presentStyle
	default:
		return absentStyle
	}
}

// reveal prints an end-of-round line with the secret highlighted.
func (r *Renderer) reveal(lead, secret string) {
	plain := fmt.Sprintf("%s The word was %s!", lead, secret)
	word := secret
	if r.color {
		word = secretStyle.Render(secret)
	}
	r.centerRaw(len(plain), fmt.Sprintf("%s The word was %s!", lead, word))
}

// tagged prints "Tag: message" centered with a styled tag.
func (r *Renderer) tagged(tag, msg string, st lipgloss.Style) {
	plain := tag + " " + msg
	if r.color {
		tag = st.Render(tag)
	}
	r.centerRaw(len(plain), tag+" "+msg)
}

// rule prints a full-width banner line with the title in the middle,
// filled with a repeating "wordle_" pattern on both sides.
func (r *Renderer) rule(title string) {
	t := " " + title + " "
	side := (r.width - len(t)) / 2
	styled := t
	if r.color {
		styled = titleStyle.Render(t)
	}
	fmt.Fprintln(r.out, repeatTo("wordle_", side)+styled+repeatTo("wordle_", r.width-side-len(t)))
}

// centerln centers a plain (unstyled) line.
func (r *Renderer) centerln(s string) {
	r.centerRaw(len(s), s)
}

// centerRaw centers a possibly styled line whose visible width is
// plainWidth. ANSI escapes have zero visible width, so padding is
// computed from the unstyled length.
func (r *Renderer) centerRaw(plainWidth int, s string) {
	pad := (r.width - plainWidth) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(r.out, strings.Repeat(" ", pad)+s)
}

// repeatTo repeats pattern until it covers exactly n characters.
func repeatTo(pattern string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(pattern, n/len(pattern)+1)[:n]
}
