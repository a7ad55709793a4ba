// play.go
//
// Root command and the round loop. Wires the collaborators together:
// wordlist → secret selection → prompt → round state machine → renderer.
//
// Exit codes:
//   0 — round completed (won or lost).
//   1 — startup failure (missing/empty wordlist) or player abort.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isaDue99/Wordle/internal/game"
	"github.com/isaDue99/Wordle/internal/prompt"
	"github.com/isaDue99/Wordle/internal/tui"
	"github.com/isaDue99/Wordle/internal/words"
)

var wordlistPath string

var rootCmd = &cobra.Command{
	Use:   "wordle [secret]",
	Short: "Play Wordle in your terminal",
	Long: `Play Wordle in your terminal.

A secret five-letter word is picked at random from the wordlist and you
get six rounds to guess it. Pass a word as the only argument to override
the secret; the override is deliberately not validated, so a word of the
wrong length or outside the wordlist makes the round unwinnable (you get
a warning).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&wordlistPath, "wordlist", "",
		"path to a wordlist file, one five-letter word per line (default: embedded list, or WORDLE_WORDLIST)")
}

func run(cmd *cobra.Command, args []string) error {
	view := tui.Auto()

	if err := words.Init(wordlistPath); err != nil {
		// Startup failure: no round state exists yet.
		log.Fatal().Err(err).Msg("failed to load wordlist")
	}
	log.Info().Str("source", words.Source()).Int("count", words.Count()).Msg("wordlist loaded")

	secret := chooseSecret(args, view)

	reader, err := prompt.New(game.TriesLimit, words.Contains)
	if err != nil {
		return err
	}
	defer reader.Close()

	round := game.NewRound(secret)
	view.Welcome()

	for round.Outcome() == game.InProgress {
		guess, err := reader.Guess(len(round.Attempts()))
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				// Round state is simply discarded; nothing to clean up.
				view.Abort()
			}
			return err
		}
		round.Play(guess)
		view.Board(round)
	}

	if round.Outcome() == game.Won {
		view.Win(round.Secret())
	} else {
		view.Lose(round.Secret())
	}
	return nil
}

// chooseSecret picks the secret word: the positional argument if given
// (uppercased, otherwise untouched), else a random wordlist entry. An
// override that fails the length or vocabulary check is still accepted —
// the player just gets told the round is unwinnable.
func chooseSecret(args []string, view *tui.Renderer) string {
	if len(args) == 0 {
		return words.Random()
	}

	secret := strings.ToUpper(args[0])
	view.Debug(fmt.Sprintf("Secret word %q selected", secret))
	if len(secret) != game.WordLength {
		view.Note(fmt.Sprintf("Selected word isn't %d letters long; game is unwinnable", game.WordLength))
	} else if !words.Contains(secret) {
		view.Note("Selected word isn't in wordlist; game is unwinnable")
	}
	log.Debug().Str("secret", secret).Msg("secret override in effect")
	return secret
}
