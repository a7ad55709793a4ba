package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/isaDue99/Wordle/internal/prompt"
)

func main() {
	_ = godotenv.Load()
	// Quiet by default: structured logs would clutter the board. Raise
	// LOG_LEVEL to info/debug to see wordlist + secret diagnostics.
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := rootCmd.Execute(); err != nil {
		// An abort already printed its own notice.
		if !errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
