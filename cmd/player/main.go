package main

import (
	"os"

	"trivia-quiz/internal/player"
)

func main() {
	if err := player.Execute(); err != nil {
		os.Exit(1)
	}
}
