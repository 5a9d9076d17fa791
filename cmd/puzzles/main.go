package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/LLIEPJIOK/adventofcode2019/internal/application/puzzles"
)

func main() {
	if err := puzzles.Start(); err != nil {
		slog.Error(fmt.Sprintf("puzzles.Start(): %s", err))
		os.Exit(1)
	}
}
