// Command boundarybench runs the full boundary-crossing benchmark matrix
// and prints the report to stdout. No flags, no configuration; logging goes
// to stderr so the report stays clean for diffing against prior runs.
package main

import (
	"log/slog"
	"os"

	"github.com/alexshd/boundarybench"
	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	cfg := boundarybench.DefaultConfig()
	cfg.Log = slog.Default()

	if err := boundarybench.NewRunner(cfg).Run(); err != nil {
		slog.Error("benchmark aborted", "err", err)
		os.Exit(1)
	}
}
