// tagcloud lays out the words of a document as a spiral tag cloud.
//
// Build:
//   go build -o tagcloud ./cmd/tagcloud
//
// Usage:
//   tagcloud generate notes.md -o cloud.png
//   tagcloud preview report.docx --palette "#1565c0,#2e7d32,#c62828"
//   tagcloud compare book.txt --max-words 200

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/tagcloud/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
