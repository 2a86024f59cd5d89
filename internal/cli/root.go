package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOpts holds the persistent flags shared by every command.
type globalOpts struct {
	verbose    bool
	configPath string // empty = ~/.tagcloud/config.toml
}

// Execute runs the tagcloud CLI with the given context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	root := &cobra.Command{
		Use:          "tagcloud",
		Short:        "tagcloud lays out word frequencies as a spiral tag cloud",
		Long:         `tagcloud reads a text, Markdown, CSV, Excel, Word, PDF or DXF document, counts its words and places them on an Archimedean spiral around the canvas center, largest first.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tagcloud %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default ~/.tagcloud/config.toml)")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newLayoutCmd(opts))
	root.AddCommand(newCompareCmd(opts))
	root.AddCommand(newPreviewCmd(opts))

	return root
}
