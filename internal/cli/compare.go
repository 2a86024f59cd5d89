package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/cloud"
	"github.com/piwi3910/tagcloud/internal/layout"
	"github.com/piwi3910/tagcloud/internal/render"
)

func newCompareCmd(g *globalOpts) *cobra.Command {
	opts := &settingsOpts{}

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Compare layouts of the same words under alternative spiral settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, g, opts)
			if err != nil {
				return err
			}
			words, err := countWords(cmd.Context(), args[0], s)
			if err != nil {
				return err
			}
			fonts, err := render.LoadFonts(s)
			if err != nil {
				return err
			}
			defer fonts.Close()

			sizes, err := cloud.Sizes(words, fonts, s)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			results := layout.CompareScenarios(layout.BuildDefaultScenarios(s), sizes)
			prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))
			return writeComparison(cmd.OutOrStdout(), results)
		},
	}

	addSettingsFlags(cmd, opts)
	return cmd
}

// writeComparison prints one aligned row per scenario.
func writeComparison(w io.Writer, results []layout.ComparisonResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tPLACED\tSKIPPED\tBOUNDS\tDENSITY\tSEARCH POINTS\tCOMPACTION MOVES")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\t\t\t\t\t\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.1f%%\t%d\t%d\n",
			r.Scenario.Name, len(r.Rectangles), r.Skipped, r.Bounds, r.Density*100, r.SearchPoints, r.CompactionMoves)
	}
	return tw.Flush()
}
