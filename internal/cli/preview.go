package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/render"
	"github.com/piwi3910/tagcloud/internal/ui"
)

func newPreviewCmd(g *globalOpts) *cobra.Command {
	opts := &settingsOpts{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Show the rendered tag cloud in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, g, opts)
			if err != nil {
				return err
			}
			c, fonts, err := buildCloud(cmd.Context(), args[0], s)
			if err != nil {
				return err
			}
			defer fonts.Close()

			img, err := render.Raster(c, fonts, s)
			if err != nil {
				return err
			}
			ui.ShowPreview(fmt.Sprintf("Tag Cloud: %s (%d words)", filepath.Base(args[0]), len(c.Tags)), img)
			return nil
		},
	}

	addSettingsFlags(cmd, opts)
	return cmd
}
