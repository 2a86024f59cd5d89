package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/project"
	"github.com/piwi3910/tagcloud/internal/render"
)

type generateOpts struct {
	settingsOpts
	output     string // image or PDF path, default settings.ImageName
	layoutJSON string // optional layout file written next to the image
}

func newGenerateCmd(g *globalOpts) *cobra.Command {
	opts := &generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Render a tag cloud image or PDF report from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, g, &opts.settingsOpts)
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = s.ImageName
			}
			if !render.IsPDF(opts.output) {
				if _, err := render.EncoderFor(opts.output); err != nil {
					return err
				}
			}

			c, fonts, err := buildCloud(cmd.Context(), args[0], s)
			if err != nil {
				return err
			}
			defer fonts.Close()

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			if err := render.Save(opts.output, c, fonts, s); err != nil {
				return err
			}
			prog.done("Wrote " + opts.output)

			if opts.layoutJSON != "" {
				if err := project.SaveLayout(opts.layoutJSON, c, s); err != nil {
					return err
				}
				logger.Info("Wrote layout", "path", opts.layoutJSON)
			}
			return nil
		},
	}

	addSettingsFlags(cmd, &opts.settingsOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file: .png, .jpg, .gif, .bmp, .tiff or .pdf (default from settings)")
	cmd.Flags().StringVar(&opts.layoutJSON, "layout-json", "", "also write the placed layout to this JSON file")

	return cmd
}
