package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newLayoutCmd(g *globalOpts) *cobra.Command {
	opts := &settingsOpts{}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the placed word rectangles as JSON",
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

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		},
	}

	addSettingsFlags(cmd, opts)
	return cmd
}
