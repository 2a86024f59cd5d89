package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/piwi3910/tagcloud/internal/cloud"
	"github.com/piwi3910/tagcloud/internal/importer"
	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/piwi3910/tagcloud/internal/project"
	"github.com/piwi3910/tagcloud/internal/render"
	"github.com/piwi3910/tagcloud/internal/text"
)

// settingsOpts holds the flags that override the settings file.
// Only flags the user actually set are applied.
type settingsOpts struct {
	width     int
	height    int
	center    string // "x,y"
	step      float64
	angle     float64
	compact   bool
	font      string
	fg        string
	bg        string
	palette   string // comma-separated colors
	stopwords string
	maxWords  int
}

func addSettingsFlags(cmd *cobra.Command, o *settingsOpts) {
	d := model.DefaultSettings()
	f := cmd.Flags()
	f.IntVar(&o.width, "width", d.Canvas.Width, "canvas width in pixels")
	f.IntVar(&o.height, "height", d.Canvas.Height, "canvas height in pixels")
	f.StringVar(&o.center, "center", "", "spiral center as x,y (default canvas middle)")
	f.Float64Var(&o.step, "step", d.Step, "spiral radius growth per radian")
	f.Float64Var(&o.angle, "angle", d.DeltaAngle, "spiral angle increment in radians")
	f.BoolVar(&o.compact, "compact", d.Compact, "pull words toward the center after placement")
	f.StringVar(&o.font, "font", "", "TTF/OTF font file (default Go Regular)")
	f.StringVar(&o.fg, "fg", d.Foreground, "word color as #RRGGBB")
	f.StringVar(&o.bg, "bg", d.Background, "background color as #RRGGBB")
	f.StringVar(&o.palette, "palette", "", "comma-separated word colors, cycled per word")
	f.StringVar(&o.stopwords, "stopwords", "", "stop word list, one word per line (default built-in English)")
	f.IntVar(&o.maxWords, "max-words", d.MaxWords, "maximum number of words, 0 = all")
}

// apply overlays the changed flags onto s.
func (o *settingsOpts) apply(flags *pflag.FlagSet, s model.Settings) (model.Settings, error) {
	if flags.Changed("width") || flags.Changed("height") {
		canvas := s.Canvas
		if flags.Changed("width") {
			canvas.Width = o.width
		}
		if flags.Changed("height") {
			canvas.Height = o.height
		}
		s = s.WithCanvas(canvas)
	}
	if flags.Changed("center") {
		p, err := parsePoint(o.center)
		if err != nil {
			return s, err
		}
		s.Center = p
	}
	if flags.Changed("step") {
		s.Step = o.step
	}
	if flags.Changed("angle") {
		s.DeltaAngle = o.angle
	}
	if flags.Changed("compact") {
		s.Compact = o.compact
	}
	if flags.Changed("font") {
		s.FontPath = o.font
	}
	if flags.Changed("fg") {
		s.Foreground = o.fg
	}
	if flags.Changed("bg") {
		s.Background = o.bg
	}
	if flags.Changed("palette") {
		s.Palette = splitList(o.palette)
	}
	if flags.Changed("stopwords") {
		s.StopWordsPath = o.stopwords
	}
	if flags.Changed("max-words") {
		s.MaxWords = o.maxWords
	}
	return s, s.Validate()
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (model.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Point{}, &model.ConfigError{Field: "center", Value: s, Reason: "expected x,y"}
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return model.Point{}, &model.ConfigError{Field: "center", Value: s, Reason: "coordinates must be integers"}
	}
	return model.Point{X: x, Y: y}, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadSettings reads the settings file and applies the command flags.
func loadSettings(cmd *cobra.Command, g *globalOpts, o *settingsOpts) (model.Settings, error) {
	path := g.configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	s, err := project.LoadSettings(path)
	if err != nil {
		return model.Settings{}, err
	}
	loggerFromContext(cmd.Context()).Debug("Loaded settings", "path", path, "canvas", s.Canvas, "center", s.Center)
	return o.apply(cmd.Flags(), s)
}

// countWords reads path and returns the counted words that survive the
// processor chain, most frequent first.
func countWords(ctx context.Context, path string, s model.Settings) ([]model.WordCount, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	raw, err := importer.DefaultRegistry().ReadWords(path)
	if err != nil {
		return nil, err
	}
	chain, err := text.Pipeline(s)
	if err != nil {
		return nil, err
	}
	counts := text.Top(text.Count(chain.Process(raw)), s.MaxWords)
	if len(counts) == 0 {
		return nil, fmt.Errorf("%s: no words left after filtering", path)
	}
	prog.done(fmt.Sprintf("Read %d words, %d distinct kept", len(raw), len(counts)))
	return counts, nil
}

// buildCloud runs the whole pipeline for path. The caller closes the fonts.
func buildCloud(ctx context.Context, path string, s model.Settings) (cloud.Cloud, *render.Fonts, error) {
	logger := loggerFromContext(ctx)

	words, err := countWords(ctx, path, s)
	if err != nil {
		return cloud.Cloud{}, nil, err
	}
	fonts, err := render.LoadFonts(s)
	if err != nil {
		return cloud.Cloud{}, nil, err
	}

	prog := newProgress(logger)
	c, err := cloud.Build(words, fonts, s)
	if err != nil {
		fonts.Close()
		return cloud.Cloud{}, nil, err
	}
	for _, w := range c.Skipped {
		logger.Warn("Word did not fit", "word", w.Word, "count", w.Count)
	}
	logger.Debug("Layout stats", "search_points", c.Stats.SearchPoints, "compaction_moves", c.Stats.CompactionMoves)
	if c.Scaled {
		logger.Debug("Scaled to canvas", "factor", c.Factor, "canvas", c.Canvas)
	}
	prog.done(fmt.Sprintf("Placed %d words", len(c.Tags)))
	return c, fonts, nil
}
