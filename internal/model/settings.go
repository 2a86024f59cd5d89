package model

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidConfig is matched by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a setting or input that can never produce a layout.
// It is fatal for the session and must not be retried.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) succeed.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Settings holds everything one render session needs: canvas, spiral
// search, font sizing, colors and the injected stop-word list. A Settings
// value is built once, validated, then passed down by value.
type Settings struct {
	ImageName string `json:"image_name" toml:"image_name"`
	Canvas    Size   `json:"canvas" toml:"canvas"`
	Center    Point  `json:"center" toml:"center"`

	// Spiral search
	Step                float64 `json:"step" toml:"step"`                                   // Radius growth per radian
	DeltaAngle          float64 `json:"delta_angle" toml:"delta_angle"`                     // Radians added per candidate point
	MaxSearchIterations int     `json:"max_search_iterations" toml:"max_search_iterations"` // Candidate points tried per rectangle
	Compact             bool    `json:"compact" toml:"compact"`                             // Pull accepted rectangles toward the center
	MaxCompactionSteps  int     `json:"max_compaction_steps" toml:"max_compaction_steps"`   // Unit moves per rectangle

	// Font sizing: size = MinFontSize + count*FontStep, capped at MaxFontSize (0 = no cap)
	FontPath    string  `json:"font_path" toml:"font_path"` // TTF/OTF file, empty = Go Regular
	MinFontSize float64 `json:"min_font_size" toml:"min_font_size"`
	FontStep    float64 `json:"font_step" toml:"font_step"`
	MaxFontSize float64 `json:"max_font_size" toml:"max_font_size"`
	DPI         float64 `json:"dpi" toml:"dpi"`

	// Colors as #RRGGBB or #RRGGBBAA
	Foreground string   `json:"foreground" toml:"foreground"`
	Background string   `json:"background" toml:"background"`
	Palette    []string `json:"palette" toml:"palette"` // Cycled per word when set, overrides Foreground

	// Word selection
	StopWordsPath string `json:"stop_words_path" toml:"stop_words_path"` // Empty = built-in English list
	MinWordLength int    `json:"min_word_length" toml:"min_word_length"`
	MaxWords      int    `json:"max_words" toml:"max_words"` // 0 = all words
}

// DefaultSettings returns the standard session:
// a 1000x1000 canvas, centered spiral with step 1 and 0.1 rad per point.
func DefaultSettings() Settings {
	canvas := Size{Width: 1000, Height: 1000}
	return Settings{
		ImageName:           "cloud.png",
		Canvas:              canvas,
		Center:              Point{X: canvas.Width / 2, Y: canvas.Height / 2},
		Step:                1,
		DeltaAngle:          0.1,
		MaxSearchIterations: 2_000_000,
		Compact:             true,
		MaxCompactionSteps:  10_000,
		MinFontSize:         24,
		FontStep:            6,
		MaxFontSize:         160,
		DPI:                 72,
		Foreground:          "#1F2937",
		Background:          "#FFFFFF",
		MinWordLength:       3,
		MaxWords:            100,
	}
}

// WithCanvas returns a copy with a new canvas size and the center moved to
// the middle of it.
func (s Settings) WithCanvas(canvas Size) Settings {
	s.Canvas = canvas
	s.Center = Point{X: canvas.Width / 2, Y: canvas.Height / 2}
	return s
}

// FontSizeFor returns the point size of a word seen count times.
func (s Settings) FontSizeFor(count int) float64 {
	size := s.MinFontSize + float64(count)*s.FontStep
	if s.MaxFontSize > 0 && size > s.MaxFontSize {
		size = s.MaxFontSize
	}
	return size
}

// Validate checks every field the layout and renderer depend on.
func (s Settings) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return &ConfigError{Field: "canvas", Value: s.Canvas, Reason: "must be positive"}
	}
	if !(s.Step > 0) {
		return &ConfigError{Field: "step", Value: s.Step, Reason: "must be > 0"}
	}
	if !(s.DeltaAngle > 0) {
		return &ConfigError{Field: "delta_angle", Value: s.DeltaAngle, Reason: "must be > 0"}
	}
	if s.MaxSearchIterations <= 0 {
		return &ConfigError{Field: "max_search_iterations", Value: s.MaxSearchIterations, Reason: "must be > 0"}
	}
	if s.MaxCompactionSteps < 0 {
		return &ConfigError{Field: "max_compaction_steps", Value: s.MaxCompactionSteps, Reason: "must not be negative"}
	}
	if !(s.MinFontSize > 0) {
		return &ConfigError{Field: "min_font_size", Value: s.MinFontSize, Reason: "must be > 0"}
	}
	if s.FontStep < 0 {
		return &ConfigError{Field: "font_step", Value: s.FontStep, Reason: "must not be negative"}
	}
	if s.MaxFontSize < 0 {
		return &ConfigError{Field: "max_font_size", Value: s.MaxFontSize, Reason: "must not be negative"}
	}
	if !(s.DPI > 0) {
		return &ConfigError{Field: "dpi", Value: s.DPI, Reason: "must be > 0"}
	}
	if s.MaxWords < 0 {
		return &ConfigError{Field: "max_words", Value: s.MaxWords, Reason: "must not be negative"}
	}
	for _, field := range []struct{ name, value string }{
		{"foreground", s.Foreground},
		{"background", s.Background},
	} {
		if _, err := ParseHexColor(field.value); err != nil {
			return &ConfigError{Field: field.name, Value: field.value, Reason: err.Error()}
		}
	}
	for _, c := range s.Palette {
		if _, err := ParseHexColor(c); err != nil {
			return &ConfigError{Field: "palette", Value: c, Reason: err.Error()}
		}
	}
	return nil
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
