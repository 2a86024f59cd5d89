package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/piwi3910/tagcloud/internal/cloud"
	"github.com/piwi3910/tagcloud/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Palette resolves the drawing colors of a session.
type Palette struct {
	Background color.NRGBA
	Colors     []color.NRGBA
}

// NewPalette parses the background and word colors. When settings.Palette is
// empty every word uses the foreground color.
func NewPalette(settings model.Settings) (Palette, error) {
	bg, err := model.ParseHexColor(settings.Background)
	if err != nil {
		return Palette{}, &model.ConfigError{Field: "background", Value: settings.Background, Reason: err.Error()}
	}
	p := Palette{Background: bg}
	names := settings.Palette
	if len(names) == 0 {
		names = []string{settings.Foreground}
	}
	for _, name := range names {
		c, err := model.ParseHexColor(name)
		if err != nil {
			return Palette{}, &model.ConfigError{Field: "palette", Value: name, Reason: err.Error()}
		}
		p.Colors = append(p.Colors, c)
	}
	return p, nil
}

// Color returns the color of the i-th word.
func (p Palette) Color(i int) color.NRGBA {
	return p.Colors[i%len(p.Colors)]
}

// Raster draws the cloud onto a canvas-sized image. Each word is drawn with
// its baseline one ascent below the top of its rectangle.
func Raster(c cloud.Cloud, fonts *Fonts, settings model.Settings) (*image.RGBA, error) {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return nil, &model.ConfigError{Field: "canvas", Value: c.Canvas, Reason: "must be positive"}
	}
	palette, err := NewPalette(settings)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.Canvas.Width, c.Canvas.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(palette.Background), image.Point{}, draw.Src)

	for i, tag := range c.Tags {
		face, err := fonts.Face(tag.FontSize)
		if err != nil {
			return nil, fmt.Errorf("draw %q: %w", tag.Word, err)
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(palette.Color(i)),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(tag.Rect.Origin.X),
				Y: fixed.I(tag.Rect.Origin.Y) + face.Metrics().Ascent,
			},
		}
		d.DrawString(tag.Word)
	}
	return img, nil
}
