// Package render draws a placed cloud to raster images and PDF reports.
package render

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/piwi3910/tagcloud/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// minFaceSize keeps heavily scaled clouds drawable.
const minFaceSize = 1.0

// Fonts measures and draws text with one OpenType font. Faces are created
// lazily and cached per point size. Fonts is safe for concurrent use.
type Fonts struct {
	font *opentype.Font
	dpi  float64

	mu    sync.Mutex
	faces map[float64]font.Face
}

// LoadFonts parses the font named by settings.FontPath, or Go Regular when
// the path is empty.
func LoadFonts(settings model.Settings) (*Fonts, error) {
	data := goregular.TTF
	if settings.FontPath != "" {
		b, err := os.ReadFile(settings.FontPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read font: %w", err)
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font %q: %w", settings.FontPath, err)
	}
	dpi := settings.DPI
	if dpi <= 0 {
		dpi = 72
	}
	return &Fonts{font: f, dpi: dpi, faces: make(map[float64]font.Face)}, nil
}

// Face returns the cached face for a point size.
func (f *Fonts) Face(size float64) (font.Face, error) {
	size = math.Max(size, minFaceSize)

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create %.1fpt face: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Measure returns the advance width and line height of word at size.
func (f *Fonts) Measure(word string, size float64) (model.Size, error) {
	face, err := f.Face(size)
	if err != nil {
		return model.Size{}, err
	}
	m := face.Metrics()
	return model.Size{
		Width:  font.MeasureString(face, word).Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
	}, nil
}

// Close releases every cached face.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var firstErr error
	for size, face := range f.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(f.faces, size)
	}
	return firstErr
}
