// Package cloud turns counted words into a placed, canvas-fitted tag cloud.
package cloud

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piwi3910/tagcloud/internal/layout"
	"github.com/piwi3910/tagcloud/internal/model"
)

// Measurer returns the pixel extent of a word rendered at a point size.
type Measurer interface {
	Measure(word string, fontSize float64) (model.Size, error)
}

// Cloud is a finished layout ready to be rendered.
type Cloud struct {
	ID      string            `json:"id"`
	Tags    []model.Tag       `json:"tags"`
	Canvas  model.Size        `json:"canvas"`
	Factor  float64           `json:"factor"`
	Scaled  bool              `json:"scaled"`
	Skipped []model.WordCount `json:"skipped,omitempty"`
	Stats   layout.Stats      `json:"stats"`
}

// Build measures every word, places the labels in order with one Layouter
// and fits the result to the canvas. Words whose search is exhausted are
// reported in Skipped; any other error aborts the build.
func Build(words []model.WordCount, m Measurer, settings model.Settings) (Cloud, error) {
	if err := settings.Validate(); err != nil {
		return Cloud{}, err
	}
	l, err := layout.New(settings)
	if err != nil {
		return Cloud{}, err
	}

	c := Cloud{
		ID:     uuid.New().String()[:8],
		Canvas: settings.Canvas,
		Factor: 1,
	}

	type placed struct {
		word     model.WordCount
		fontSize float64
	}
	var labels []placed
	for _, w := range words {
		fontSize := settings.FontSizeFor(w.Count)
		size, err := m.Measure(w.Word, fontSize)
		if err != nil {
			return Cloud{}, fmt.Errorf("measure %q: %w", w.Word, err)
		}
		if _, err := l.PutNextRectangle(size); err != nil {
			if errors.Is(err, layout.ErrSearchExhausted) {
				c.Skipped = append(c.Skipped, w)
				continue
			}
			return Cloud{}, fmt.Errorf("place %q: %w", w.Word, err)
		}
		labels = append(labels, placed{word: w, fontSize: fontSize})
	}

	fit := layout.Fit(l.Rectangles(), settings)
	c.Factor = fit.Factor
	c.Scaled = fit.Scaled
	c.Stats = l.Stats()
	c.Tags = make([]model.Tag, len(labels))
	for i, lb := range labels {
		c.Tags[i] = model.Tag{
			Word:     lb.word.Word,
			Count:    lb.word.Count,
			FontSize: lb.fontSize * fit.Factor,
			Rect:     fit.Rectangles[i],
		}
	}
	return c, nil
}

// Rectangles returns the tag rectangles in placement order.
func (c Cloud) Rectangles() []model.Rectangle {
	rects := make([]model.Rectangle, len(c.Tags))
	for i, t := range c.Tags {
		rects[i] = t.Rect
	}
	return rects
}

// Sizes returns the measured extent of each word, in order. Words the
// measurer rejects abort with its error.
func Sizes(words []model.WordCount, m Measurer, settings model.Settings) ([]model.Size, error) {
	sizes := make([]model.Size, len(words))
	for i, w := range words {
		size, err := m.Measure(w.Word, settings.FontSizeFor(w.Count))
		if err != nil {
			return nil, fmt.Errorf("measure %q: %w", w.Word, err)
		}
		sizes[i] = size
	}
	return sizes, nil
}
