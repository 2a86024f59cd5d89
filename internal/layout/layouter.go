package layout

import (
	"fmt"

	"github.com/piwi3910/tagcloud/internal/model"
)

// Layouter places rectangles one at a time, each as close to the center as
// the spiral search allows, in strict call order. Placed rectangles are never
// moved by later calls. A Layouter is not safe for concurrent use.
type Layouter struct {
	settings model.Settings
	spiral   *Spiral
	placed   tracker
	stats    Stats
}

// Stats counts the work done by a Layouter.
type Stats struct {
	SearchPoints    int // Spiral points tried across all placements
	CompactionMoves int // Unit moves applied by compaction
}

// New creates a Layouter with a fresh spiral built from the settings.
func New(settings model.Settings) (*Layouter, error) {
	if settings.MaxSearchIterations <= 0 {
		return nil, &model.ConfigError{Field: "max_search_iterations", Value: settings.MaxSearchIterations, Reason: "must be > 0"}
	}
	if settings.MaxCompactionSteps < 0 {
		return nil, &model.ConfigError{Field: "max_compaction_steps", Value: settings.MaxCompactionSteps, Reason: "must not be negative"}
	}
	spiral, err := NewSpiral(settings.Center, settings.Step, settings.DeltaAngle)
	if err != nil {
		return nil, err
	}
	return &Layouter{settings: settings, spiral: spiral}, nil
}

// PutNextRectangle places a rectangle of the given size and returns it.
// A negative dimension yields a *model.ConfigError; exceeding the search
// budget yields an *ExhaustedError and leaves the layout unchanged.
func (l *Layouter) PutNextRectangle(size model.Size) (model.Rectangle, error) {
	if err := size.Validate(); err != nil {
		return model.Rectangle{}, &model.ConfigError{Field: "size", Value: size, Reason: "dimensions must not be negative"}
	}

	for i := 0; i < l.settings.MaxSearchIterations; i++ {
		candidate := model.CenteredAt(l.spiral.Next(), size)
		l.stats.SearchPoints++
		if l.placed.overlaps(candidate) {
			continue
		}
		if l.settings.Compact {
			candidate = l.compact(candidate)
		}
		l.placed.add(candidate)
		return candidate, nil
	}

	return model.Rectangle{}, &ExhaustedError{
		Size:       size,
		Iterations: l.settings.MaxSearchIterations,
		Radius:     l.spiral.Radius(),
	}
}

// PutAll places sizes in order and stops at the first error, returning the
// rectangles placed so far.
func (l *Layouter) PutAll(sizes []model.Size) ([]model.Rectangle, error) {
	rects := make([]model.Rectangle, 0, len(sizes))
	for i, size := range sizes {
		r, err := l.PutNextRectangle(size)
		if err != nil {
			return rects, fmt.Errorf("rectangle %d: %w", i, err)
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// compact pulls r toward the center one unit per axis while it stays clear
// of every placed rectangle. An axis is done once the rectangle center
// reaches the center coordinate on it.
func (l *Layouter) compact(r model.Rectangle) model.Rectangle {
	center := l.settings.Center
	budget := l.settings.MaxCompactionSteps
	for budget > 0 {
		moved := false
		c := r.Center()
		steps := []model.Point{
			{X: sign(center.X - c.X)},
			{Y: sign(center.Y - c.Y)},
		}
		for _, d := range steps {
			if d == (model.Point{}) || budget == 0 {
				continue
			}
			next := r.Translate(d)
			if l.placed.overlaps(next) {
				continue
			}
			r = next
			moved = true
			budget--
			l.stats.CompactionMoves++
		}
		if !moved {
			break
		}
	}
	return r
}

// Rectangles returns the placed rectangles in call order.
func (l *Layouter) Rectangles() []model.Rectangle {
	return l.placed.rectangles()
}

// Bounds returns the bounding box of everything placed so far.
func (l *Layouter) Bounds() model.Rectangle {
	return l.placed.bounds()
}

// Len returns the number of placed rectangles.
func (l *Layouter) Len() int {
	return l.placed.len()
}

// Stats returns the search and compaction counters.
func (l *Layouter) Stats() Stats {
	return l.stats
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
