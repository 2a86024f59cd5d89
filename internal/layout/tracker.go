package layout

import "github.com/piwi3910/tagcloud/internal/model"

// tracker holds the rectangles placed so far in one session.
// A linear scan is fast enough for word-cloud sized inputs.
type tracker struct {
	placed []model.Rectangle
}

func (t *tracker) add(r model.Rectangle) {
	t.placed = append(t.placed, r)
}

// overlaps reports whether r intersects the interior of any placed rectangle.
func (t *tracker) overlaps(r model.Rectangle) bool {
	if r.Size.IsZero() {
		return false
	}
	for _, p := range t.placed {
		if r.Overlaps(p) {
			return true
		}
	}
	return false
}

func (t *tracker) len() int {
	return len(t.placed)
}

func (t *tracker) rectangles() []model.Rectangle {
	out := make([]model.Rectangle, len(t.placed))
	copy(out, t.placed)
	return out
}

func (t *tracker) bounds() model.Rectangle {
	return model.Bounds(t.placed)
}
