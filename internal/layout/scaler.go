package layout

import (
	"math"

	"github.com/piwi3910/tagcloud/internal/model"
)

// FitResult is the outcome of fitting a placed cloud to a canvas.
type FitResult struct {
	Rectangles []model.Rectangle `json:"rectangles"`
	Canvas     model.Size        `json:"canvas"`
	Factor     float64           `json:"factor"`
	Scaled     bool              `json:"scaled"`
}

// NeedsScale reports whether bounds exceed target in either dimension.
func NeedsScale(target, bounds model.Size) bool {
	return bounds.Width > target.Width || bounds.Height > target.Height
}

// ScaleFactor returns the uniform factor that makes bounds fit inside target
// while preserving aspect ratio. Degenerate bounds (zero width or height)
// yield 1.
func ScaleFactor(target, bounds model.Size) float64 {
	if bounds.Width == 0 || bounds.Height == 0 {
		return 1
	}
	fx := float64(target.Width) / float64(bounds.Width)
	fy := float64(target.Height) / float64(bounds.Height)
	return math.Min(fx, fy)
}

// ApplyScale scales every rectangle by factor about ref. Both edges of each
// rectangle are mapped through ref + factor*(edge-ref) and rounded, so
// rectangles that touched still touch and none start to overlap.
func ApplyScale(rects []model.Rectangle, factor float64, ref model.Point) []model.Rectangle {
	scale := func(v, c int) int {
		return int(math.Round(float64(c) + factor*float64(v-c)))
	}
	out := make([]model.Rectangle, len(rects))
	for i, r := range rects {
		min, max := r.Min(), r.Max()
		x0, y0 := scale(min.X, ref.X), scale(min.Y, ref.Y)
		x1, y1 := scale(max.X, ref.X), scale(max.Y, ref.Y)
		out[i] = model.Rectangle{
			Origin: model.Point{X: x0, Y: y0},
			Size:   model.Size{Width: x1 - x0, Height: y1 - y0},
		}
	}
	return out
}

// Fit returns rects unchanged when their bounding box fits the canvas.
// Otherwise it scales them about the settings center and then shifts them so
// the scaled bounding box is centered on the canvas.
func Fit(rects []model.Rectangle, settings model.Settings) FitResult {
	bounds := model.Bounds(rects)
	if !NeedsScale(settings.Canvas, bounds.Size) {
		return FitResult{Rectangles: rects, Canvas: settings.Canvas, Factor: 1}
	}

	factor := ScaleFactor(settings.Canvas, bounds.Size)
	if factor == 1 {
		return FitResult{Rectangles: rects, Canvas: settings.Canvas, Factor: 1}
	}

	scaled := ApplyScale(rects, factor, settings.Center)
	sb := model.Bounds(scaled)
	shift := model.Point{
		X: (settings.Canvas.Width-sb.Size.Width)/2 - sb.Origin.X,
		Y: (settings.Canvas.Height-sb.Size.Height)/2 - sb.Origin.Y,
	}
	for i := range scaled {
		scaled[i] = scaled[i].Translate(shift)
	}
	return FitResult{Rectangles: scaled, Canvas: settings.Canvas, Factor: factor, Scaled: true}
}
