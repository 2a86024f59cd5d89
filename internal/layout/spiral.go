// Package layout places word rectangles into a dense circular cloud and
// rescales the result to a target canvas.
package layout

import (
	"math"

	"github.com/piwi3910/tagcloud/internal/model"
)

// Spiral yields candidate points on an Archimedean spiral around a center.
// The sequence is deterministic and cannot be rewound; build a new Spiral to
// replay it.
type Spiral struct {
	center     model.Point
	step       float64
	deltaAngle float64
	angle      float64
}

// NewSpiral returns a spiral whose radius grows by step per radian and whose
// angle advances by deltaAngle per call to Next.
func NewSpiral(center model.Point, step, deltaAngle float64) (*Spiral, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, &model.ConfigError{Field: "step", Value: step, Reason: "must be a finite number > 0"}
	}
	if !(deltaAngle > 0) || math.IsInf(deltaAngle, 0) {
		return nil, &model.ConfigError{Field: "delta_angle", Value: deltaAngle, Reason: "must be a finite number > 0"}
	}
	return &Spiral{center: center, step: step, deltaAngle: deltaAngle}, nil
}

// Next returns the next point. The first call returns the center.
func (s *Spiral) Next() model.Point {
	r := s.Radius()
	p := model.Point{
		X: s.center.X + int(math.Round(r*math.Cos(s.angle))),
		Y: s.center.Y + int(math.Round(r*math.Sin(s.angle))),
	}
	s.angle += s.deltaAngle
	return p
}

// Radius returns the radius of the point Next will return.
func (s *Spiral) Radius() float64 {
	return s.step * s.angle
}
