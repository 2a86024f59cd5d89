package model

import "fmt"

// Point represents a 2D coordinate on the integer pixel grid.
type Point struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds the measured dimensions of a label box in pixels.
type Size struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// IsZero reports whether the size has no area.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Area returns width * height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Validate rejects negative dimensions. Zero is legal.
func (s Size) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("size %dx%d has a negative dimension", s.Width, s.Height)
	}
	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rectangle is an axis-aligned half-open box [x, x+w) x [y, y+h).
type Rectangle struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// CenteredAt builds the rectangle of the given size whose center is p.
// The half-size is truncated, so odd dimensions leave the extra pixel on the
// far side of p.
func CenteredAt(p Point, size Size) Rectangle {
	return Rectangle{
		Origin: Point{X: p.X - size.Width/2, Y: p.Y - size.Height/2},
		Size:   size,
	}
}

// Min returns the top-left corner.
func (r Rectangle) Min() Point {
	return r.Origin
}

// Max returns the exclusive bottom-right corner.
func (r Rectangle) Max() Point {
	return Point{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height}
}

// Center returns the point a rectangle built with CenteredAt was centered on.
func (r Rectangle) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Translate shifts the rectangle by d.
func (r Rectangle) Translate(d Point) Rectangle {
	return Rectangle{Origin: r.Origin.Add(d), Size: r.Size}
}

// Overlaps returns true if the interiors of r and o intersect. Rectangles
// that only touch along an edge do not overlap, and a zero-area rectangle
// overlaps nothing.
func (r Rectangle) Overlaps(o Rectangle) bool {
	if r.Size.IsZero() || o.Size.IsZero() {
		return false
	}
	rMax, oMax := r.Max(), o.Max()
	return r.Origin.X < oMax.X && rMax.X > o.Origin.X &&
		r.Origin.Y < oMax.Y && rMax.Y > o.Origin.Y
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%s+%s", r.Origin, r.Size)
}

// Bounds returns the tightest rectangle enclosing all rects.
// An empty slice yields the zero rectangle.
func Bounds(rects []Rectangle) Rectangle {
	if len(rects) == 0 {
		return Rectangle{}
	}
	min := rects[0].Min()
	max := rects[0].Max()
	for _, r := range rects[1:] {
		rMin, rMax := r.Min(), r.Max()
		if rMin.X < min.X {
			min.X = rMin.X
		}
		if rMin.Y < min.Y {
			min.Y = rMin.Y
		}
		if rMax.X > max.X {
			max.X = rMax.X
		}
		if rMax.Y > max.Y {
			max.Y = rMax.Y
		}
	}
	return Rectangle{
		Origin: min,
		Size:   Size{Width: max.X - min.X, Height: max.Y - min.Y},
	}
}

// WordCount is a word with its number of occurrences in the source text.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Tag is a word placed in the cloud.
type Tag struct {
	Word     string    `json:"word"`
	Count    int       `json:"count"`
	FontSize float64   `json:"font_size"` // points, after scaling
	Rect     Rectangle `json:"rect"`
}
