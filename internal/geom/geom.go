// Package geom provides the minimal floating-point geometry used by the
// gesture and callout packages: points, button frames, and the
// tolerance-expanded hit rectangles used for release detection.
package geom

// Point represents a position in a keyboard's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the point translated by the negation of other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal returns true if two points are equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Rect represents a rectangle as an origin plus a size.
// A button frame is a Rect in the keyboard's coordinate space.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// IsZero returns true if the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// MinX returns the smallest x coordinate inside the rectangle.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the largest x coordinate inside the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the smallest y coordinate inside the rectangle.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the largest y coordinate inside the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Origin returns the rectangle's origin point.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive, so a point exactly on a boundary counts
// as inside. Release-tolerance checks depend on the inclusive behavior.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Expanded returns the rectangle grown on every side by the given
// fraction of its own size in that dimension. Expanded(0.75) on a
// 40x40 rectangle extends each edge outward by 30.
func (r Rect) Expanded(fraction float64) Rect {
	dx := r.W * fraction
	dy := r.H * fraction
	return Rect{
		X: r.X - dx,
		Y: r.Y - dy,
		W: r.W + 2*dx,
		H: r.H + 2*dy,
	}
}
