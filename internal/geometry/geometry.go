package geometry

import (
	"math"
	"math/rand"
)

// Point is an immutable 2D coordinate. All cursor math works in float64
// CSS pixels; rounding (if any) happens at the dispatch boundary.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Magnitude returns the Euclidean length of p treated as a vector.
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Region is an axis-aligned rectangle, typically an element bounding box
// or the viewport. Width and Height are always >= 0.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether p lies inside r, borders included.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp linearly interpolates between a and b. t=0 yields a, t=1 yields b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// CubicBezier evaluates the cubic Bézier curve defined by p0, the control
// points c1 and c2, and p3, at parameter t in [0, 1].
func CubicBezier(p0, c1, c2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// Uniform returns a uniform sample from [lo, hi).
func Uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

// RandomPointIn samples a point uniformly inside r. When inset > 0 each side
// of the region is shrunk by inset*dimension before sampling, which keeps
// clicks away from an element's edge pixels. If the requested inset would
// invert the region the unshrunk region is used instead.
func RandomPointIn(r Region, inset float64) Point {
	x, w := r.X, r.Width
	y, h := r.Y, r.Height
	if inset > 0 {
		ix := r.Width * inset
		iy := r.Height * inset
		if r.Width-2*ix > 0 && r.Height-2*iy > 0 {
			x, w = r.X+ix, r.Width-2*ix
			y, h = r.Y+iy, r.Height-2*iy
		}
	}
	return Point{
		X: x + rand.Float64()*w,
		Y: y + rand.Float64()*h,
	}
}
