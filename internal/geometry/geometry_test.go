package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 4, Y: 6}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance should be symmetric")
	}
	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance from a point to itself should be 0, got %f", d)
	}
}

func TestLerp(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: -20}

	if p := Lerp(a, b, 0); p != a {
		t.Errorf("Lerp at t=0 should be the start, got %v", p)
	}
	if p := Lerp(a, b, 1); p != b {
		t.Errorf("Lerp at t=1 should be the end, got %v", p)
	}
	mid := Lerp(a, b, 0.5)
	if mid.X != 5 || mid.Y != -10 {
		t.Errorf("Lerp at t=0.5 should be the midpoint, got %v", mid)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	p0 := Point{X: 3, Y: 7}
	p3 := Point{X: 900, Y: 120}
	c1 := Point{X: 100, Y: 400}
	c2 := Point{X: 700, Y: -300}

	if p := CubicBezier(p0, c1, c2, p3, 0); p != p0 {
		t.Errorf("Bezier at t=0 should be p0, got %v", p)
	}
	if p := CubicBezier(p0, c1, c2, p3, 1); p != p3 {
		t.Errorf("Bezier at t=1 should be p3, got %v", p)
	}
}

func TestRandomPointInBounds(t *testing.T) {
	r := Region{X: 100, Y: 200, Width: 50, Height: 30}

	for i := 0; i < 1000; i++ {
		p := RandomPointIn(r, 0)
		if !r.Contains(p) {
			t.Fatalf("Sampled point %v outside region %v", p, r)
		}
	}
}

func TestRandomPointInInset(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}
	inner := Region{X: 20, Y: 20, Width: 60, Height: 60}

	for i := 0; i < 1000; i++ {
		p := RandomPointIn(r, 0.2)
		if !inner.Contains(p) {
			t.Fatalf("Inset sample %v escaped shrunk region %v", p, inner)
		}
	}
}

func TestRandomPointInInsetFallback(t *testing.T) {
	// An inset of 0.5 or more would invert the region; the unshrunk region
	// must be used instead.
	r := Region{X: 10, Y: 10, Width: 40, Height: 4}

	for i := 0; i < 1000; i++ {
		p := RandomPointIn(r, 0.6)
		if !r.Contains(p) {
			t.Fatalf("Fallback sample %v outside region %v", p, r)
		}
	}
}

func TestUniformRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := Uniform(-3, 9)
		if v < -3 || v >= 9 {
			t.Fatalf("Uniform sample %f outside [-3, 9)", v)
		}
	}
}

func TestVectorOps(t *testing.T) {
	a := Point{X: 5, Y: 7}
	b := Point{X: 2, Y: 3}

	if got := a.Sub(b); got != (Point{X: 3, Y: 4}) {
		t.Errorf("Expected (3, 4), got %v", got)
	}
	if got := a.Add(b); got != (Point{X: 7, Y: 10}) {
		t.Errorf("Expected (7, 10), got %v", got)
	}
	if got := b.Scale(2.5); got != (Point{X: 5, Y: 7.5}) {
		t.Errorf("Expected (5, 7.5), got %v", got)
	}
}

func TestMagnitude(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if m := p.Magnitude(); math.Abs(m-5) > 1e-12 {
		t.Errorf("Expected magnitude 5, got %f", m)
	}
}
