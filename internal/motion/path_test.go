package motion

import (
	"math/rand"
	"testing"

	"ghostcursor/internal/geometry"
)

func TestGeneratePathEndpointsExact(t *testing.T) {
	gen := NewGenerator(DefaultParams())

	for i := 0; i < 100; i++ {
		start := geometry.Point{X: rand.Float64() * 3000, Y: rand.Float64() * 2000}
		end := geometry.Point{X: rand.Float64() * 3000, Y: rand.Float64() * 2000}

		path := gen.GeneratePath(start, end)
		if len(path) == 0 {
			t.Fatalf("Empty path for %v -> %v", start, end)
		}
		if path[0] != start {
			t.Errorf("Path should start at %v, got %v", start, path[0])
		}
		if path[len(path)-1] != end {
			t.Errorf("Path should end at %v, got %v", end, path[len(path)-1])
		}
	}
}

func TestGeneratePathDegenerate(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	p := geometry.Point{X: 42, Y: 17}

	path := gen.GeneratePath(p, p)
	if len(path) != 1 || path[0] != p {
		t.Errorf("Zero-length move should yield the single-point path [%v], got %v", p, path)
	}
}

func TestGeneratePathStepBounds(t *testing.T) {
	params := DefaultParams()
	gen := NewGenerator(params)

	// A very short move still gets the minimum number of steps.
	short := gen.GeneratePath(geometry.Point{}, geometry.Point{X: 3, Y: 4})
	if got := len(short) - 1; got < params.MinSteps {
		t.Errorf("Short move got %d steps, want at least %d", got, params.MinSteps)
	}

	// A cross-screen move is capped.
	long := gen.GeneratePath(geometry.Point{}, geometry.Point{X: 9000, Y: 9000})
	if got := len(long) - 1; got > params.MaxSteps {
		t.Errorf("Long move got %d steps, want at most %d", got, params.MaxSteps)
	}
}

func TestGeneratePathApproachesDestination(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	start := geometry.Point{X: 0, Y: 0}
	end := geometry.Point{X: 500, Y: 500}

	path := gen.GeneratePath(start, end)
	if got := len(path) - 1; got < gen.Params().MinSteps {
		t.Fatalf("Expected at least %d steps, got %d", gen.Params().MinSteps, got)
	}

	// Distance to the destination shrinks monotonically, modulo jitter.
	const slack = 4.0
	prev := geometry.Distance(path[0], end)
	for i, p := range path[1:] {
		d := geometry.Distance(p, end)
		if d > prev+slack {
			t.Fatalf("Point %d moves away from destination: %f -> %f", i+1, prev, d)
		}
		prev = d
	}
}

func TestPathsAreNotIdentical(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	start := geometry.Point{X: 10, Y: 10}
	end := geometry.Point{X: 800, Y: 300}

	a := gen.GeneratePath(start, end)
	b := gen.GeneratePath(start, end)
	if len(a) != len(b) {
		return
	}
	for i := range a {
		if a[i] != b[i] {
			return
		}
	}
	t.Errorf("Two paths for identical inputs are bit-identical")
}

func TestShouldOvershoot(t *testing.T) {
	params := DefaultParams()
	params.OvershootThreshold = 500
	gen := NewGenerator(params)

	start := geometry.Point{X: 0, Y: 0}
	if gen.ShouldOvershoot(start, geometry.Point{X: 300, Y: 0}) {
		t.Errorf("Short move should not overshoot")
	}
	if !gen.ShouldOvershoot(start, geometry.Point{X: 2000, Y: 2000}) {
		t.Errorf("Long move should overshoot")
	}
}

func TestOvershootPoint(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	end := geometry.Point{X: 1000, Y: 700}
	const radius = 120.0

	for i := 0; i < 200; i++ {
		p := gen.OvershootPoint(end, radius)
		d := geometry.Distance(p, end)
		if d > radius {
			t.Fatalf("Overshoot point %v is %f away, beyond radius %f", p, d, radius)
		}
		if d == 0 {
			t.Fatalf("Overshoot point should not land exactly on the target")
		}
	}
}

func TestCorrectionPathEndsInsideRegion(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	target := geometry.Region{X: 1950, Y: 1960, Width: 100, Height: 80}
	from := geometry.Point{X: 2080, Y: 1900}

	for i := 0; i < 100; i++ {
		path := gen.CorrectionPath(from, target, gen.Params().OvershootSpread)
		if path[0] != from {
			t.Errorf("Correction should start at the overshoot point %v, got %v", from, path[0])
		}
		last := path[len(path)-1]
		if !target.Contains(last) {
			t.Fatalf("Correction ends at %v, outside target %v", last, target)
		}
	}
}

func TestCompositeOvershootMotion(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	start := geometry.Point{X: 0, Y: 0}
	target := geometry.Region{X: 1950, Y: 1960, Width: 100, Height: 80}
	dest := geometry.RandomPointIn(target, 0)

	if !gen.ShouldOvershoot(start, dest) {
		t.Fatalf("A 2800px move should trigger an overshoot")
	}

	over := gen.OvershootPoint(dest, gen.Params().OvershootRadius)
	main := gen.GeneratePath(start, over)

	// The first sub-path ends near, but not exactly at, the destination.
	landing := main[len(main)-1]
	if landing == dest {
		t.Errorf("First sub-path should miss the destination")
	}
	if d := geometry.Distance(landing, dest); d > gen.Params().OvershootRadius {
		t.Errorf("Overshoot landed %f away, beyond the configured radius", d)
	}

	correction := gen.CorrectionPath(over, target, gen.Params().OvershootSpread)
	if last := correction[len(correction)-1]; !target.Contains(last) {
		t.Errorf("Correction ends at %v, outside target %v", last, target)
	}
}

func TestSanitizeFillsZeroValues(t *testing.T) {
	gen := NewGenerator(Params{})
	p := gen.Params()
	def := DefaultParams()

	if p.MinSteps != def.MinSteps || p.MaxSteps != def.MaxSteps {
		t.Errorf("Zero step bounds should fall back to defaults, got %+v", p)
	}
	if p.OvershootThreshold != def.OvershootThreshold {
		t.Errorf("Zero threshold should fall back to %f, got %f", def.OvershootThreshold, p.OvershootThreshold)
	}
}
