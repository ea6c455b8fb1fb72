package motion

import (
	"math"
	"math/rand"

	"ghostcursor/internal/geometry"
)

// Generator produces human-plausible pointer trajectories: curved,
// speed-varying, never bit-identical between runs. It is pure computation,
// no call on it can fail for finite input.
type Generator struct {
	params Params
}

func NewGenerator(params Params) *Generator {
	return &Generator{params: params.sanitize()}
}

func (g *Generator) Params() Params {
	return g.params
}

// GeneratePath returns the ordered sequence of intermediate points from
// start to end. The first element is exactly start and the last exactly end,
// so chained calls compose without discontinuity. A zero-length move yields
// the single-point path [start].
func (g *Generator) GeneratePath(start, end geometry.Point) []geometry.Point {
	return g.generate(start, end, g.params.CurvatureScale, g.params.JitterAmplitude)
}

// ShouldOvershoot reports whether a human would overshoot this move.
// Overshoot is a large-motion phenomenon; short moves are never overshot.
func (g *Generator) ShouldOvershoot(start, end geometry.Point) bool {
	return geometry.Distance(start, end) > g.params.OvershootThreshold
}

// OvershootPoint returns where an imprecise hand would first land: displaced
// from end by a random magnitude up to radius in a random direction. The
// magnitude is kept above a quarter of the radius so the miss is visible
// enough to warrant the corrective motion that follows.
func (g *Generator) OvershootPoint(end geometry.Point, radius float64) geometry.Point {
	angle := geometry.Uniform(0, 2*math.Pi)
	mag := geometry.Uniform(radius/4, radius)
	return geometry.Point{
		X: end.X + math.Cos(angle)*mag,
		Y: end.Y + math.Sin(angle)*mag,
	}
}

// CorrectionPath builds the short secondary motion from an overshoot point
// back to a freshly sampled point inside the target region. Corrections are
// finer-grained than the initial sweep: curvature is halved and jitter is
// bounded by the spread parameter.
func (g *Generator) CorrectionPath(from geometry.Point, target geometry.Region, spread float64) []geometry.Point {
	dest := geometry.RandomPointIn(target, g.params.TargetInset)
	jitter := g.params.JitterAmplitude
	if limit := spread * 0.1; jitter > limit {
		jitter = limit
	}
	return g.generate(from, dest, g.params.CurvatureScale/2, jitter)
}

func (g *Generator) generate(start, end geometry.Point, curvature, jitter float64) []geometry.Point {
	chord := end.Sub(start)
	dist := chord.Magnitude()
	if dist == 0 {
		return []geometry.Point{start}
	}

	steps := int(dist * g.params.StepsPerPixel)
	if steps < g.params.MinSteps {
		steps = g.params.MinSteps
	}
	if steps > g.params.MaxSteps {
		steps = g.params.MaxSteps
	}

	// Unit normal to the chord. Control points sit at 1/3 and 2/3 of the
	// straight line, pushed sideways proportionally to the distance with a
	// random sign, which bows the curve the way a wrist arc does.
	normal := geometry.Point{X: -chord.Y / dist, Y: chord.X / dist}
	sign := 1.0
	if rand.Float64() < 0.5 {
		sign = -1.0
	}
	amp1 := sign * dist * curvature * geometry.Uniform(0.5, 1.0)
	amp2 := sign * dist * curvature * geometry.Uniform(0.25, 0.75)

	c1 := geometry.Lerp(start, end, 1.0/3.0).Add(normal.Scale(amp1))
	c2 := geometry.Lerp(start, end, 2.0/3.0).Add(normal.Scale(amp2))

	path := make([]geometry.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geometry.CubicBezier(start, c1, c2, end, t)

		// Jitter fades to zero at both endpoints: sin(pi*t) peaks mid-path.
		if i > 0 && i < steps && jitter > 0 {
			taper := math.Sin(math.Pi * t)
			p.X += geometry.Uniform(-jitter, jitter) * taper
			p.Y += geometry.Uniform(-jitter, jitter) * taper
		}
		path = append(path, p)
	}

	// Endpoints are exact regardless of float accumulation in the blend.
	path[0] = start
	path[steps] = end
	return path
}
