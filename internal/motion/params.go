package motion

// Params holds every tunable of the trajectory generator. The defaults are
// empirically tuned; anything that affects how detectable the motion is can
// be overridden from configuration rather than recompiled.
type Params struct {
	// Step count scaling: steps = clamp(distance*StepsPerPixel, MinSteps, MaxSteps).
	// MinSteps keeps short moves from looking teleported, MaxSteps bounds the
	// work done for cross-screen moves.
	MinSteps      int     `yaml:"minSteps"`
	MaxSteps      int     `yaml:"maxSteps"`
	StepsPerPixel float64 `yaml:"stepsPerPixel"`

	// CurvatureScale controls how far the Bézier control points are pushed
	// perpendicular to the straight line, as a fraction of move distance.
	CurvatureScale float64 `yaml:"curvatureScale"`

	// JitterAmplitude is the maximum per-point positional noise in pixels.
	// Jitter tapers to zero at both endpoints so chained paths stay continuous.
	JitterAmplitude float64 `yaml:"jitterAmplitude"`

	// Overshoot is a large-motion phenomenon: moves longer than
	// OvershootThreshold (px) first land up to OvershootRadius away from the
	// target and then run a finer corrective path whose jitter is bounded by
	// OvershootSpread.
	OvershootThreshold float64 `yaml:"overshootThreshold"`
	OvershootRadius    float64 `yaml:"overshootRadius"`
	OvershootSpread    float64 `yaml:"overshootSpread"`

	// TargetInset shrinks element regions before picking a click point, so
	// clicks never land on edge pixels. Fraction of each dimension, per side.
	TargetInset float64 `yaml:"targetInset"`
}

// DefaultParams returns the tuned defaults. OvershootThreshold/Radius/Spread
// follow the values observed in real user traces (500/120/10).
func DefaultParams() Params {
	return Params{
		MinSteps:           12,
		MaxSteps:           120,
		StepsPerPixel:      0.12,
		CurvatureScale:     0.18,
		JitterAmplitude:    1.6,
		OvershootThreshold: 500,
		OvershootRadius:    120,
		OvershootSpread:    10,
		TargetInset:        0.15,
	}
}

// sanitize fills zero values with defaults so a partially populated YAML
// block still yields a usable generator.
func (p Params) sanitize() Params {
	def := DefaultParams()
	if p.MinSteps <= 0 {
		p.MinSteps = def.MinSteps
	}
	if p.MaxSteps < p.MinSteps {
		p.MaxSteps = def.MaxSteps
		if p.MaxSteps < p.MinSteps {
			p.MaxSteps = p.MinSteps
		}
	}
	if p.StepsPerPixel <= 0 {
		p.StepsPerPixel = def.StepsPerPixel
	}
	if p.CurvatureScale < 0 {
		p.CurvatureScale = def.CurvatureScale
	}
	if p.JitterAmplitude < 0 {
		p.JitterAmplitude = def.JitterAmplitude
	}
	if p.OvershootThreshold <= 0 {
		p.OvershootThreshold = def.OvershootThreshold
	}
	if p.OvershootRadius <= 0 {
		p.OvershootRadius = def.OvershootRadius
	}
	if p.OvershootSpread <= 0 {
		p.OvershootSpread = def.OvershootSpread
	}
	if p.TargetInset < 0 || p.TargetInset >= 0.5 {
		p.TargetInset = def.TargetInset
	}
	return p
}
