package utils

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// sampleGamma returns a sample from the Gamma(shape, scale) distribution using
// the Marsaglia-Tsang squeeze method. shape must be >= 1.
func sampleGamma(shape, scale float64) float64 {
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := rand.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		x2 := x * x
		u := rand.Float64()
		// Fast accept path
		if u < 1.0-0.0331*(x2*x2) {
			return d * v * scale
		}
		// Slow accept path
		if math.Log(u) < 0.5*x2+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// Sleep pauses for a duration drawn from a Gamma(4, 0.25) distribution centred
// on the requested millisecond value (mean multiplier = 1.0). This produces a
// right-skewed distribution that resembles empirical human reaction-time data
// rather than flat uniform jitter. The multiplier is clamped to [0.4, 2.5] to
// prevent pathological extremes. Returns early with ctx.Err() on cancellation.
func Sleep(ctx context.Context, milliseconds int) error {
	const shape = 4.0
	const scale = 0.25 // mean = shape*scale = 1.0
	multiplier := sampleGamma(shape, scale)
	if multiplier < 0.4 {
		multiplier = 0.4
	}
	if multiplier > 2.5 {
		multiplier = 2.5
	}
	return Wait(ctx, time.Duration(float64(milliseconds)*multiplier)*time.Millisecond)
}

// RandLogNormal returns a duration in milliseconds sampled from a log-normal
// distribution parameterised by the given mean and standard deviation (both in
// ms). Log-normal is right-skewed, matching empirical human idle-time data far
// better than a flat uniform range.
func RandLogNormal(meanMs, stdMs float64) int {
	variance := stdMs * stdMs
	mu := math.Log(meanMs * meanMs / math.Sqrt(variance+meanMs*meanMs))
	sigma := math.Sqrt(math.Log(1.0 + variance/(meanMs*meanMs)))
	sample := math.Exp(mu + rand.NormFloat64()*sigma)
	if sample < 1 {
		sample = 1
	}
	return int(sample)
}

// RandDurationBetween returns a uniform duration in [min, max].
func RandDurationBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// Wait blocks for d or until ctx is cancelled, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
