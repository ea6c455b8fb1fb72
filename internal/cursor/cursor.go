// Package cursor orchestrates human-plausible pointer motion over a surface.
// A Cursor owns the current pointer position and a suppression flag that
// arbitrates between explicit operations and the background idle-jitter loop.
package cursor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ghostcursor/internal/event"
	"ghostcursor/internal/geometry"
	"ghostcursor/internal/motion"
	"ghostcursor/internal/surface"
	"ghostcursor/internal/utils"
)

const (
	defaultHoldMin   = 35 * time.Millisecond
	defaultHoldMax   = 110 * time.Millisecond
	defaultSettleMax = 2 * time.Second
)

type Cursor struct {
	surf    surface.Surface
	gen     *motion.Generator
	logger  *slog.Logger
	emitter event.Emitter

	// moving is the suppression flag: true while an explicit operation is in
	// flight. The idle loop checks it before and during every trace and
	// yields the instant it flips.
	moving atomic.Bool

	// position is the last successfully dispatched point. It is only written
	// through setPosition, by whichever single motion sequence currently
	// holds the cursor.
	posMu    sync.Mutex
	position geometry.Point

	stepDelayMs int
	holdMin     time.Duration
	holdMax     time.Duration
	settleMax   time.Duration
}

type Option func(*Cursor)

// WithStart sets the initial pointer position. Defaults to the origin.
func WithStart(p geometry.Point) Option {
	return func(c *Cursor) { c.position = p }
}

// WithEmitter wires cursor telemetry into an event listener.
func WithEmitter(e event.Emitter) Option {
	return func(c *Cursor) { c.emitter = e }
}

// WithStepDelay adds a randomized pause of roughly ms milliseconds between
// dispatched points. Zero disables pacing (the transport round-trip is the
// pacing, as with CDP over a real network).
func WithStepDelay(ms int) Option {
	return func(c *Cursor) { c.stepDelayMs = ms }
}

// WithClickTiming overrides the press-hold window and the post-click settle
// pause ceiling.
func WithClickTiming(holdMin, holdMax, settleMax time.Duration) Option {
	return func(c *Cursor) {
		c.holdMin = holdMin
		c.holdMax = holdMax
		c.settleMax = settleMax
	}
}

func New(surf surface.Surface, gen *motion.Generator, logger *slog.Logger, opts ...Option) *Cursor {
	c := &Cursor{
		surf:      surf,
		gen:       gen,
		logger:    logger,
		holdMin:   defaultHoldMin,
		holdMax:   defaultHoldMax,
		settleMax: defaultSettleMax,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Position returns the last successfully dispatched pointer location.
func (c *Cursor) Position() geometry.Point {
	c.posMu.Lock()
	defer c.posMu.Unlock()
	return c.position
}

func (c *Cursor) setPosition(p geometry.Point) {
	c.posMu.Lock()
	c.position = p
	c.posMu.Unlock()
}

// suppress claims the cursor for an explicit operation and returns the
// release function. The flag flips before any asynchronous work begins and
// the release runs on every exit path.
func (c *Cursor) suppress() func() {
	c.moving.Store(true)
	return func() { c.moving.Store(false) }
}

// MoveTo traces a path from the current position to dest.
func (c *Cursor) MoveTo(ctx context.Context, dest geometry.Point) error {
	defer c.suppress()()

	from := c.Position()
	path := c.gen.GeneratePath(from, dest)
	if err := c.Trace(ctx, path, false); err != nil {
		return err
	}
	c.emit(event.MotionCompleted(event.Text("move completed"), from, dest, len(path), false))
	return nil
}

// Move resolves the element named by descriptor, picks a random point inside
// its box and traces there, overshooting and correcting when the move is long
// enough that a human would. padding overrides the configured target inset
// when > 0.
func (c *Cursor) Move(ctx context.Context, descriptor string, padding float64) error {
	defer c.suppress()()
	_, err := c.moveToTarget(ctx, descriptor, padding)
	return err
}

// moveToTarget performs the resolve/overshoot/trace sequence and returns the
// final pointer location. The caller must already hold the suppression flag.
func (c *Cursor) moveToTarget(ctx context.Context, descriptor string, padding float64) (geometry.Point, error) {
	if err := c.surf.ScrollIntoView(ctx, descriptor); err != nil {
		// Best-effort: a target that refuses to scroll may still be visible.
		c.logger.Debug("scroll into view failed", slog.String("target", descriptor), slog.Any("error", err))
	}
	region, err := c.surf.ResolveTarget(ctx, descriptor)
	if err != nil {
		return c.Position(), fmt.Errorf("move to %q: %w", descriptor, err)
	}

	inset := c.gen.Params().TargetInset
	if padding > 0 {
		inset = padding
	}
	dest := geometry.RandomPointIn(region, inset)
	from := c.Position()

	overshooting := c.gen.ShouldOvershoot(from, dest)
	steps := 0
	if overshooting {
		over := c.gen.OvershootPoint(dest, c.gen.Params().OvershootRadius)
		main := c.gen.GeneratePath(from, over)
		if err := c.Trace(ctx, main, false); err != nil {
			return c.Position(), err
		}
		correction := c.gen.CorrectionPath(over, region, c.gen.Params().OvershootSpread)
		if err := c.Trace(ctx, correction, false); err != nil {
			return c.Position(), err
		}
		steps = len(main) + len(correction)
	} else {
		path := c.gen.GeneratePath(from, dest)
		if err := c.Trace(ctx, path, false); err != nil {
			return c.Position(), err
		}
		steps = len(path)
	}

	final := c.Position()
	c.emit(event.MotionCompleted(event.Text("move completed"), from, final, steps, overshooting))
	return final, nil
}

// Click moves to descriptor (when non-empty) and performs a press/hold/release,
// or a single tap on touch-capable surfaces, with randomized timing. A short
// randomized settle pause runs before the cursor returns to idle.
func (c *Cursor) Click(ctx context.Context, descriptor string) error {
	release := c.suppress()
	defer release()

	at := c.Position()
	if descriptor != "" {
		var err error
		at, err = c.moveToTarget(ctx, descriptor, 0)
		if err != nil {
			return err
		}
	}

	touch, err := c.surf.TouchCapable(ctx)
	if err != nil {
		c.logger.Debug("touch capability probe failed, assuming mouse", slog.Any("error", err))
		touch = false
	}

	if touch {
		if err := c.surf.DispatchTap(ctx, at); err != nil {
			if !c.surf.Connected() {
				return surface.ErrDisconnected
			}
			c.logger.Debug("could not tap", slog.Any("error", err))
		}
	} else {
		if err := c.pressRelease(ctx); err != nil {
			return err
		}
	}

	c.emit(event.ClickCompleted(event.Text("click completed"), descriptor, at, touch))

	// Humans pause briefly after clicking before doing anything else.
	settle := utils.RandDurationBetween(0, c.settleMax)
	if err := utils.Wait(ctx, settle); err != nil {
		return err
	}
	return nil
}

func (c *Cursor) pressRelease(ctx context.Context) error {
	if err := c.surf.DispatchDown(ctx); err != nil {
		if !c.surf.Connected() {
			return surface.ErrDisconnected
		}
		c.logger.Debug("could not press button", slog.Any("error", err))
		return nil
	}
	hold := utils.RandDurationBetween(c.holdMin, c.holdMax)
	if err := utils.Wait(ctx, hold); err != nil {
		// The button is down; best effort to release before bailing out.
		_ = c.surf.DispatchUp(context.WithoutCancel(ctx))
		return err
	}
	if err := c.surf.DispatchUp(ctx); err != nil {
		if !c.surf.Connected() {
			return surface.ErrDisconnected
		}
		c.logger.Debug("could not release button", slog.Any("error", err))
	}
	return nil
}

// Trace streams each point of path through the surface in order, updating the
// cursor position after every successfully dispatched point. With abortOnMove
// set, the trace stops early without error as soon as an explicit operation
// claims the cursor; this is how a foreground move interrupts an idle-jitter
// trace. A transient dispatch failure truncates the sequence (logged, nil
// return); a confirmed-dead surface aborts with ErrDisconnected.
func (c *Cursor) Trace(ctx context.Context, path []geometry.Point, abortOnMove bool) error {
	for _, p := range path {
		if abortOnMove && c.moving.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.surf.DispatchMove(ctx, p); err != nil {
			if !c.surf.Connected() {
				return surface.ErrDisconnected
			}
			c.logger.Debug("could not move pointer", slog.Any("error", err))
			return nil
		}
		c.setPosition(p)
		if c.stepDelayMs > 0 {
			if err := utils.Sleep(ctx, c.stepDelayMs); err != nil {
				return err
			}
		}
	}
	return nil
}

// StartIdleJitter launches the cosmetic background loop: at randomized
// intervals, while no explicit operation is running, it traces a path to a
// random viewport point. The loop is cancellable through ctx and exits
// silently on any failure; it is best-effort behaviour, never a crash source.
func (c *Cursor) StartIdleJitter(ctx context.Context, minInterval, maxInterval time.Duration) {
	go func() {
		reason := "cancelled"
		defer func() {
			c.emit(event.IdleJitterStopped(event.Text("idle jitter stopped"), reason))
		}()

		timer := time.NewTimer(idleInterval(minInterval, maxInterval))
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if !c.moving.Load() {
				if err := c.idleStep(ctx); err != nil {
					if !errors.Is(err, context.Canceled) {
						reason = err.Error()
						c.logger.Debug("stopping idle mouse movements", slog.Any("error", err))
					}
					return
				}
			}

			timer.Reset(idleInterval(minInterval, maxInterval))
		}
	}()
}

// idleInterval samples the gap until the next idle movement from a log-normal
// distribution centred on the window: right-skewed, matching empirical human
// idle-time data, clamped to [min, max] so configuration stays authoritative.
func idleInterval(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	meanMs := float64(min+max) / 2 / float64(time.Millisecond)
	stdMs := float64(max-min) / 4 / float64(time.Millisecond)
	d := time.Duration(utils.RandLogNormal(meanMs, stdMs)) * time.Millisecond
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

func (c *Cursor) idleStep(ctx context.Context) error {
	viewport, err := c.surf.Viewport(ctx)
	if err != nil {
		return err
	}
	dest := geometry.RandomPointIn(viewport, 0)
	return c.Trace(ctx, c.gen.GeneratePath(c.Position(), dest), true)
}

func (c *Cursor) emit(e event.Event) {
	if c.emitter != nil {
		c.emitter.Emit(e)
	}
}
