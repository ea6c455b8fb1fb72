package surface

import (
	"context"
	"errors"
	"fmt"

	"ghostcursor/internal/geometry"
)

// ErrDisconnected reports that the underlying surface (browser page) is
// confirmed gone. It is fatal for the in-flight operation; background loops
// simply stop when they see it.
var ErrDisconnected = errors.New("surface disconnected")

// ResolutionError means a target descriptor could not be resolved to a
// region. It indicates a caller logic error (wrong selector, element not
// waited for), so it is surfaced instead of swallowed.
type ResolutionError struct {
	Descriptor string
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve target %q: %v", e.Descriptor, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// TransportError means a single pointer-dispatch call failed. It is
// environmental flakiness: recovered locally by logging and truncating the
// step sequence, never propagated to the caller.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pointer dispatch %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Surface is the collaborator boundary between the motion core and whatever
// renders the pointer (a browser page in practice). The cursor controller
// only ever talks to this interface.
type Surface interface {
	// ResolveTarget returns the bounding box of the element named by
	// descriptor, or a *ResolutionError when it cannot be found.
	ResolveTarget(ctx context.Context, descriptor string) (geometry.Region, error)

	// ScrollIntoView brings the element into the viewport. Best-effort.
	ScrollIntoView(ctx context.Context, descriptor string) error

	// Viewport returns the visible page region.
	Viewport(ctx context.Context) (geometry.Region, error)

	// Pointer event primitives. Any of them may fail with a *TransportError.
	DispatchMove(ctx context.Context, p geometry.Point) error
	DispatchDown(ctx context.Context) error
	DispatchUp(ctx context.Context) error
	DispatchTap(ctx context.Context, p geometry.Point) error

	// Connected reports whether the surface is still reachable. Used to
	// distinguish transient dispatch failures from a dead surface.
	Connected() bool

	// TouchCapable reports whether the surface prefers taps over
	// press/release clicks. Implementations may cache the first answer.
	TouchCapable(ctx context.Context) (bool, error)
}
