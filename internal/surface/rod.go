package surface

import (
	"context"
	"errors"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"ghostcursor/internal/geometry"
)

// touchProbeJS mirrors the user-agent/touch-point heuristics browsers expose:
// a surface is touch-capable when touch events exist or the UA advertises a
// mobile platform.
const touchProbeJS = `() => {
	const ua = navigator.userAgent;
	const mobileUA = /Mobi|Android|iPhone|iPad|iPod/i.test(ua);
	const hasTouch = 'ontouchstart' in window || navigator.maxTouchPoints > 0;
	return mobileUA || hasTouch;
}`

// Rod implements Surface on top of a go-rod page via raw CDP Input events,
// bypassing rod's own mouse so every dispatched coordinate is exactly the
// one the motion core produced.
type Rod struct {
	browser *rod.Browser
	page    *rod.Page

	touchMu sync.Mutex
	touch   *bool
}

func NewRod(browser *rod.Browser, page *rod.Page) *Rod {
	return &Rod{browser: browser, page: page}
}

func (s *Rod) ResolveTarget(ctx context.Context, descriptor string) (geometry.Region, error) {
	el, err := s.page.Context(ctx).Element(descriptor)
	if err != nil {
		return geometry.Region{}, &ResolutionError{Descriptor: descriptor, Err: err}
	}
	shape, err := el.Shape()
	if err != nil {
		return geometry.Region{}, &ResolutionError{Descriptor: descriptor, Err: err}
	}
	box := shape.Box()
	if box == nil {
		return geometry.Region{}, &ResolutionError{Descriptor: descriptor, Err: errors.New("element has no box")}
	}
	return geometry.Region{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}, nil
}

func (s *Rod) ScrollIntoView(ctx context.Context, descriptor string) error {
	el, err := s.page.Context(ctx).Element(descriptor)
	if err != nil {
		return &ResolutionError{Descriptor: descriptor, Err: err}
	}
	return el.ScrollIntoView()
}

func (s *Rod) Viewport(ctx context.Context) (geometry.Region, error) {
	metrics, err := proto.PageGetLayoutMetrics{}.Call(s.page.Context(ctx))
	if err != nil {
		return geometry.Region{}, &TransportError{Op: "layoutMetrics", Err: err}
	}
	vp := metrics.CSSVisualViewport
	if vp == nil {
		return geometry.Region{}, &TransportError{Op: "layoutMetrics", Err: errors.New("no visual viewport")}
	}
	return geometry.Region{X: 0, Y: 0, Width: vp.ClientWidth, Height: vp.ClientHeight}, nil
}

func (s *Rod) DispatchMove(ctx context.Context, p geometry.Point) error {
	err := proto.InputDispatchMouseEvent{
		Type: proto.InputDispatchMouseEventTypeMouseMoved,
		X:    p.X,
		Y:    p.Y,
	}.Call(s.page.Context(ctx))
	if err != nil {
		return &TransportError{Op: "move", Err: err}
	}
	return nil
}

func (s *Rod) DispatchDown(ctx context.Context) error {
	err := proto.InputDispatchMouseEvent{
		Type:       proto.InputDispatchMouseEventTypeMousePressed,
		Button:     proto.InputMouseButtonLeft,
		ClickCount: 1,
	}.Call(s.page.Context(ctx))
	if err != nil {
		return &TransportError{Op: "down", Err: err}
	}
	return nil
}

func (s *Rod) DispatchUp(ctx context.Context) error {
	err := proto.InputDispatchMouseEvent{
		Type:       proto.InputDispatchMouseEventTypeMouseReleased,
		Button:     proto.InputMouseButtonLeft,
		ClickCount: 1,
	}.Call(s.page.Context(ctx))
	if err != nil {
		return &TransportError{Op: "up", Err: err}
	}
	return nil
}

func (s *Rod) DispatchTap(ctx context.Context, p geometry.Point) error {
	page := s.page.Context(ctx)
	err := proto.InputDispatchTouchEvent{
		Type:        proto.InputDispatchTouchEventTypeTouchStart,
		TouchPoints: []*proto.InputTouchPoint{{X: p.X, Y: p.Y}},
	}.Call(page)
	if err != nil {
		return &TransportError{Op: "tap", Err: err}
	}
	err = proto.InputDispatchTouchEvent{
		Type:        proto.InputDispatchTouchEventTypeTouchEnd,
		TouchPoints: []*proto.InputTouchPoint{},
	}.Call(page)
	if err != nil {
		return &TransportError{Op: "tap", Err: err}
	}
	return nil
}

// Connected probes the browser with a cheap CDP call. A dispatch failure on
// a page whose browser still answers is transient; one on a silent browser
// means the surface is gone.
func (s *Rod) Connected() bool {
	_, err := proto.BrowserGetVersion{}.Call(s.browser)
	return err == nil
}

func (s *Rod) TouchCapable(ctx context.Context) (bool, error) {
	s.touchMu.Lock()
	defer s.touchMu.Unlock()
	if s.touch != nil {
		return *s.touch, nil
	}
	res, err := s.page.Context(ctx).Eval(touchProbeJS)
	if err != nil {
		return false, &TransportError{Op: "touchProbe", Err: err}
	}
	capable := res.Value.Bool()
	s.touch = &capable
	return capable, nil
}
