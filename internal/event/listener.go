package event

import (
	"context"
	"log/slog"
)

type Handler func(ctx context.Context, e Event) error

// Emitter is what components publish through. The Listener implements it;
// a nil Emitter is valid and drops everything.
type Emitter interface {
	Emit(e Event)
}

// Listener fans published events out to registered handlers on its own
// goroutine, so publishing from a motion sequence never blocks a trace.
type Listener struct {
	logger   *slog.Logger
	handlers []Handler
	ch       chan Event
}

func NewListener(logger *slog.Logger) *Listener {
	return &Listener{
		logger: logger,
		ch:     make(chan Event, 64),
	}
}

// Register adds a handler. Not safe to call after Listen has started.
func (l *Listener) Register(h Handler) {
	l.handlers = append(l.handlers, h)
}

// Emit publishes an event. When the buffer is full the event is dropped
// rather than stalling the publisher; telemetry is best effort.
func (l *Listener) Emit(e Event) {
	select {
	case l.ch <- e:
	default:
		l.logger.Debug("event buffer full, dropping event", slog.String("id", e.ID()))
	}
}

// Listen dispatches events until ctx is cancelled.
func (l *Listener) Listen(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-l.ch:
			for _, h := range l.handlers {
				if err := h(ctx, e); err != nil {
					l.logger.Error("error running event handler", slog.Any("error", err))
				}
			}
		}
	}
}
