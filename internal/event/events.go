package event

import (
	"time"

	"github.com/google/uuid"

	"ghostcursor/internal/geometry"
)

// Event is a piece of cursor telemetry. Every concrete event embeds BaseEvent.
type Event interface {
	ID() string
	OccurredAt() time.Time
	Message() string
}

type BaseEvent struct {
	id         string
	occurredAt time.Time
	message    string
}

func (b BaseEvent) ID() string {
	return b.id
}

func (b BaseEvent) OccurredAt() time.Time {
	return b.occurredAt
}

func (b BaseEvent) Message() string {
	return b.message
}

func Text(message string) BaseEvent {
	return BaseEvent{
		id:         uuid.NewString(),
		occurredAt: time.Now(),
		message:    message,
	}
}

// MotionCompletedEvent is published after an explicit move finishes tracing.
type MotionCompletedEvent struct {
	BaseEvent
	From      geometry.Point
	To        geometry.Point
	Steps     int
	Overshoot bool
}

func MotionCompleted(be BaseEvent, from, to geometry.Point, steps int, overshoot bool) MotionCompletedEvent {
	return MotionCompletedEvent{
		BaseEvent: be,
		From:      from,
		To:        to,
		Steps:     steps,
		Overshoot: overshoot,
	}
}

// ClickCompletedEvent is published after a click (or tap) lands.
type ClickCompletedEvent struct {
	BaseEvent
	Descriptor string
	At         geometry.Point
	Touch      bool
}

func ClickCompleted(be BaseEvent, descriptor string, at geometry.Point, touch bool) ClickCompletedEvent {
	return ClickCompletedEvent{
		BaseEvent:  be,
		Descriptor: descriptor,
		At:         at,
		Touch:      touch,
	}
}

// IdleJitterStoppedEvent is published when the background jitter loop exits.
type IdleJitterStoppedEvent struct {
	BaseEvent
	Reason string
}

func IdleJitterStopped(be BaseEvent, reason string) IdleJitterStoppedEvent {
	return IdleJitterStoppedEvent{BaseEvent: be, Reason: reason}
}
