// Package audit publishes authentication outcomes on the event bus and logs them.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/hive/internal/middleware"
	"github.com/nfrund/hive/internal/pubsub"
)

// Kind names what happened.
type Kind string

const (
	KindSignedIn      Kind = "signed_in"
	KindSignInFailed  Kind = "sign_in_failed"
	KindSignedUp      Kind = "signed_up"
	KindSignUpFailed  Kind = "sign_up_failed"
	KindSignedOut     Kind = "signed_out"
	KindSignOutFailed Kind = "sign_out_failed"
	KindAccessDenied  Kind = "access_denied"
)

// Failure reports whether the kind describes something that went wrong.
func (k Kind) Failure() bool {
	switch k {
	case KindSignInFailed, KindSignUpFailed, KindSignOutFailed, KindAccessDenied:
		return true
	}
	return false
}

// Event is the payload carried on the AuthEvents topic.
type Event struct {
	Kind       Kind      `json:"kind"`
	UserID     string    `json:"user_id,omitempty"`
	Identifier string    `json:"identifier,omitempty"`
	Path       string    `json:"path,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	At         time.Time `json:"at"`
}

// AuthEvents is the topic every authentication outcome is published on.
var AuthEvents = pubsub.NewEvent[Event]("audit.auth")

// Recorder accepts audit events. Recording never fails the caller.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// BusRecorder publishes events on a pubsub.Publisher.
type BusRecorder struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewRecorder creates a BusRecorder.
func NewRecorder(pub pubsub.Publisher) *BusRecorder {
	return &BusRecorder{pub: pub, now: time.Now}
}

// Record stamps and publishes ev; a publish error is only logged.
func (r *BusRecorder) Record(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = r.now().UTC()
	}
	if err := pubsub.Publish(ctx, r.pub, AuthEvents, ev.UserID, ev); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish audit event", "kind", ev.Kind, "error", err)
	}
}

// Log subscribes to AuthEvents and writes each event to logger. Failures are
// logged at WARN, everything else at INFO.
func Log(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	return pubsub.Subscribe(ctx, sub, AuthEvents, func(ctx context.Context, ev Event) error {
		level := slog.LevelInfo
		if ev.Kind.Failure() {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "audit",
			slog.String("kind", string(ev.Kind)),
			slog.String("user_id", ev.UserID),
			slog.String("identifier", ev.Identifier),
			slog.String("path", ev.Path),
			slog.String("reason", ev.Reason),
			slog.Time("at", ev.At),
		)
		return nil
	})
}
