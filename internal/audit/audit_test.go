package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/hive/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a buffer shared with the subscription goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRecorderAndLog(t *testing.T) {
	bus := pubsub.NewWatermillBridge(false)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	require.NoError(t, Log(ctx, bus, logger))

	rec := NewRecorder(bus)
	rec.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }
	rec.Record(ctx, Event{Kind: KindSignOutFailed, UserID: "user:1", Reason: "provider unreachable"})

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "sign_out_failed")
	}, 2*time.Second, 10*time.Millisecond)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "user:1", entry["user_id"])
	assert.Equal(t, "provider unreachable", entry["reason"])
}

func TestKind_Failure(t *testing.T) {
	assert.True(t, KindAccessDenied.Failure())
	assert.True(t, KindSignInFailed.Failure())
	assert.False(t, KindSignedIn.Failure())
	assert.False(t, KindSignedOut.Failure())
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, pubsub.Message) error { return errors.New("bus closed") }
func (failingPublisher) Close() error { return nil }

func TestRecorder_PublishErrorIsSwallowed(t *testing.T) {
	assert.NotPanics(t, func() {
		NewRecorder(failingPublisher{}).Record(context.Background(), Event{Kind: KindSignedIn})
	})
	Nop{}.Record(context.Background(), Event{Kind: KindSignedIn})
}
