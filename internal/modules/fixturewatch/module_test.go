package fixturewatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nfrund/hive/internal/modules/fixturewatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeWatcher struct {
	started atomic.Bool
	err     error
}

func (f *fakeWatcher) Watch(ctx context.Context, dir string) error {
	f.started.Store(true)
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	return nil
}

func TestModule_RunsUntilShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := &fakeWatcher{}
	m := fixturewatch.New(fixturewatch.Dependencies{Store: w, Dir: t.TempDir()})

	require.NoError(t, m.Boot(context.Background(), nil, nil))
	require.Eventually(t, w.started.Load, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, m.Shutdown(ctx))
}

func TestModule_WatcherErrorDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := &fakeWatcher{err: errors.New("no such directory")}
	m := fixturewatch.New(fixturewatch.Dependencies{Store: w, Dir: "/does/not/exist"})

	require.NoError(t, m.Boot(context.Background(), nil, nil))
	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestModule_DisabledWithoutDir(t *testing.T) {
	w := &fakeWatcher{}
	m := fixturewatch.New(fixturewatch.Dependencies{Store: w})

	require.NoError(t, m.Boot(context.Background(), nil, nil))
	assert.NoError(t, m.Shutdown(context.Background()))
	assert.False(t, w.started.Load())
}
