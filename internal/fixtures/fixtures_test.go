package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfrund/hive/internal/dashboard"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const accountsYAML = `
accounts:
  - {id: 1, name: main, category: adult, followers: 100, engagement: 4.0, status: good}
  - {id: 2, name: manga, category: manga, followers: 50, engagement: 2.0, status: warning}
`

const tasksYAML = `
tasks:
  - {id: 1, title: setup, priority: high, status: pending, department: pulse}
`

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestLoad_Embedded(t *testing.T) {
	set, err := Load(Embedded())
	require.NoError(t, err)

	assert.Len(t, set.Accounts, 5)
	assert.Len(t, set.Tasks, 5)
	assert.Len(t, set.Notifications, 5)
	assert.Len(t, set.OverviewKPIs, 4)
	assert.Len(t, set.Revenue, 6)
	assert.Len(t, set.Roadmaps[dashboard.DeptPulse], 4)
	for _, d := range dashboard.Departments {
		assert.NotEmpty(t, set.DepartmentKPIs[d.Key], "department %s has KPIs", d.Key)
	}

	pulse := set.Pulse(dashboard.Filter{Category: dashboard.All})
	assert.Equal(t, "3,600", pulse.KPIs[0].Value)
	assert.Equal(t, "目標: 5,000 (72%達成)", pulse.KPIs[0].Footer)
	assert.Equal(t, "4.3%", pulse.KPIs[2].Value)
}

func TestLoad_MergesFiles(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"accounts.yaml": accountsYAML,
		"tasks.yaml":    tasksYAML,
		"notes.txt":     "ignored",
	})

	set, err := Load(fsys)
	require.NoError(t, err)
	assert.Len(t, set.Accounts, 2)
	assert.Len(t, set.Tasks, 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty source",
			files: map[string]string{},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNoFixtures) },
		},
		{
			name:  "unknown field",
			files: map[string]string{"a.yaml": "acounts: []\n"},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "a.yaml") },
		},
		{
			name:  "malformed yaml",
			files: map[string]string{"a.yaml": "accounts: [\n"},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "failed to parse a.yaml") },
		},
		{
			name:  "invalid enum",
			files: map[string]string{"a.yaml": "tasks:\n  - {id: 1, priority: urgent, status: pending, department: pulse}\n"},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, `unknown priority "urgent"`) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(memFS(t, tt.files))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	fsys := memFS(t, map[string]string{"accounts.yaml": accountsYAML})
	store, err := NewStore(fsys)
	require.NoError(t, err)
	before := store.Current()

	require.NoError(t, afero.WriteFile(fsys, "accounts.yaml", []byte("accounts: [\n"), 0o644))
	assert.Error(t, store.Reload())
	assert.Same(t, before, store.Current())

	require.NoError(t, afero.WriteFile(fsys, "accounts.yaml", []byte(tasksYAML), 0o644))
	require.NoError(t, store.Reload())
	assert.NotSame(t, before, store.Current())
	assert.Len(t, store.Current().Tasks, 1)
}

func TestSource(t *testing.T) {
	_, isIOFS := Source("").(afero.FromIOFS)
	assert.True(t, isIOFS)

	_, isBase := Source(t.TempDir()).(*afero.BasePathFs)
	assert.True(t, isBase)
}

func TestStore_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(accountsYAML), 0o644))

	store, err := NewStore(Dir(dir))
	require.NoError(t, err)
	store.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, dir) }()

	updated := accountsYAML + "  - {id: 3, name: fortune, category: fortune, followers: 10, engagement: 1.0, status: good}\n"
	assert.Eventually(t, func() bool {
		// Rewrite until the watcher has registered the directory and picked it up.
		_ = os.WriteFile(path, []byte(updated), 0o644)
		return len(store.Current().Accounts) == 3
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
