package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "hive v"+version+"\n", out)
}

func TestFixturesCheck_Embedded(t *testing.T) {
	out, err := run(t, "fixtures", "check")

	require.NoError(t, err)
	assert.Contains(t, out, "DATASET")
	assert.Regexp(t, `accounts\s+5\n`, out)
}

func TestFixturesCheck_InvalidDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("tasks: [\n"), 0o644))

	_, err := run(t, "fixtures", "check", dir)

	assert.ErrorContains(t, err, "invalid fixtures")
}

func TestProfileLookup_RequiresLoginID(t *testing.T) {
	_, err := run(t, "profile", "lookup")

	assert.Error(t, err)
}
