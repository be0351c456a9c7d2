// Package fixtures loads the dashboard datasets from YAML files, either the
// copies embedded in the binary or a directory on disk.
package fixtures

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/nfrund/hive/internal/dashboard"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrNoFixtures is returned when a source holds no YAML files.
var ErrNoFixtures = errors.New("no fixture files found")

// Embedded returns the read-only filesystem of the built-in datasets.
func Embedded() afero.Fs {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// Dir returns a filesystem rooted at dir on the local disk.
func Dir(dir string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), dir)
}

// Source picks the on-disk directory when one is configured and the embedded
// datasets otherwise.
func Source(dir string) afero.Fs {
	if dir == "" {
		return Embedded()
	}
	return Dir(dir)
}

// Load reads every *.yaml file at the root of fsys in name order, merges them
// and validates the result. Later files replace datasets set by earlier ones.
func Load(fsys afero.Fs) (*dashboard.Set, error) {
	names, err := afero.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNoFixtures
	}

	set := &dashboard.Set{}
	for _, name := range names {
		part, err := decodeFile(fsys, name)
		if err != nil {
			return nil, err
		}
		set.Merge(part)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	return set, nil
}

func decodeFile(fsys afero.Fs, name string) (dashboard.Set, error) {
	var part dashboard.Set
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return part, fmt.Errorf("failed to read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&part); err != nil && !errors.Is(err, io.EOF) {
		return part, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return part, nil
}

func isFixtureFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".yaml")
}
