package settings

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"ravio/pkg/game/failure"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// Presets lists the embedded preset names.
func Presets() []string {
	entries, err := fs.ReadDir(presetFS, "presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load returns the settings for a preset. A name ending in .yaml or .yml is
// read from disk; anything else must be an embedded preset. An empty name
// yields Default.
func Load(name string) (*Settings, error) {
	if name == "" {
		return Default(), nil
	}

	if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", name, err)
		}
		return Parse(data, strings.TrimSuffix(filepath.Base(name), ext))
	}

	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, failure.Configuration("unknown preset %q (available: %s)", name, strings.Join(Presets(), ", "))
	}
	if err != nil {
		return nil, err
	}
	return Parse(data, name)
}

// Parse decodes a YAML preset on top of Default and validates it. Unknown
// fields are rejected.
func Parse(data []byte, name string) (*Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, failure.Configuration("preset %s: %v", name, err)
	}
	s.Preset = name
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return s, nil
}
