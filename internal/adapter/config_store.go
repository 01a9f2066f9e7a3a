package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/linemap/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrEmptyManifest is returned when a manifest lists no pairs.
var ErrEmptyManifest = errors.New("manifest lists no pairs")

// ConfigStore loads YAML configuration and batch manifests.
type ConfigStore interface {
	LoadConfig(path m.Path) (m.Config, error)
	LoadManifest(path m.Path) (m.Manifest, error)
}

type configStore struct{}

// NewConfigStore constructs a ConfigStore reading from disk.
func NewConfigStore() ConfigStore {
	return &configStore{}
}

// LoadConfig reads and parses a config file. An empty path yields the zero
// Config so callers fall back to defaults.
func (cs *configStore) LoadConfig(path m.Path) (m.Config, error) {
	if path == "" {
		return m.Config{}, nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (m.Config, error) {
	var cfg m.Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// LoadManifest reads a manifest and resolves relative pair paths against the
// manifest's directory.
func (cs *configStore) LoadManifest(path m.Path) (m.Manifest, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return m.Manifest{}, err
	}

	base := filepath.Dir(string(path))
	for i := range manifest.Pairs {
		manifest.Pairs[i].Old = resolve(base, manifest.Pairs[i].Old)
		manifest.Pairs[i].New = resolve(base, manifest.Pairs[i].New)
	}

	return manifest, nil
}

// ParseManifest parses YAML data into a Manifest.
func ParseManifest(data []byte) (m.Manifest, error) {
	var manifest m.Manifest

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	if len(manifest.Pairs) == 0 {
		return m.Manifest{}, ErrEmptyManifest
	}

	for i, pair := range manifest.Pairs {
		if pair.Old == "" || pair.New == "" {
			return m.Manifest{}, fmt.Errorf("manifest pair %d: old and new are required", i)
		}
	}

	return manifest, nil
}

func resolve(base string, p m.Path) m.Path {
	if filepath.IsAbs(string(p)) {
		return p
	}

	return m.Path(filepath.Join(base, string(p)))
}
