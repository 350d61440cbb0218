// Package config provides the configuration loader for featvet.
package config

import (
	"os"
	"runtime"

	"github.com/featvet/featvet/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the configuration file at the given path.
func (l *Loader) Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if len(file.Features) == 0 {
		return nil, zerr.With(domain.ErrNoFeatures, "path", path)
	}
	if file.Settings.Concurrency < 0 {
		return nil, zerr.With(domain.ErrInvalidConcurrency, "concurrency", file.Settings.Concurrency)
	}

	settings := domain.Settings{
		Concurrency:  file.Settings.Concurrency,
		Clean:        file.Settings.Clean,
		ClearDisplay: file.Settings.ClearDisplay,
		Command:      file.Settings.Command,
		CacheFile:    file.Settings.CacheFile,
	}
	if settings.Concurrency == 0 {
		settings.Concurrency = runtime.NumCPU()
	}
	if settings.Command == "" {
		settings.Command = domain.DefaultCommand
	}
	if settings.CacheFile == "" {
		settings.CacheFile = domain.DefaultCacheFile
	}

	features := make(map[string]domain.FeatureConfig, len(file.Features))
	for name, dto := range file.Features {
		features[name] = domain.FeatureConfig{Strict: dto.Strict}
	}

	return &domain.ProjectConfig{
		Settings: settings,
		Features: features,
	}, nil
}
