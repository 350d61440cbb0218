package config

// File represents the structure of the featvet.yaml configuration file.
type File struct {
	Settings SettingsDTO           `yaml:"settings"`
	Features map[string]FeatureDTO `yaml:"features"`
}

// SettingsDTO represents the global settings block.
type SettingsDTO struct {
	Concurrency  int    `yaml:"concurrency"`
	Clean        bool   `yaml:"clean"`
	ClearDisplay bool   `yaml:"clear_display"`
	Command      string `yaml:"command"`
	CacheFile    string `yaml:"cache_file"`
}

// FeatureDTO represents a single feature declaration.
type FeatureDTO struct {
	Strict bool `yaml:"strict"`
}
