package domain

// Settings holds the global run configuration.
type Settings struct {
	// Concurrency is the number of parallel check lanes. Must be positive.
	Concurrency int
	// Clean purges build artifacts before the run.
	Clean bool
	// ClearDisplay clears the terminal between phases.
	ClearDisplay bool
	// Command is the external toolchain binary validating combinations.
	Command string
	// CacheFile is the path of the persisted combination cache, relative
	// to the project root unless absolute.
	CacheFile string
}

const (
	// DefaultConfigFile is the configuration file looked up when no
	// path is given.
	DefaultConfigFile = "featvet.yaml"
	// DefaultCommand is the toolchain invoked when none is configured.
	DefaultCommand = "cargo"
	// DefaultCacheFile is the cache location when none is configured.
	DefaultCacheFile = "featvet.cache"
	// DefaultManifest is the manifest file name resolved against the
	// project root when no override is given.
	DefaultManifest = "Cargo.toml"
)

// ProjectConfig is the validated content of a configuration file.
type ProjectConfig struct {
	Settings Settings
	Features map[string]FeatureConfig
}

// Project is the fully assembled subject of a run: where it lives, how
// to validate it, and the feature universe with its dependency shape.
type Project struct {
	Root         string
	ManifestPath string
	Settings     Settings
	Universe     Universe
	Dependencies DependencyMap
	Fingerprint  uint64
}
