package config

// Defaults for configuration values.
const (
	DefaultManifestPath = "target/manifest.json"
	DefaultOutput       = "auto"
	DefaultTrackingPath = ".dbtcheck/events.db"
)

// Config holds the resolved dbtcheck configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
type Config struct {
	// ProjectRoot is the inferred dbt project root; relative paths in
	// the config resolve against it.
	ProjectRoot string `koanf:"-"`

	ManifestPath string `koanf:"manifest"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`

	Tracking TrackingConfig `koanf:"tracking"`

	// Checks holds per-hook options keyed by registered hook name.
	Checks map[string]CheckOptions `koanf:"checks"`
}

// TrackingConfig configures the local hook event store.
type TrackingConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// CheckOptions is the free-form option map of a single hook.
type CheckOptions map[string]any

// CheckIgnore returns the "ignore" option of a hook as a string list.
// Missing or malformed entries are dropped.
func (c *Config) CheckIgnore(hookName string) []string {
	if c == nil || c.Checks == nil {
		return nil
	}
	opts, ok := c.Checks[hookName]
	if !ok {
		return nil
	}
	raw, ok := opts["ignore"]
	if !ok {
		return nil
	}

	var names []string
	switch v := raw.(type) {
	case []string:
		names = append(names, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
	}
	return names
}
