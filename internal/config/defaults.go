package config

// DefaultProfile is the profile name resolved when none is selected via
// flags or the environment.
const DefaultProfile = "strata"

// Default returns the all-defaults configuration that profile resolution
// merges into. Every field is at its zero value, so anything a profile,
// environment variable or flag sets is distinguishable from the default.
func Default() Config {
	return Config{}
}
