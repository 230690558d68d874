package config

import (
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Duration is a time.Duration that deserializes from human-friendly TOML
// strings. On top of the standard Go syntax it accepts day and week units,
// so retention windows like "10d" or "2w" work as expected.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := str2duration.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
