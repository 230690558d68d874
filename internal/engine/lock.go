package engine

import (
	"strings"

	"github.com/spf13/pflag"

	"strata/internal/config"
)

// LockOptions configures how snapshot protection is extended.
type LockOptions struct {
	// AlwaysExtend extends locks even when they already last longer than
	// the requested duration.
	AlwaysExtend bool
	Duration     LockDuration
}

// LockDuration is either "forever" or a time span like "10d".
type LockDuration struct {
	Forever bool
	Span    config.Duration
}

var _ pflag.Value = (*LockDuration)(nil)

// Forever returns the unbounded lock duration.
func Forever() LockDuration {
	return LockDuration{Forever: true}
}

func (d LockDuration) String() string {
	if d.Forever {
		return "forever"
	}
	return d.Span.String()
}

// Set implements pflag.Value.
func (d *LockDuration) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "forever") {
		*d = LockDuration{Forever: true}
		return nil
	}
	var span config.Duration
	if err := span.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	*d = LockDuration{Span: span}
	return nil
}

// Type implements pflag.Value.
func (d LockDuration) Type() string {
	return "duration"
}
