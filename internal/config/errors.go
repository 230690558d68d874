package config

import (
	"fmt"
	"strings"
)

// ParseError reports a syntactically invalid profile document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a profile file that exists but could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading config file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnknownFieldError reports keys in a profile document that the
// configuration schema does not define. Rejecting them catches typos early
// instead of silently ignoring them.
type UnknownFieldError struct {
	Path string
	Keys []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("config file %s contains unknown keys: %s", e.Path, strings.Join(e.Keys, ", "))
}

// CycleError reports a profile that includes itself, directly or through a
// chain of other profiles.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("profile inclusion cycle: %s", strings.Join(e.Chain, " -> "))
}
