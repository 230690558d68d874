package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"strata/pkg/logging"
)

// MergeLog records the decisions made while resolving profiles: which file
// was used for each profile, or which paths were probed in vain. Entries are
// buffered rather than printed because the log level itself may come out of
// the profiles being resolved; the caller flushes the log once logging is
// configured.
type MergeLog struct {
	entries []logging.LogEntry
}

func (l *MergeLog) add(level logging.LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, logging.LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Subsystem: "config",
		Message:   fmt.Sprintf(format, args...),
	})
}

// Entries returns the buffered entries in the order they were recorded.
func (l *MergeLog) Entries() []logging.LogEntry {
	return l.entries
}

// Flush emits the buffered entries through the logging package and empties
// the log.
func (l *MergeLog) Flush() {
	for _, entry := range l.entries {
		logging.Log(entry.Level, entry.Subsystem, "%s", entry.Message)
	}
	l.entries = nil
}

// MergeProfile resolves the named profile and merges it into c.
//
// The profile file is searched via CandidatePaths; the first existing file
// wins. A missing profile is not an error: it is recorded in the merge log
// at missingLevel and c is left untouched. Profiles named in the document's
// [global] use-profiles list are resolved recursively (their absence logs at
// warn) and the document is applied on top of them, so the referencing
// profile's explicit values take precedence over its includes; only then is
// the combined result merged into c.
//
// Malformed TOML, unreadable files and unknown keys abort resolution.
func (c *Config) MergeProfile(name string, log *MergeLog, missingLevel logging.LogLevel) error {
	return c.mergeProfile(name, log, missingLevel, nil)
}

func (c *Config) mergeProfile(name string, log *MergeLog, missingLevel logging.LogLevel, resolving []string) error {
	for _, ancestor := range resolving {
		if ancestor == name {
			return &CycleError{Chain: append(append([]string{}, resolving...), name)}
		}
	}

	candidates := CandidatePaths(name + profileExtension)
	var path string
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		log.add(missingLevel, "using no config file, none of these exist: %s", strings.Join(candidates, ", "))
		return nil
	}

	path = canonicalPath(path)
	log.add(logging.LevelInfo, "using config %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}

	var profile Config
	meta, err := toml.Decode(string(data), &profile)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return &UnknownFieldError{Path: path, Keys: keys}
	}

	// The included profiles resolve into their own accumulator and the
	// document is applied over them, so its explicit values beat anything
	// it pulls in. Only the combined result reaches the caller.
	resolving = append(resolving, name)
	var resolved Config
	for _, included := range profile.Global.UseProfiles {
		if err := resolved.mergeProfile(included, log, logging.LevelWarn, resolving); err != nil {
			return err
		}
	}
	resolved.applyDocument(profile)

	c.Merge(resolved)
	return nil
}

func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
