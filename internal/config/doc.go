// Package config implements strata's profile-based configuration system.
//
// Configuration lives in TOML documents called profiles. A profile is looked
// up by name in a fixed list of directories, parsed strictly (unknown keys
// are an error), and merged into a single accumulating Config value. Profiles
// compose: the [global] use-profiles list names further profiles that are
// resolved recursively before the referencing profile itself is applied.
//
// # Profile Locations
//
// For a profile named "home", the following paths are probed in order and
// the first existing file wins:
//
//  1. <user config dir>/strata/home.toml
//     - os.UserConfigDir, e.g. ~/.config/strata on Linux
//  2. the system-wide configuration directory
//     - /etc/strata on Unix-likes
//     - %PROGRAMDATA%\strata\config on Windows
//     - none on ios, js and wasip1
//  3. ./home.toml in the current working directory
//
// A missing profile is not an error. The probe result is recorded in a
// MergeLog that the caller flushes once logging is configured; a missing
// top-level profile logs at info, a missing included profile at warn.
//
// # Merge Rules
//
// Two Config values are combined field by field; every field follows exactly
// one of the policies defined in merge.go. Broadly: booleans stick once
// true, optional scalars take the value merged last, use-profiles
// accumulates, and maps union with incoming keys winning. Command and
// filter lists depend on where the merge happens: within one profile chain
// the referencing profile's non-empty value beats the profiles it includes,
// while across separately resolved profiles the first value set is kept and
// never cleared by an empty one.
//
// # Precedence Beyond Profiles
//
// After resolution the command layer overlays STRATA_* environment variables
// and then explicitly-set CLI flags, giving the usual flags > environment >
// profiles > defaults layering.
//
// # Usage Example
//
//	cfg := config.Default()
//	var log config.MergeLog
//	if err := cfg.MergeProfile("home", &log, logging.LevelInfo); err != nil {
//	    return err
//	}
//	log.Flush()
package config
