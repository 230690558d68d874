package engine

import (
	"slices"

	"strata/internal/config"
)

// Matches reports whether the snapshot passes the filter. A criterion with
// no entries accepts everything; one with entries accepts the snapshot when
// any entry matches.
func Matches(filter config.SnapshotFilter, sn Snapshot) bool {
	if len(filter.FilterHosts) > 0 && !slices.Contains(filter.FilterHosts, sn.Hostname) {
		return false
	}
	if len(filter.FilterPaths) > 0 && !containsAny(sn.Paths, filter.FilterPaths) {
		return false
	}
	if len(filter.FilterTags) > 0 && !containsAny(sn.Tags, filter.FilterTags) {
		return false
	}
	return true
}

func containsAny(haystack, needles []string) bool {
	for _, needle := range needles {
		if slices.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func applyFilter(snapshots []Snapshot, filter config.SnapshotFilter) []Snapshot {
	if filter.IsEmpty() {
		return snapshots
	}
	matched := snapshots[:0]
	for _, sn := range snapshots {
		if Matches(filter, sn) {
			matched = append(matched, sn)
		}
	}
	return matched
}
