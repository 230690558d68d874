package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// GroupBy selects the snapshot attributes snapshots are grouped under when
// listing. The zero value groups nothing.
type GroupBy struct {
	Host  bool `json:"host"`
	Paths bool `json:"paths"`
	Tags  bool `json:"tags"`
}

var _ pflag.Value = (*GroupBy)(nil)

// IsEmpty reports whether no grouping criterion is active.
func (g GroupBy) IsEmpty() bool {
	return !g.Host && !g.Paths && !g.Tags
}

func (g GroupBy) String() string {
	var parts []string
	if g.Host {
		parts = append(parts, "host")
	}
	if g.Paths {
		parts = append(parts, "paths")
	}
	if g.Tags {
		parts = append(parts, "tags")
	}
	return strings.Join(parts, ",")
}

// Set implements pflag.Value, parsing a comma-separated criteria list like
// "host,paths". An empty string disables grouping.
func (g *GroupBy) Set(s string) error {
	parsed := GroupBy{}
	for _, criterion := range strings.Split(s, ",") {
		switch strings.TrimSpace(criterion) {
		case "host":
			parsed.Host = true
		case "paths":
			parsed.Paths = true
		case "tags":
			parsed.Tags = true
		case "":
		default:
			return fmt.Errorf("unknown grouping criterion %q (expected host, paths or tags)", criterion)
		}
	}
	*g = parsed
	return nil
}

// Type implements pflag.Value.
func (g GroupBy) Type() string {
	return "criteria"
}

// GroupKey identifies one group of snapshots. Inactive criteria stay empty.
type GroupKey struct {
	Host  string `json:"host,omitempty"`
	Paths string `json:"paths,omitempty"`
	Tags  string `json:"tags,omitempty"`
}

// SnapshotGroup is one group of snapshots, ordered by time.
type SnapshotGroup struct {
	GroupBy   GroupBy    `json:"group_by"`
	Key       GroupKey   `json:"key"`
	Snapshots []Snapshot `json:"snapshots"`
}

// Title renders the group heading, e.g. "(host [web1], paths [/home])".
func (g SnapshotGroup) Title() string {
	var parts []string
	if g.GroupBy.Host {
		parts = append(parts, fmt.Sprintf("host [%s]", g.Key.Host))
	}
	if g.GroupBy.Paths {
		parts = append(parts, fmt.Sprintf("paths [%s]", g.Key.Paths))
	}
	if g.GroupBy.Tags {
		parts = append(parts, fmt.Sprintf("tags [%s]", g.Key.Tags))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Group partitions snapshots by the active criteria. Groups come out in a
// stable order sorted by key, snapshots within a group by time.
func Group(snapshots []Snapshot, criteria GroupBy) []SnapshotGroup {
	if criteria.IsEmpty() {
		sorted := append([]Snapshot(nil), snapshots...)
		sortByTime(sorted)
		return []SnapshotGroup{{GroupBy: criteria, Snapshots: sorted}}
	}

	byKey := make(map[GroupKey][]Snapshot)
	for _, sn := range snapshots {
		key := GroupKey{}
		if criteria.Host {
			key.Host = sn.Hostname
		}
		if criteria.Paths {
			key.Paths = strings.Join(sn.Paths, ",")
		}
		if criteria.Tags {
			key.Tags = strings.Join(sn.Tags, ",")
		}
		byKey[key] = append(byKey[key], sn)
	}

	keys := make([]GroupKey, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Host != keys[j].Host {
			return keys[i].Host < keys[j].Host
		}
		if keys[i].Paths != keys[j].Paths {
			return keys[i].Paths < keys[j].Paths
		}
		return keys[i].Tags < keys[j].Tags
	})

	groups := make([]SnapshotGroup, 0, len(keys))
	for _, key := range keys {
		members := byKey[key]
		sortByTime(members)
		groups = append(groups, SnapshotGroup{GroupBy: criteria, Key: key, Snapshots: members})
	}
	return groups
}
