package engine

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"
)

// Snapshot mirrors the engine's JSON snapshot representation.
type Snapshot struct {
	ID             string           `json:"id"`
	ShortID        string           `json:"short_id,omitempty"`
	Time           time.Time        `json:"time"`
	Parent         string           `json:"parent,omitempty"`
	Tree           string           `json:"tree,omitempty"`
	Hostname       string           `json:"hostname"`
	Username       string           `json:"username,omitempty"`
	Paths          []string         `json:"paths"`
	Tags           []string         `json:"tags,omitempty"`
	ProgramVersion string           `json:"program_version,omitempty"`
	Summary        *SnapshotSummary `json:"summary,omitempty"`
}

// SnapshotSummary carries the per-backup statistics newer engines attach to
// each snapshot. Older repositories simply do not have it.
type SnapshotSummary struct {
	FilesNew            int64     `json:"files_new"`
	FilesChanged        int64     `json:"files_changed"`
	FilesUnmodified     int64     `json:"files_unmodified"`
	DirsNew             int64     `json:"dirs_new"`
	DirsChanged         int64     `json:"dirs_changed"`
	DirsUnmodified      int64     `json:"dirs_unmodified"`
	TotalFilesProcessed int64     `json:"total_files_processed"`
	TotalBytesProcessed uint64    `json:"total_bytes_processed"`
	DataAdded           uint64    `json:"data_added"`
	BackupStart         time.Time `json:"backup_start,omitzero"`
	BackupEnd           time.Time `json:"backup_end,omitzero"`
}

// DisplayID returns the identifier shown to users: the engine's short id,
// or a truncated full id when the engine did not provide one.
func (s Snapshot) DisplayID() string {
	if s.ShortID != "" {
		return s.ShortID
	}
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

// TotalFiles returns the number of files the backup saw.
func (s SnapshotSummary) TotalFiles() int64 {
	return s.FilesNew + s.FilesChanged + s.FilesUnmodified
}

// TotalDirs returns the number of directories the backup saw.
func (s SnapshotSummary) TotalDirs() int64 {
	return s.DirsNew + s.DirsChanged + s.DirsUnmodified
}

func decodeSnapshots(data []byte) ([]Snapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var snapshots []Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func sortByTime(snapshots []Snapshot) {
	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Time.Before(snapshots[j].Time)
	})
}
