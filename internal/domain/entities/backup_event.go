package entities

import "time"

// BackupEventKind tags entries in the backup event log.
type BackupEventKind string

const (
	BackupEventSync    BackupEventKind = "sync"
	BackupEventRestore BackupEventKind = "restore"
)

// BackupEvent is one entry in the capped backup/restore audit log. The log is
// stored under its own key, oldest entries discarded first once the cap is
// reached.
type BackupEvent struct {
	At     time.Time       `json:"at"`
	Kind   BackupEventKind `json:"kind"`
	Pulled int             `json:"pulled"`
	Pushed int             `json:"pushed"`
	Note   string          `json:"note,omitempty"`
}
