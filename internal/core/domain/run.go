package domain

import "time"

// Run statuses recorded in history.
const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// ScanRun is the history record of one scan.
type ScanRun struct {
	ID         string
	Repo       string
	StartedAt  time.Time
	FinishedAt time.Time
	Categories []Category
	Findings   int
	Status     string
}
