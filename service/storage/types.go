package storage

import (
	"context"
	"time"
)

// Service defines persistence operations for release history.
type Service interface {
	SaveRelease(ctx context.Context, input SaveReleaseInput) (int64, error)
	GetRecentReleases(limit int) ([]ReleaseSummary, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Vacuum(ctx context.Context) error
	Close() error
}

// SaveReleaseInput is the payload saved for a completed release.
type SaveReleaseInput struct {
	Version     string
	NextVersion string
	Auditors    string
	DurationSec int64
	StepCount   int
	CLIVersion  string
}

// ReleaseSummary provides compact release metadata.
type ReleaseSummary struct {
	ReleaseID   int64     `json:"release_id"`
	Version     string    `json:"version"`
	NextVersion string    `json:"next_version"`
	Auditors    string    `json:"auditors"`
	DurationSec int64     `json:"duration_sec"`
	StepCount   int       `json:"step_count"`
	CLIVersion  string    `json:"cli_version"`
	ReleasedAt  time.Time `json:"released_at"`
}
