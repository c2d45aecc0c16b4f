package model

import "time"

// ReleaseRequest describes a single release run. It is built once from the
// CLI flags and never modified afterwards.
type ReleaseRequest struct {
	Version  string
	Auditors string
	DryRun   bool
}

// BuildFileRecord pairs a build file path with the version it declares.
type BuildFileRecord struct {
	Path    string
	Version string
}

// ReleaseResult summarizes a completed release run.
type ReleaseResult struct {
	Version     string
	NextVersion string
	Steps       []string
	Duration    time.Duration
	DryRun      bool
}

// RenderPlanInput is the payload for rendering the pre-release plan.
type RenderPlanInput struct {
	Records        []BuildFileRecord
	CurrentVersion string
	TargetVersion  string
	NextVersion    string
	DryRun         bool
}
