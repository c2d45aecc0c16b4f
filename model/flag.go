package model

// Flags represents the command line flags for a release invocation.
type Flags struct {
	Version  string
	Auditors string
	DryRun   bool
}
