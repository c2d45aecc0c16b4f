package buildfile

import (
	"fmt"
	"strings"

	"github.com/relctl/relctl/model"
)

// Service locates and rewrites version declarations in build files.
type Service interface {
	Discover() ([]model.BuildFileRecord, error)
	SetVersion(version string, dryRun bool) error
}

// ParseError indicates a build file with no recognizable version line.
type ParseError struct {
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not find a version in %s", e.Path)
}

// InvalidVersionError indicates inconsistent versions across build files or a
// requested version that violates the monotonic-increase policy.
type InvalidVersionError struct {
	Reason string
}

func (e *InvalidVersionError) Error() string {
	return e.Reason
}

func newInconsistentVersionsError(versions []string) *InvalidVersionError {
	return &InvalidVersionError{
		Reason: fmt.Sprintf("found inconsistent versions in build files: [%s]", strings.Join(versions, " ")),
	}
}

func newDisallowedBumpError(oldVersion, newVersion string) *InvalidVersionError {
	return &InvalidVersionError{
		Reason: fmt.Sprintf("changing versions from %s to %s not allowed", oldVersion, newVersion),
	}
}
