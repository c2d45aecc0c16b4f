// Package buildfile reads and rewrites version declarations in Gradle build
// files. Build files are re-discovered on every operation rather than cached,
// so files added or removed between steps are picked up.
package buildfile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/version"
)

// buildFileName is the fixed file name of a Gradle Kotlin DSL build file.
const buildFileName = "build.gradle.kts"

// versionLine matches a line-anchored version declaration. The first match in
// a file wins on read; every matching line is rewritten on write.
var versionLine = regexp.MustCompile(`(?m)^version = "([^"]+)"`)

// NewService creates a build file service rooted at the given directory.
func NewService(root string) Service {
	return &service{root: root, out: os.Stdout}
}

type service struct {
	root string
	out  io.Writer
}

func (s *service) Discover() ([]model.BuildFileRecord, error) {
	var records []model.BuildFileRecord

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != buildFileName {
			return nil
		}

		declared, err := versionFromBuildFile(path)
		if err != nil {
			return err
		}
		records = append(records, model.BuildFileRecord{Path: path, Version: declared})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *service) SetVersion(newVersion string, dryRun bool) error {
	records, err := s.Discover()
	if err != nil {
		return err
	}

	distinct := distinctVersions(records)
	if len(distinct) != 1 {
		return newInconsistentVersionsError(distinct)
	}

	oldVersion := distinct[0]
	allowed, err := version.IncreaseAllowed(oldVersion, newVersion)
	if err != nil {
		return fmt.Errorf("failed to compare versions: %w", err)
	}
	if !allowed {
		return newDisallowedBumpError(oldVersion, newVersion)
	}

	// Re-derive the file set for the write pass instead of trusting the
	// enumeration used for validation.
	records, err = s.Discover()
	if err != nil {
		return err
	}

	replacement := fmt.Sprintf("version = %q", newVersion)
	for _, record := range records {
		contents, err := os.ReadFile(record.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", record.Path, err)
		}
		updated := versionLine.ReplaceAllLiteralString(string(contents), replacement)

		if dryRun {
			fmt.Fprintf(s.out, "Would set contents of %s to\n%s\n", record.Path, updated)
			continue
		}
		if err := os.WriteFile(record.Path, []byte(updated), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", record.Path, err)
		}
	}

	return nil
}

func versionFromBuildFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	match := versionLine.FindSubmatch(contents)
	if match == nil {
		return "", &ParseError{Path: path}
	}
	return string(match[1]), nil
}

func distinctVersions(records []model.BuildFileRecord) []string {
	seen := make(map[string]bool, len(records))
	var distinct []string
	for _, record := range records {
		if seen[record.Version] {
			continue
		}
		seen[record.Version] = true
		distinct = append(distinct, record.Version)
	}
	return distinct
}
