// Package release orchestrates the full release workflow: bump the version,
// commit and tag, push, publish, then move every build file to the next
// pre-release version and push again.
//
// The workflow is strictly sequential and terminal on first failure. Nothing
// is retried or rolled back; side effects of completed steps (commits, tags,
// pushes) stay in place when a later step fails.
package release

import (
	"context"
	"fmt"
	"time"

	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/buildfile"
	"github.com/relctl/relctl/service/runner"
	"github.com/relctl/relctl/service/version"
)

const versionBumpCommitTemplate = `Auto-bump version to %s

Test plan:
- fingers crossed

Auditors: %s
`

// Service performs the release workflow.
type Service interface {
	DoRelease(ctx context.Context, req model.ReleaseRequest) (*model.ReleaseResult, error)
}

// NewService creates a release service. The progress callback is invoked with
// a short description before each step; it may be nil.
func NewService(files buildfile.Service, cmd runner.Service, progress func(step string)) Service {
	return &service{files: files, cmd: cmd, progress: progress}
}

type service struct {
	files    buildfile.Service
	cmd      runner.Service
	progress func(step string)
}

func (s *service) DoRelease(ctx context.Context, req model.ReleaseRequest) (*model.ReleaseResult, error) {
	start := time.Now()
	result := &model.ReleaseResult{Version: req.Version, DryRun: req.DryRun}

	if err := s.setVersion(result, req.Version, req.DryRun); err != nil {
		return nil, err
	}
	if err := s.commitVersionBump(ctx, result, req.Version, req.Auditors); err != nil {
		return nil, err
	}
	if err := s.makeTag(ctx, result, req.Version); err != nil {
		return nil, err
	}
	if err := s.push(ctx, result); err != nil {
		return nil, err
	}
	if err := s.publish(ctx, result); err != nil {
		return nil, err
	}

	nextVersion, err := version.Next(req.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to compute next version: %w", err)
	}
	result.NextVersion = nextVersion

	if err := s.setVersion(result, nextVersion, req.DryRun); err != nil {
		return nil, err
	}
	if err := s.commitVersionBump(ctx, result, nextVersion, req.Auditors); err != nil {
		return nil, err
	}
	if err := s.push(ctx, result); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (s *service) setVersion(result *model.ReleaseResult, v string, dryRun bool) error {
	s.step(result, fmt.Sprintf("set version %s", v))
	return s.files.SetVersion(v, dryRun)
}

// commitVersionBump stages every build file and commits with the fixed
// templated message. The file set is re-derived here rather than reused from
// the version bump.
func (s *service) commitVersionBump(ctx context.Context, result *model.ReleaseResult, v, auditors string) error {
	s.step(result, fmt.Sprintf("commit version bump to %s", v))

	records, err := s.files.Discover()
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := s.cmd.Run(ctx, []string{"git", "add", record.Path}); err != nil {
			return err
		}
	}

	message := fmt.Sprintf(versionBumpCommitTemplate, v, auditors)
	return s.cmd.Run(ctx, []string{"git", "commit", "-m", message})
}

func (s *service) makeTag(ctx context.Context, result *model.ReleaseResult, v string) error {
	s.step(result, fmt.Sprintf("tag v%s", v))
	return s.cmd.Run(ctx, []string{"git", "tag", "v" + v})
}

// push pushes commits, then tags, as two sequential operations.
func (s *service) push(ctx context.Context, result *model.ReleaseResult) error {
	s.step(result, "push")
	if err := s.cmd.Run(ctx, []string{"git", "push"}); err != nil {
		return err
	}
	return s.cmd.Run(ctx, []string{"git", "push", "--tags"})
}

func (s *service) publish(ctx context.Context, result *model.ReleaseResult) error {
	s.step(result, "publish")
	return s.cmd.Run(ctx, []string{"./gradlew", "publish"})
}

func (s *service) step(result *model.ReleaseResult, name string) {
	result.Steps = append(result.Steps, name)
	if s.progress != nil {
		s.progress(name)
	}
}
