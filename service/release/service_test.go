package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/buildfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures every command instead of executing it.
type recordingRunner struct {
	commands [][]string
	failOn   string // fail when the joined command has this prefix
}

func (r *recordingRunner) Run(_ context.Context, argv []string) error {
	joined := strings.Join(argv, " ")
	if r.failOn != "" && strings.HasPrefix(joined, r.failOn) {
		return fmt.Errorf("command %q failed: exit status 1", joined)
	}
	r.commands = append(r.commands, argv)
	return nil
}

func newRepoDir(t *testing.T, current string) string {
	t.Helper()
	dir := t.TempDir()
	for _, sub := range []string{"", "core"} {
		target := filepath.Join(dir, sub)
		require.NoError(t, os.MkdirAll(target, 0o755))
		contents := fmt.Sprintf("group = %q\nversion = %q\n", "com.example", current)
		require.NoError(t, os.WriteFile(filepath.Join(target, "build.gradle.kts"), []byte(contents), 0o644))
	}
	return dir
}

func TestDoReleasePerformsStepsInOrder(t *testing.T) {
	dir := newRepoDir(t, "0.1.9")
	files := buildfile.NewService(dir)
	cmd := &recordingRunner{}

	var steps []string
	svc := NewService(files, cmd, func(step string) { steps = append(steps, step) })

	result, err := svc.DoRelease(context.Background(), model.ReleaseRequest{
		Version:  "0.1.10",
		Auditors: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.1.10", result.Version)
	assert.Equal(t, "0.1.11-pre1", result.NextVersion)

	// Two build files: add x2, commit, tag, push x2, publish, add x2,
	// commit, push x2.
	var joined []string
	for _, argv := range cmd.commands {
		joined = append(joined, strings.Join(argv[:min(len(argv), 3)], " "))
	}
	want := []string{
		"git add " + filepath.Join(dir, "build.gradle.kts"),
		"git add " + filepath.Join(dir, "core", "build.gradle.kts"),
		"git commit -m",
		"git tag v0.1.10",
		"git push",
		"git push --tags",
		"./gradlew publish",
		"git add " + filepath.Join(dir, "build.gradle.kts"),
		"git add " + filepath.Join(dir, "core", "build.gradle.kts"),
		"git commit -m",
		"git push",
		"git push --tags",
	}
	assert.Equal(t, want, joined)

	// Build files end at the -pre1 follow-up version.
	records, err := files.Discover()
	require.NoError(t, err)
	for _, record := range records {
		assert.Equal(t, "0.1.11-pre1", record.Version)
	}

	assert.Equal(t, steps, result.Steps)
	assert.Len(t, result.Steps, 8)
}

func TestDoReleaseCommitMessageTemplate(t *testing.T) {
	dir := newRepoDir(t, "0.1.9")
	cmd := &recordingRunner{}
	svc := NewService(buildfile.NewService(dir), cmd, nil)

	_, err := svc.DoRelease(context.Background(), model.ReleaseRequest{
		Version:  "0.1.10",
		Auditors: "alice, bob",
	})
	require.NoError(t, err)

	var messages []string
	for _, argv := range cmd.commands {
		if len(argv) == 4 && argv[1] == "commit" {
			messages = append(messages, argv[3])
		}
	}
	require.Len(t, messages, 2)
	assert.Equal(t, "Auto-bump version to 0.1.10\n\nTest plan:\n- fingers crossed\n\nAuditors: alice, bob\n", messages[0])
	assert.Equal(t, "Auto-bump version to 0.1.11-pre1\n\nTest plan:\n- fingers crossed\n\nAuditors: alice, bob\n", messages[1])
}

func TestDoReleaseRejectsNonIncrease(t *testing.T) {
	dir := newRepoDir(t, "0.1.10")
	cmd := &recordingRunner{}
	svc := NewService(buildfile.NewService(dir), cmd, nil)

	_, err := svc.DoRelease(context.Background(), model.ReleaseRequest{Version: "0.1.10", Auditors: "alice"})
	var invalidErr *buildfile.InvalidVersionError
	require.True(t, errors.As(err, &invalidErr), "expected InvalidVersionError, got %v", err)
	assert.Empty(t, cmd.commands, "no commands may run after a rejected bump")
}

func TestDoReleaseFinalizesPreRelease(t *testing.T) {
	dir := newRepoDir(t, "0.2.0-pre3")
	svc := NewService(buildfile.NewService(dir), &recordingRunner{}, nil)

	result, err := svc.DoRelease(context.Background(), model.ReleaseRequest{Version: "0.2.0", Auditors: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "0.2.1-pre1", result.NextVersion)
}

func TestDoReleaseAbortsOnCommandFailure(t *testing.T) {
	dir := newRepoDir(t, "0.1.9")
	files := buildfile.NewService(dir)
	cmd := &recordingRunner{failOn: "./gradlew publish"}
	svc := NewService(files, cmd, nil)

	_, err := svc.DoRelease(context.Background(), model.ReleaseRequest{Version: "0.1.10", Auditors: "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "./gradlew publish")

	// Prior side effects stay: build files keep the released version, and
	// the follow-up pre-version bump never ran.
	records, err := files.Discover()
	require.NoError(t, err)
	for _, record := range records {
		assert.Equal(t, "0.1.10", record.Version)
	}
}
