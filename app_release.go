package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/buildfile"
	"github.com/relctl/relctl/service/config"
	"github.com/relctl/relctl/service/output"
	"github.com/relctl/relctl/service/release"
	"github.com/relctl/relctl/service/runner"
	"github.com/relctl/relctl/service/storage"
	ver "github.com/relctl/relctl/service/version"
	"github.com/relctl/relctl/shared/banner"
	"github.com/relctl/relctl/shared/spinner"
	"golang.org/x/term"
)

func runRelease(flags model.Flags, cfg config.Config, versionInfo model.VersionInfo) error {
	toolDir, err := installDir()
	if err != nil {
		return err
	}

	if !flags.DryRun && cfg.UI.Banner {
		banner.DrawBannerTitle()
	}

	files := buildfile.NewService(toolDir)
	outputService := output.NewService("table")

	if err := renderPlan(outputService, files, flags); err != nil {
		return err
	}

	var cmd runner.Service
	if flags.DryRun {
		cmd = runner.NewDryRun(os.Stdout)
	} else {
		cmd = runner.NewExec(toolDir)
	}

	interactive := !flags.DryRun && cfg.UI.Spinner && term.IsTerminal(int(os.Stdout.Fd()))
	progress := func(step string) {
		if interactive {
			spinner.UpdateStep(step)
			return
		}
		fmt.Printf("==> %s\n", step)
	}

	releaseService := release.NewService(files, cmd, progress)

	if interactive {
		spinner.StartSpinner("releasing " + flags.Version)
	}
	result, err := releaseService.DoRelease(context.Background(), model.ReleaseRequest{
		Version:  flags.Version,
		Auditors: flags.Auditors,
		DryRun:   flags.DryRun,
	})
	if interactive {
		spinner.StopSpinner()
	}
	if err != nil {
		return err
	}

	if !flags.DryRun && !cfg.History.Disabled {
		recordHistory(result, flags, cfg, versionInfo)
	}

	return outputService.RenderSummary(result)
}

// renderPlan shows the discovered build files and the computed version
// transition before any step runs.
func renderPlan(outputService output.Service, files buildfile.Service, flags model.Flags) error {
	records, err := files.Discover()
	if err != nil {
		return err
	}

	nextVersion, err := ver.Next(flags.Version)
	if err != nil {
		return err
	}

	current := ""
	if len(records) > 0 {
		current = records[0].Version
	}

	return outputService.RenderPlan(model.RenderPlanInput{
		Records:        records,
		CurrentVersion: current,
		TargetVersion:  flags.Version,
		NextVersion:    nextVersion,
		DryRun:         flags.DryRun,
	})
}

// recordHistory saves the completed release to the local history database.
// The release itself already happened, so failures here only warn.
func recordHistory(result *model.ReleaseResult, flags model.Flags, cfg config.Config, versionInfo model.VersionInfo) {
	store, err := storage.NewService(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open history db: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.SaveRelease(context.Background(), storage.SaveReleaseInput{
		Version:     result.Version,
		NextVersion: result.NextVersion,
		Auditors:    flags.Auditors,
		DurationSec: int64(result.Duration.Seconds()),
		StepCount:   len(result.Steps),
		CLIVersion:  versionInfo.Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record release history: %v\n", err)
	}
}

// installDir resolves the directory the relctl binary lives in. All external
// commands and the build file walk are anchored there, not at the caller's
// current directory.
func installDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
