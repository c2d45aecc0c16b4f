// Package output provides a service for rendering results to the console.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/storage"
)

const timeRounding = 100 * time.Millisecond

// NewService creates a new output service with the specified format.
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{format: f, out: os.Stdout}
}

func (s *service) RenderPlan(input model.RenderPlanInput) error {
	if s.format == FormatJSON {
		return s.renderJSON(input)
	}

	mode := "release"
	if input.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(s.out, "\n📦 Release plan (%s): %s → %s, then %s\n",
		mode, input.CurrentVersion, text.FgGreen.Sprint(input.TargetVersion), input.NextVersion)

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"Build File", "Version"})
	for _, record := range input.Records {
		t.AppendRow(table.Row{record.Path, record.Version})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func (s *service) RenderSummary(result *model.ReleaseResult) error {
	if s.format == FormatJSON {
		return s.renderJSON(result)
	}

	if result.DryRun {
		fmt.Fprintf(s.out, "\nDry run complete: %d steps described, nothing executed.\n", len(result.Steps))
		return nil
	}

	fmt.Fprintf(s.out, "\n%s Released %s in %s; build files now at %s.\n",
		text.FgGreen.Sprint("✔"), result.Version, result.Duration.Round(timeRounding), result.NextVersion)
	return nil
}

func (s *service) RenderReleases(releases []storage.ReleaseSummary) error {
	if s.format == FormatJSON {
		return s.renderJSON(releases)
	}

	if len(releases) == 0 {
		fmt.Fprintln(s.out, "No releases recorded.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"ID", "Released At", "Version", "Next", "Auditors", "Steps", "Duration"})
	for _, r := range releases {
		t.AppendRow(table.Row{
			r.ReleaseID,
			r.ReleasedAt.Format("2006-01-02 15:04:05"),
			r.Version,
			r.NextVersion,
			r.Auditors,
			r.StepCount,
			fmt.Sprintf("%ds", r.DurationSec),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func (s *service) renderJSON(v any) error {
	return writeJSON(s.out, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
