package output

import (
	"io"

	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/storage"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// service is the internal implementation
type service struct {
	format Format
	out    io.Writer
}

// Service defines the interface for output operations
type Service interface {
	RenderPlan(input model.RenderPlanInput) error
	RenderSummary(result *model.ReleaseResult) error
	RenderReleases(releases []storage.ReleaseSummary) error
}
