// Package flag parses the release command line.
package flag

import (
	"fmt"

	"github.com/relctl/relctl/model"
	"github.com/spf13/pflag"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses the release invocation: a positional target version,
// required --auditors, and an optional --dry-run toggle.
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	fs := pflag.NewFlagSet("relctl", pflag.ContinueOnError)
	auditors := fs.StringP("auditors", "a", "",
		"The auditors for the version bump commit, exactly as you would write them in the commit message (required)")
	dryRun := fs.BoolP("dry-run", "n", false,
		"Print the commands instead of running them")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return model.Flags{}, fmt.Errorf("usage: relctl [--auditors ...] [--dry-run] <version>")
	}
	if *auditors == "" {
		return model.Flags{}, fmt.Errorf("--auditors is required")
	}

	flags := model.Flags{
		Version:  rest[0],
		Auditors: *auditors,
		DryRun:   *dryRun,
	}

	return flags, nil
}
