// Package spinner wraps the CLI loading spinner used during release steps.
package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner with an initial step label.
func StartSpinner(step string) {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + step
	loader.Start()
}

// UpdateStep changes the spinner label to the current release step.
func UpdateStep(step string) {
	if loader != nil {
		loader.Suffix = " " + step
	}
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
	}
}
