// Package version implements the ordering policy for dotted version strings.
//
// Versions are dotted sequences of non-negative integers, optionally carrying
// a pre-release suffix such as "-pre3". The suffix marks an unreleased state
// and is ignored when ordering: "0.2.0-pre3" and "0.2.0" share the same
// ordered tuple. Plain lexicographic string comparison is wrong here because
// versions like 0.1.10 sort before 0.1.9.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

const preSuffixMarker = "-pre"

// Tuple returns the numeric components of a version string, with any
// pre-release suffix stripped.
func Tuple(version string) ([]int, error) {
	core := version
	if i := strings.Index(core, preSuffixMarker); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	tuple := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: component %q is not an integer", version, part)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid version %q: component %q is negative", version, part)
		}
		tuple = append(tuple, n)
	}

	return tuple, nil
}

// Compare orders two tuples lexicographically. A tuple that is a strict
// prefix of another sorts first.
func Compare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// IsPreRelease reports whether the version carries a pre-release suffix.
func IsPreRelease(version string) bool {
	return strings.Contains(version, preSuffixMarker)
}

// IncreaseAllowed reports whether moving from oldVersion to newVersion is a
// permitted bump. Finalizing a pre-release to the same numeric version is
// allowed; re-releasing an already-released version is not.
func IncreaseAllowed(oldVersion, newVersion string) (bool, error) {
	oldTuple, err := Tuple(oldVersion)
	if err != nil {
		return false, err
	}
	newTuple, err := Tuple(newVersion)
	if err != nil {
		return false, err
	}

	if IsPreRelease(oldVersion) {
		return Compare(oldTuple, newTuple) <= 0, nil
	}
	return Compare(oldTuple, newTuple) < 0, nil
}

// Next computes the follow-up development version: the last numeric component
// is incremented and the result is marked "-pre1".
func Next(version string) (string, error) {
	tuple, err := Tuple(version)
	if err != nil {
		return "", err
	}
	if len(tuple) == 0 {
		return "", fmt.Errorf("invalid version %q: no numeric components", version)
	}

	tuple[len(tuple)-1]++

	parts := make([]string, len(tuple))
	for i, n := range tuple {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".") + preSuffixMarker + "1", nil
}
