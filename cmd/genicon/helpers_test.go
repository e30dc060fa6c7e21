package main

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"
	"time"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment rooted at wd with captured output,
// a fixed clock and a PATH that contains only the given tools.
func newTestEnv(t *testing.T, wd string, tools ...string) *testEnv {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return fixed },
			Stdout: stdout,
			Stderr: stderr,
			Getwd:  func() (string, error) { return wd, nil },
			LookPath: func(file string) (string, error) {
				for _, tool := range tools {
					if tool == file {
						return "/usr/local/bin/" + file, nil
					}
				}
				return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// failingGetwd is an Environment.Getwd that always fails.
func failingGetwd() (string, error) {
	return "", errors.New("getwd: no such directory")
}
