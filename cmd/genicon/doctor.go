package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/rbi-app/genicon"
	"github.com/rbi-app/genicon/internal/fileutil"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Target   targetInfo `json:"target"`
	Tool     toolInfo   `json:"icon_tool"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// targetInfo describes where the icon would be written.
type targetInfo struct {
	BaseDir     string `json:"base_dir"`
	Dir         string `json:"dir"`
	SVG         string `json:"svg"`
	DirExists   bool   `json:"dir_exists"`
	Writable    bool   `json:"writable"`
	IconPresent bool   `json:"icon_present"`
}

// toolInfo holds detection results for the follow-up conversion tool.
type toolInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// systemInfo holds platform details.
type systemInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad usage.
func runDoctorCmd(args []string, env *Environment) int {
	flags, positional, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if isHelpRequest(err) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "%v: unexpected argument %q\n", ErrUsage, positional[0])
		return ExitUsage
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	baseDir, err := resolveBaseDir(cfg.BaseDir, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}

	result := runDoctor(baseDir, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(baseDir string, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		System: systemInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkTarget(result, baseDir)
	checkTool(result, env)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkTarget verifies the icon can be written without writing it.
func checkTarget(result *doctorResult, baseDir string) {
	paths := genicon.ResolvePaths(baseDir)
	result.Target.BaseDir = baseDir
	result.Target.Dir = paths.Dir
	result.Target.SVG = paths.SVG

	probeDir := paths.Dir
	switch {
	case fileutil.DirExists(paths.Dir):
		result.Target.DirExists = true
	case fileutil.FileExists(paths.Dir):
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s exists and is not a directory", paths.Dir))
		return
	default:
		probeDir = fileutil.NearestExisting(paths.Dir)
		if !fileutil.DirExists(probeDir) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s is not a directory", probeDir))
			return
		}
	}

	if err := fileutil.ProbeWritable(probeDir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s is not writable: %v", probeDir, err))
		return
	}
	result.Target.Writable = true

	if fileutil.FileExists(paths.SVG) {
		result.Target.IconPresent = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s exists and will be overwritten", paths.SVG))
	} else if fileutil.DirExists(paths.SVG) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s is a directory", paths.SVG))
	}
}

// checkTool looks up pnpm, which runs the follow-up icon conversion.
func checkTool(result *doctorResult, env *Environment) {
	result.Tool.Name = "pnpm"
	path, err := env.LookPath(result.Tool.Name)
	if err != nil {
		result.Warnings = append(result.Warnings,
			"pnpm not found on PATH; '"+genicon.NextStepCommand+"' will not run")
		return
	}
	result.Tool.Found = true
	result.Tool.Path = path
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "genicon doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Target")
	fmt.Fprintf(w, "  [OK] Base directory: %s\n", r.Target.BaseDir)
	if r.Target.DirExists {
		fmt.Fprintf(w, "  [OK] %s: exists\n", r.Target.Dir)
	} else {
		fmt.Fprintf(w, "  [OK] %s: will be created\n", r.Target.Dir)
	}
	if r.Target.Writable {
		fmt.Fprintln(w, "  [OK] Writable: yes")
	} else {
		fmt.Fprintln(w, "  [ERROR] Writable: no")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Icon tool")
	if r.Tool.Found {
		fmt.Fprintf(w, "  [OK] %s found at %s\n", r.Tool.Name, r.Tool.Path)
	} else {
		fmt.Fprintf(w, "  [WARN] %s not found\n", r.Tool.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
