package genicon

import (
	"fmt"
	"path/filepath"

	"github.com/rbi-app/genicon/internal/fileutil"
)

// Output locations, relative to the base directory.
const (
	TargetDirName = "src-tauri"
	SVGFileName   = "app-icon.svg"
	PNGFileName   = "app-icon.png"
)

// NextStepCommand is the manual follow-up that turns the SVG into the
// platform icon set. It runs from the Tauri project, hence the bare file name.
const NextStepCommand = "pnpm tauri icon " + SVGFileName

// Paths holds the locations derived from a base directory.
type Paths struct {
	Dir string // <base>/src-tauri
	SVG string // written by Generate
	PNG string // computed only; rasterization is left to the Tauri CLI
}

// ResolvePaths derives the output locations without touching the filesystem.
func ResolvePaths(baseDir string) Paths {
	dir := filepath.Join(baseDir, TargetDirName)
	return Paths{
		Dir: dir,
		SVG: filepath.Join(dir, SVGFileName),
		PNG: filepath.Join(dir, PNGFileName),
	}
}

// Generate creates <baseDir>/src-tauri if needed and writes SVGTemplate to
// app-icon.svg, replacing any existing file. Concurrent runs against the same
// directory are not coordinated: the last writer wins.
func Generate(baseDir string) (Paths, error) {
	paths := ResolvePaths(baseDir)

	if err := fileutil.EnsureDir(paths.Dir); err != nil {
		return Paths{}, fmt.Errorf("%w: %w", ErrCreateDir, err)
	}

	if err := fileutil.WriteFile(paths.SVG, []byte(SVGTemplate)); err != nil {
		return Paths{}, fmt.Errorf("%w: %w", ErrWriteIcon, err)
	}

	return paths, nil
}

// ReportLines returns the status lines printed after a successful run.
func ReportLines(p Paths) []string {
	return []string{
		"Generated SVG icon at: " + p.SVG,
		"Run: " + NextStepCommand,
	}
}
