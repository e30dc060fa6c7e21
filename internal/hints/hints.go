// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/rbi-app/genicon/internal/fileutil"
)

// ForGenerate returns a hint matching the filesystem error behind a failed run.
func ForGenerate(err error, targetDir string) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return format("check that " + fileutil.NearestExisting(targetDir) + " is writable, or pass --base-dir")
	case errors.Is(err, fileutil.ErrNotDirectory):
		return format("remove or rename the file at " + targetDir)
	case errors.Is(err, fs.ErrNotExist):
		return format("check that the base directory path is spelled correctly")
	}
	return ""
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/genicon/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "genicon") && strings.ContainsAny(p, "/\\") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingTool returns a hint for an executable that is not on PATH.
func ForMissingTool(name string) string {
	if name == "pnpm" {
		return format("install pnpm (npm install -g pnpm) to run the icon conversion step")
	}
	return format("install " + name + " and make sure it is on PATH")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
