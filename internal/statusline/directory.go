package statusline

import (
	"path/filepath"
	"strings"
)

const unknownDir = "unknown"

// ResolveDirectory returns a short label for the workspace. Inside the
// project it is the path relative to project_dir; otherwise a base name.
func ResolveDirectory(ws *WorkspaceInfo) string {
	if ws == nil {
		return unknownDir
	}

	if ws.CurrentDir != "" && ws.ProjectDir != "" {
		if !strings.HasPrefix(ws.CurrentDir, ws.ProjectDir) {
			return filepath.Base(ws.CurrentDir)
		}
		rel := strings.TrimLeft(strings.TrimPrefix(ws.CurrentDir, ws.ProjectDir), "/")
		if rel == "" {
			return filepath.Base(ws.ProjectDir)
		}
		return rel
	}

	for _, dir := range []string{ws.ProjectDir, ws.Cwd, ws.CurrentDir} {
		if dir != "" {
			return filepath.Base(dir)
		}
	}
	return unknownDir
}
