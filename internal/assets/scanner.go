// Package assets discovers the renderable files inside a project's output
// folder: visualization images and, optionally, an interactive dashboard.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
}

// Scan enumerates the project folder (non-recursively) and returns the image
// paths sorted ascending by full path, plus the dashboard path if one exists.
// Dashboard files are any *.html whose name contains "dashboard"; when there
// is more than one, the lexicographically first match is taken so the choice
// does not depend on directory enumeration order. An absent dashboard is
// reported as an empty string, not an error. Only a missing folder is an
// error.
func Scan(folder string) (images []string, dashboard string, err error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read project folder '%s': %w", folder, err)
	}

	var dashboards []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		ext := filepath.Ext(name)
		full := filepath.Join(folder, entry.Name())
		switch {
		case imageExtensions[ext]:
			images = append(images, full)
		case ext == ".html" && strings.Contains(name, "dashboard"):
			dashboards = append(dashboards, full)
		}
	}

	sort.Strings(images)
	if len(dashboards) > 0 {
		sort.Strings(dashboards)
		dashboard = dashboards[0]
	}
	return images, dashboard, nil
}
