package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slug converts a project name into its output file stem: lowercased, with
// spaces replaced by hyphens.
func Slug(projectName string) string {
	return strings.ReplaceAll(strings.ToLower(projectName), " ", "-")
}

// Write persists the composed document to <outputDir>/<slug>-project.html,
// creating the output directory if needed and overwriting any previous
// output unconditionally. The document arrives fully composed, so a failed
// write never leaves a partial page behind a successful run's path.
func Write(outputDir, projectName, document string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}
	outputPath := filepath.Join(outputDir, Slug(projectName)+"-project.html")
	if err := os.WriteFile(outputPath, []byte(document), 0o644); err != nil {
		return "", fmt.Errorf("failed to write project page '%s': %w", outputPath, err)
	}
	return outputPath, nil
}
