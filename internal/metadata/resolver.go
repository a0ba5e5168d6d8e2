// Package metadata resolves a project's ProjectInfo through an ordered
// fallback chain of files inside the project folder, ending at a built-in
// default record. The first file that exists is used whole; there is no
// field-level merging between chain tiers.
package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v2"

	"github.com/runn3rman/runn3rman.github.io/internal/model"
)

const (
	configFileJSON = "project_config.json"
	configFileYAML = "project_config.yaml"
	summaryFile    = "analysis_summary.json"
	overviewFile   = "project_overview.md"
)

// SchemaError reports a metadata file that exists but cannot be used, either
// because it is not well-formed or because a required field is absent.
type SchemaError struct {
	Path  string
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid project metadata in %s: required field %q is missing or empty", e.Path, e.Field)
	}
	return fmt.Sprintf("invalid project metadata in %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Resolve produces the ProjectInfo for a project folder. Tiers, in order:
// project_config.json, project_config.yaml, analysis_summary.json,
// project_overview.md (sparse frontmatter overlaid on the default record),
// and finally the built-in default. A malformed or incomplete file in a
// chosen tier is a SchemaError, never a fall-through to the next tier.
func Resolve(projectName, folder string) (*model.ProjectInfo, error) {
	if path := filepath.Join(folder, configFileJSON); fileExists(path) {
		return loadJSON(path)
	}
	if path := filepath.Join(folder, configFileYAML); fileExists(path) {
		return loadYAML(path)
	}
	if path := filepath.Join(folder, summaryFile); fileExists(path) {
		return loadJSON(path)
	}
	if path := filepath.Join(folder, overviewFile); fileExists(path) {
		return loadOverview(path, projectName)
	}
	info := DefaultProjectInfo(projectName)
	return &info, nil
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

func loadJSON(path string) (*model.ProjectInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", path, err)
	}
	var info model.ProjectInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}
	if err := validate(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func loadYAML(path string) (*model.ProjectInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", path, err)
	}
	var info model.ProjectInfo
	if err := yaml.Unmarshal(raw, &info); err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}
	if err := validate(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// overviewFrontmatter mirrors the ProjectInfo schema but with pointer-ish
// zero-value semantics: only fields the author actually set override the
// default record.
type overviewFrontmatter struct {
	Title                     string                          `yaml:"title"`
	Description               string                          `yaml:"description"`
	TechStack                 []string                        `yaml:"tech_stack"`
	Insights                  []model.Insight                 `yaml:"insights"`
	Summary                   string                          `yaml:"summary"`
	KeyInsights               []model.KeyInsight              `yaml:"key_insights"`
	TechnicalImplementation   []model.TechnicalItem           `yaml:"technical_implementation"`
	BusinessValue             *model.BusinessValue            `yaml:"business_value"`
	ProjectLinks              []model.ProjectLink             `yaml:"project_links"`
	VisualizationDescriptions map[string]model.VizDescription `yaml:"visualization_descriptions"`
}

func loadOverview(path, projectName string) (*model.ProjectInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", path, err)
	}
	defer f.Close()

	var fm overviewFrontmatter
	body, err := frontmatter.Parse(f, &fm)
	if err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}

	info := DefaultProjectInfo(projectName)
	applyFrontmatter(&info, fm)

	if strings.TrimSpace(string(body)) != "" {
		summary, err := renderMarkdown(body)
		if err != nil {
			return nil, &SchemaError{Path: path, Err: err}
		}
		info.Summary = summary
	}
	return &info, nil
}

func applyFrontmatter(info *model.ProjectInfo, fm overviewFrontmatter) {
	if fm.Title != "" {
		info.Title = fm.Title
	}
	if fm.Description != "" {
		info.Description = fm.Description
	}
	if fm.TechStack != nil {
		info.TechStack = fm.TechStack
	}
	if fm.Insights != nil {
		info.Insights = fm.Insights
	}
	if fm.Summary != "" {
		info.Summary = fm.Summary
	}
	if fm.KeyInsights != nil {
		info.KeyInsights = fm.KeyInsights
	}
	if fm.TechnicalImplementation != nil {
		info.TechnicalImplementation = fm.TechnicalImplementation
	}
	if fm.BusinessValue != nil {
		info.BusinessValue = *fm.BusinessValue
	}
	if fm.ProjectLinks != nil {
		info.ProjectLinks = fm.ProjectLinks
	}
	if fm.VisualizationDescriptions != nil {
		info.VisualizationDescriptions = fm.VisualizationDescriptions
	}
}

func renderMarkdown(body []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("failed to convert overview markdown: %w", err)
	}
	return buf.String(), nil
}

// validate enforces the required scalar fields of the schema. Repeatable
// sections are allowed to be empty; they render to empty fragments.
func validate(path string, info *model.ProjectInfo) error {
	required := []struct {
		field string
		value string
	}{
		{"title", info.Title},
		{"description", info.Description},
		{"summary", info.Summary},
		{"business_value.title", info.BusinessValue.Title},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &SchemaError{Path: path, Field: r.field}
		}
	}
	return nil
}
