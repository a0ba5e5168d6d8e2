package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `{
  "title": "Config Title",
  "description": "From the config file.",
  "tech_stack": ["Go"],
  "insights": [{"value": "1", "label": "thing"}],
  "summary": "Config summary.",
  "key_insights": [],
  "technical_implementation": [],
  "business_value": {"title": "For Teams", "items": []},
  "project_links": []
}`

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefault(t *testing.T) {
	info, err := Resolve("Water Conservation Analysis", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Water Conservation Analysis", info.Title)
	assert.NotEmpty(t, info.Description)
	assert.NotEmpty(t, info.TechStack)
	assert.NotEmpty(t, info.Insights)
	assert.NotEmpty(t, info.Summary)
	assert.NotEmpty(t, info.KeyInsights)
	assert.NotEmpty(t, info.TechnicalImplementation)
	assert.NotEmpty(t, info.BusinessValue.Title)
	assert.NotEmpty(t, info.BusinessValue.Items)
	assert.NotEmpty(t, info.ProjectLinks)
	assert.Empty(t, info.VisualizationDescriptions)
}

func TestResolveConfigFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "project_config.json", minimalConfig)

	info, err := Resolve("ignored", dir)
	require.NoError(t, err)
	assert.Equal(t, "Config Title", info.Title)
	assert.Equal(t, []string{"Go"}, info.TechStack)
}

func TestResolveConfigBeatsSummary(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "project_config.json", minimalConfig)
	write(t, dir, "analysis_summary.json", `{
  "title": "Summary Title",
  "description": "From the summary file.",
  "summary": "Summary summary.",
  "business_value": {"title": "x", "items": []},
  "visualization_descriptions": {"snowpack": {"title": "t", "description": "d"}}
}`)

	info, err := Resolve("ignored", dir)
	require.NoError(t, err)
	assert.Equal(t, "Config Title", info.Title)
	// The chosen tier is used whole: optional fields missing from the config
	// stay empty instead of leaking in from the summary file.
	assert.Empty(t, info.VisualizationDescriptions)
}

func TestResolveYAMLConfig(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "project_config.yaml", `
title: YAML Title
description: From yaml.
tech_stack:
  - Go
  - Plotly
summary: Yaml summary.
business_value:
  title: For Ops
  items:
    - icon: fas fa-cogs
      title: Automation
      description: Less toil.
`)

	info, err := Resolve("ignored", dir)
	require.NoError(t, err)
	assert.Equal(t, "YAML Title", info.Title)
	assert.Equal(t, []string{"Go", "Plotly"}, info.TechStack)
	require.Len(t, info.BusinessValue.Items, 1)
	assert.Equal(t, "Automation", info.BusinessValue.Items[0].Title)
}

func TestResolveOverviewTier(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "project_overview.md", `---
title: Overview Title
tech_stack:
  - Go
---

# Overview

Solid **results** were achieved.
`)

	info, err := Resolve("Fallback Name", dir)
	require.NoError(t, err)
	assert.Equal(t, "Overview Title", info.Title)
	assert.Equal(t, []string{"Go"}, info.TechStack)
	// Untouched fields keep the default record's values.
	assert.NotEmpty(t, info.KeyInsights)
	// The markdown body becomes the rendered summary.
	assert.Contains(t, info.Summary, "<strong>results</strong>")
}

func TestResolveMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "project_config.json", `{"title": "broken"`)

	_, err := Resolve("ignored", dir)
	require.Error(t, err)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Path, "project_config.json")
}

func TestResolveMissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "analysis_summary.json", `{
  "title": "Has Title",
  "description": "Has description.",
  "business_value": {"title": "x", "items": []}
}`)

	_, err := Resolve("ignored", dir)
	require.Error(t, err)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "summary", schemaErr.Field)
	assert.Contains(t, err.Error(), "analysis_summary.json")
}
