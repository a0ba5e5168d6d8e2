// Package generator runs the page-generation pipeline: scan assets, resolve
// metadata, key the visualizations, render the section fragments, substitute
// them into the template and write the document. One forward pass per
// invocation, no retries, no state shared across runs.
package generator

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/runn3rman/runn3rman.github.io/internal/assets"
	"github.com/runn3rman/runn3rman.github.io/internal/config"
	"github.com/runn3rman/runn3rman.github.io/internal/metadata"
	"github.com/runn3rman/runn3rman.github.io/internal/page"
	"github.com/runn3rman/runn3rman.github.io/internal/render"
	"github.com/runn3rman/runn3rman.github.io/internal/viz"
)

const (
	dashboardTitle       = "Interactive Analysis Dashboard"
	dashboardDescription = "An interactive dashboard combining all analyses into a single, explorable interface with real-time data exploration capabilities."

	// Sentinel href when the project folder has no dashboard file.
	noDashboardLink = "#"
)

type Generator struct {
	cfg    config.Config
	logger *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate builds the page for one project and returns the written path.
// Any error aborts the run before anything is written.
func (g *Generator) Generate(projectName, projectFolder string) (string, error) {
	images, dashboard, err := assets.Scan(projectFolder)
	if err != nil {
		return "", err
	}
	g.logger.Debug("scanned project folder",
		zap.String("folder", projectFolder),
		zap.Int("images", len(images)),
		zap.Bool("dashboard", dashboard != ""))

	info, err := metadata.Resolve(projectName, projectFolder)
	if err != nil {
		return "", err
	}

	entries := viz.BuildEntries(images, info, g.cfg.ImagePrefix, g.logger)
	vizData, err := viz.MarshalEntries(entries)
	if err != nil {
		return "", err
	}

	dashboardLink := noDashboardLink
	if dashboard != "" {
		dashboardLink = g.cfg.ImagePrefix + filepath.ToSlash(dashboard)
	}

	replacements := map[string]string{
		"{{PROJECT_TITLE}}":            info.Title,
		"{{PROJECT_DESCRIPTION}}":      info.Description,
		"{{TECH_STACK}}":               render.TechStack(info.TechStack),
		"{{INSIGHT_CARDS}}":            render.InsightCards(info.Insights),
		"{{PROJECT_SUMMARY}}":          info.Summary,
		"{{KEY_INSIGHTS}}":             render.KeyInsights(info.KeyInsights),
		"{{VISUALIZATIONS}}":           render.VisualizationCards(images, g.cfg.ImagePrefix),
		"{{DASHBOARD_TITLE}}":          dashboardTitle,
		"{{DASHBOARD_DESCRIPTION}}":    dashboardDescription,
		"{{DASHBOARD_LINK}}":           dashboardLink,
		"{{TECHNICAL_IMPLEMENTATION}}": render.TechnicalImplementation(info.TechnicalImplementation),
		"{{BUSINESS_VALUE_TITLE}}":     info.BusinessValue.Title,
		"{{BUSINESS_VALUE_ITEMS}}":     render.BusinessValueItems(info.BusinessValue.Items),
		"{{PROJECT_LINKS}}":            render.ProjectLinks(info.ProjectLinks),
		"{{VISUALIZATION_DATA}}":       vizData,
	}

	document, err := page.Compose(g.cfg.TemplatePath, replacements)
	if err != nil {
		return "", err
	}
	return page.Write(g.cfg.OutputDir, projectName, document)
}
