// Package render holds the pure fragment builders, one per template region.
// Inputs are trusted same-origin metadata, so values are interpolated raw.
// An empty input slice always renders to an empty string.
package render

import (
	"fmt"
	"strings"

	"github.com/runn3rman/runn3rman.github.io/internal/model"
	"github.com/runn3rman/runn3rman.github.io/internal/viz"
)

// TechStack renders one inline tag per technology, in order.
func TechStack(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<span class="tech-item">%s</span>`, item)
	}
	return b.String()
}

// InsightCards renders the headline metric cards.
func InsightCards(insights []model.Insight) string {
	var b strings.Builder
	for _, insight := range insights {
		fmt.Fprintf(&b, `<div class="insight-card"><h3>%s</h3><p>%s</p></div>`, insight.Value, insight.Label)
	}
	return b.String()
}

// KeyInsights renders the icon cards of the key-insights section.
func KeyInsights(items []model.KeyInsight) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<div class="insight-card">
    <i class="%s" style="font-size: 2rem; color: #2563eb; margin-bottom: 1rem;"></i>
    <h3>%s</h3>
    <p>%s</p>
</div>`, item.Icon, item.Title, item.Description)
	}
	return b.String()
}

// TechnicalImplementation renders one card per implementation item.
func TechnicalImplementation(items []model.TechnicalItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<div class="insight-card">
    <h3>%s</h3>
    <p>%s</p>
</div>`, item.Title, item.Description)
	}
	return b.String()
}

// BusinessValueItems renders the business-value grid entries.
func BusinessValueItems(items []model.BusinessItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<div>
    <i class="%s" style="font-size: 2rem; color: #2563eb; margin-bottom: 1rem;"></i>
    <h4>%s</h4>
    <p>%s</p>
</div>`, item.Icon, item.Title, item.Description)
	}
	return b.String()
}

// ProjectLinks renders one anchor per link. A missing style passes through
// as an empty attribute value, matching the page's existing markup.
func ProjectLinks(links []model.ProjectLink) string {
	var b strings.Builder
	for _, link := range links {
		fmt.Fprintf(&b, `<a href="%s" class="dashboard-link" target="_blank" style="%s">
    <i class="%s"></i>
    %s
</a>`, link.URL, link.Style, link.Icon, link.Text)
	}
	return b.String()
}

// VisualizationCards renders one clickable card per discovered image, in
// scan order. The onclick key is the normalized filename key, which the
// modal script uses to look the entry up in the visualization data object.
// The card title is always the derived one; custom titles only appear in the
// expanded modal.
func VisualizationCards(images []string, imagePrefix string) string {
	var b strings.Builder
	for _, image := range images {
		key := viz.NormalizeKey(image)
		title := viz.DisplayTitle(image)
		fmt.Fprintf(&b, `<div class="viz-card" onclick="expandVisualization('%s')">
    <img src="%s" alt="%s">
    <div class="viz-card-content">
        <h3>%s</h3>
        <p>Comprehensive analysis showing key patterns, trends, and insights from the dataset.</p>
        <div class="expand-hint">
            <i class="fas fa-expand-arrows-alt"></i> Click to expand
        </div>
    </div>
</div>`, key, viz.ImageRef(imagePrefix, image), title, title)
	}
	return b.String()
}
