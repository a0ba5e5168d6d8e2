package model

// ProjectInfo holds everything the page template needs to know about a
// project. The metadata resolver guarantees it is fully populated before
// rendering begins; renderers never see a partial record.
type ProjectInfo struct {
	Title                     string                    `json:"title" yaml:"title"`
	Description               string                    `json:"description" yaml:"description"`
	TechStack                 []string                  `json:"tech_stack" yaml:"tech_stack"`
	Insights                  []Insight                 `json:"insights" yaml:"insights"`
	Summary                   string                    `json:"summary" yaml:"summary"`
	KeyInsights               []KeyInsight              `json:"key_insights" yaml:"key_insights"`
	TechnicalImplementation   []TechnicalItem           `json:"technical_implementation" yaml:"technical_implementation"`
	BusinessValue             BusinessValue             `json:"business_value" yaml:"business_value"`
	ProjectLinks              []ProjectLink             `json:"project_links" yaml:"project_links"`
	VisualizationDescriptions map[string]VizDescription `json:"visualization_descriptions,omitempty" yaml:"visualization_descriptions"`
}

// Insight is a single headline metric shown as a stat card.
type Insight struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// KeyInsight is an icon card in the "Key Insights" section.
type KeyInsight struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// TechnicalItem describes one part of the technical implementation.
type TechnicalItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// BusinessValue is the titled group of business-value items.
type BusinessValue struct {
	Title string         `json:"title" yaml:"title"`
	Items []BusinessItem `json:"items" yaml:"items"`
}

// BusinessItem is one icon entry in the business-value grid.
type BusinessItem struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// ProjectLink is an external anchor rendered under the project header.
// Style, when present, is passed through verbatim as an inline style.
type ProjectLink struct {
	Text  string `json:"text" yaml:"text"`
	Icon  string `json:"icon" yaml:"icon"`
	URL   string `json:"url" yaml:"url"`
	Style string `json:"style,omitempty" yaml:"style"`
}

// VizDescription is a custom title/description pair for a visualization,
// keyed in ProjectInfo by the normalized filename key.
type VizDescription struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// VisualizationEntry is the resolved record for one discovered image: the
// join key, the modal title, the page-relative image reference and a trusted
// HTML description fragment. Entries live only for the duration of a
// generation run and are serialized verbatim into the output document.
type VisualizationEntry struct {
	Key         string `json:"-"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
