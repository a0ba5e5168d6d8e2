// Package viz derives the canonical key, display title and description for
// every discovered visualization image. The normalized key is the join point
// between a filename and any custom description in the project metadata, and
// is also what the page's modal script looks up at click time.
package viz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/runn3rman/runn3rman.github.io/internal/model"
)

// NormalizeKey lowercases the filename stem and strips underscores, hyphens
// and spaces. "Water_Supply-2024.png" becomes "watersupply2024".
func NormalizeKey(filename string) string {
	key := strings.ToLower(stem(filename))
	for _, sep := range []string{"_", "-", " "} {
		key = strings.ReplaceAll(key, sep, "")
	}
	return key
}

// DisplayTitle turns a filename stem into a human title: underscores become
// spaces, then each word is title-cased.
func DisplayTitle(filename string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(stem(filename), "_", " "))
}

func stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImageRef builds the page-relative reference for an asset file, e.g.
// "../water-conservation-analysis/Snow_Pack.png" for the default prefix.
func ImageRef(imagePrefix, assetPath string) string {
	return imagePrefix + filepath.ToSlash(assetPath)
}

// BuildEntries resolves one VisualizationEntry per image, in scan order.
// A custom entry in visualization_descriptions wins outright (including its
// title); otherwise the first keyword whose name occurs in the lowercased
// stem supplies the description, and failing that the generic fallback is
// used. When two filenames normalize to the same key the later one wins and
// a warning is logged so the shadowing is not silent.
func BuildEntries(images []string, info *model.ProjectInfo, imagePrefix string, logger *zap.Logger) []model.VisualizationEntry {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries := make([]model.VisualizationEntry, 0, len(images))
	seen := make(map[string]string, len(images))
	for _, image := range images {
		key := NormalizeKey(image)
		if prev, ok := seen[key]; ok {
			logger.Warn("visualization key collision, keeping the later file",
				zap.String("key", key),
				zap.String("shadowed", prev),
				zap.String("kept", image))
		}
		seen[key] = image

		title := DisplayTitle(image)
		description := DescriptionFor(image)
		if custom, ok := info.VisualizationDescriptions[key]; ok {
			title = custom.Title
			description = custom.Description
		}

		entries = append(entries, model.VisualizationEntry{
			Key:         key,
			Title:       title,
			Image:       ImageRef(imagePrefix, image),
			Description: description,
		})
	}
	return entries
}

// MarshalEntries serializes the entries as the JSON object consumed by the
// modal script, keyed by normalized key. Later entries overwrite earlier
// ones on key collision, matching BuildEntries' last-write-wins policy.
// HTML escaping is disabled so the description fragments land in the page
// exactly as authored.
func MarshalEntries(entries []model.VisualizationEntry) (string, error) {
	data := make(map[string]model.VisualizationEntry, len(entries))
	for _, entry := range entries {
		data[entry.Key] = entry
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("failed to serialize visualization data: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
