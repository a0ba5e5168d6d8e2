package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runn3rman/runn3rman.github.io/internal/model"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"Water_Supply-2024.png", "watersupply2024"},
		{"Snow_Pack.png", "snowpack"},
		{"reservoir-levels.png", "reservoirlevels"},
		{"gpcd trend.svg", "gpcdtrend"},
		{"simple.jpg", "simple"},
		{"some/dir/Deliveries_By_Region.png", "deliveriesbyregion"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeKey(tc.filename), "filename %q", tc.filename)
	}
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Snow Pack", DisplayTitle("Snow_Pack.png"))
	assert.Equal(t, "Water Usage Trends", DisplayTitle("water_usage_trends.png"))
	assert.Equal(t, "Summary", DisplayTitle("out/summary.svg"))
}

func TestDescriptionFor(t *testing.T) {
	t.Run("keyword substring match", func(t *testing.T) {
		assert.Contains(t, DescriptionFor("snowpack_levels.png"), "Key Insights")
		assert.Contains(t, DescriptionFor("reservoir-levels.png"), "Operational Excellence")
		assert.Contains(t, DescriptionFor("monthly_deliveries.png"), "System Performance")
		assert.Contains(t, DescriptionFor("gpcd_trend.png"), "Success Metrics")
	})

	t.Run("keyword spans separators", func(t *testing.T) {
		// Matching happens on the normalized key, so a separator inside the
		// filename does not hide the keyword.
		assert.Contains(t, DescriptionFor("Snow_Pack.png"), "Key Insights")
		assert.Contains(t, DescriptionFor("snow pack 2024.png"), "Key Insights")
		assert.Contains(t, DescriptionFor("g-p-c-d.png"), "Success Metrics")
	})

	t.Run("first keyword in table order wins", func(t *testing.T) {
		// Contains both "reservoir" and "deliveries"; reservoir is earlier.
		assert.Contains(t, DescriptionFor("reservoir_deliveries.png"), "Operational Excellence")
	})

	t.Run("generic fallback", func(t *testing.T) {
		assert.Contains(t, DescriptionFor("heatmap.png"), "Analysis Results")
	})
}

func TestBuildEntries(t *testing.T) {
	t.Run("derived title and keyword description", func(t *testing.T) {
		info := &model.ProjectInfo{}
		entries := BuildEntries([]string{"proj/Snow_Pack.png"}, info, "../", nil)
		require.Len(t, entries, 1)
		assert.Equal(t, "snowpack", entries[0].Key)
		assert.Equal(t, "Snow Pack", entries[0].Title)
		assert.Equal(t, "../proj/Snow_Pack.png", entries[0].Image)
		assert.Contains(t, entries[0].Description, "Key Insights")
	})

	t.Run("custom description overrides title too", func(t *testing.T) {
		info := &model.ProjectInfo{
			VisualizationDescriptions: map[string]model.VizDescription{
				"snowpack": {Title: "SWE Over Time", Description: "<p>Custom.</p>"},
			},
		}
		entries := BuildEntries([]string{"proj/Snow_Pack.png"}, info, "../", nil)
		require.Len(t, entries, 1)
		assert.Equal(t, "SWE Over Time", entries[0].Title)
		assert.Equal(t, "<p>Custom.</p>", entries[0].Description)
	})

	t.Run("colliding keys keep the later file", func(t *testing.T) {
		info := &model.ProjectInfo{}
		entries := BuildEntries([]string{"proj/snow-pack.png", "proj/snow_pack.png"}, info, "../", nil)
		require.Len(t, entries, 2)
		assert.Equal(t, entries[0].Key, entries[1].Key)

		data, err := MarshalEntries(entries)
		require.NoError(t, err)
		assert.Contains(t, data, "../proj/snow_pack.png")
		assert.NotContains(t, data, "../proj/snow-pack.png")
	})
}

func TestMarshalEntries(t *testing.T) {
	entries := []model.VisualizationEntry{
		{Key: "snowpack", Title: "Snow Pack", Image: "../p/Snow_Pack.png", Description: "<p>d</p>"},
	}
	data, err := MarshalEntries(entries)
	require.NoError(t, err)
	assert.Contains(t, data, `"snowpack"`)
	assert.Contains(t, data, `"title": "Snow Pack"`)
	assert.Contains(t, data, `"image": "../p/Snow_Pack.png"`)
	assert.Contains(t, data, `"description": "<p>d</p>"`)
	// The join key lives in the object key only, never inside the entry.
	assert.NotContains(t, data, `"Key"`)
}

func TestMarshalEntriesKeepsHTMLVerbatim(t *testing.T) {
	entries := []model.VisualizationEntry{
		{
			Key:         "snowpack",
			Title:       "Snow Pack",
			Image:       "../p/Snow_Pack.png",
			Description: "<h3>Key Insights</h3>\n<p>A &amp; B</p>",
		},
	}
	data, err := MarshalEntries(entries)
	require.NoError(t, err)
	// Description fragments must reach the page script exactly as authored,
	// not as \u003c-style escape sequences.
	assert.Contains(t, data, "<h3>Key Insights</h3>")
	assert.Contains(t, data, "A &amp; B")
	assert.NotContains(t, data, `\u003c`)
	assert.NotContains(t, data, `\u0026`)
}
