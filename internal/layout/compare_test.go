package layout

import (
	"errors"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	base := defaultTestSettings()
	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 4)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, base, scenarios[0].Settings)
	assert.InDelta(t, base.DeltaAngle/2, scenarios[1].Settings.DeltaAngle, 1e-12)
	assert.InDelta(t, base.Step*2, scenarios[2].Settings.Step, 1e-12)
	assert.Equal(t, "No Compaction", scenarios[3].Name)
	assert.False(t, scenarios[3].Settings.Compact)
}

func TestBuildDefaultScenarios_OffersCompactionWhenDisabled(t *testing.T) {
	base := defaultTestSettings()
	base.Compact = false
	base.MaxCompactionSteps = 0

	scenarios := BuildDefaultScenarios(base)
	last := scenarios[len(scenarios)-1]
	assert.Equal(t, "With Compaction", last.Name)
	assert.True(t, last.Settings.Compact)
	assert.Greater(t, last.Settings.MaxCompactionSteps, 0)
}

func TestCompareScenarios(t *testing.T) {
	sizes := randomSizes(40, 17)
	results := CompareScenarios(BuildDefaultScenarios(defaultTestSettings()), sizes)

	require.Len(t, results, 4)
	for _, r := range results {
		require.NoError(t, r.Err, r.Scenario.Name)
		assert.Len(t, r.Rectangles, len(sizes), r.Scenario.Name)
		assert.Greater(t, r.Density, 0.0, r.Scenario.Name)
		assert.LessOrEqual(t, r.Density, 1.0, r.Scenario.Name)
		assert.Greater(t, r.SearchPoints, 0, r.Scenario.Name)
		assertNoOverlaps(t, r.Rectangles)
	}
	assert.Equal(t, 0, results[3].CompactionMoves, "no-compaction scenario must not move rectangles")
}

func TestCompareScenarios_InvalidScenarioReportsError(t *testing.T) {
	bad := defaultTestSettings()
	bad.Step = 0

	results := CompareScenarios([]ComparisonScenario{
		{Name: "bad", Settings: bad},
		{Name: "good", Settings: defaultTestSettings()},
	}, []model.Size{{Width: 5, Height: 5}})

	require.Len(t, results, 2)
	assert.True(t, errors.Is(results[0].Err, model.ErrInvalidConfig))
	assert.NoError(t, results[1].Err)
	assert.Len(t, results[1].Rectangles, 1)
}

func TestCompareScenarios_CountsSkipped(t *testing.T) {
	tight := defaultTestSettings()
	tight.MaxSearchIterations = 3

	results := CompareScenarios([]ComparisonScenario{{Name: "tight", Settings: tight}},
		[]model.Size{{Width: 10, Height: 10}, {Width: 10, Height: 10}})

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Skipped)
	assert.Len(t, results[0].Rectangles, 1)
}
