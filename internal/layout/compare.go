package layout

import (
	"errors"
	"fmt"

	"github.com/piwi3910/tagcloud/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the layout produced by one scenario and the
// statistics used to rank it.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Rectangles      []model.Rectangle
	Bounds          model.Size
	Density         float64 // Placed area / bounding box area, 0..1
	SearchPoints    int
	CompactionMoves int
	Skipped         int // Rectangles whose search was exhausted
	Err             error
}

// CompareScenarios lays out the same sizes once per scenario, each with its
// own fresh Layouter, and returns the results in scenario order. A scenario
// with invalid settings reports its error in Err and the others still run.
func CompareScenarios(scenarios []ComparisonScenario, sizes []model.Size) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		res := ComparisonResult{Scenario: scenario}

		l, err := New(scenario.Settings)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		for _, size := range sizes {
			if _, err := l.PutNextRectangle(size); err != nil {
				if errors.Is(err, ErrSearchExhausted) {
					res.Skipped++
					continue
				}
				res.Err = err
				break
			}
		}

		res.Rectangles = l.Rectangles()
		bounds := l.Bounds()
		res.Bounds = bounds.Size
		res.Density = density(res.Rectangles, bounds.Size)
		stats := l.Stats()
		res.SearchPoints = stats.SearchPoints
		res.CompactionMoves = stats.CompactionMoves
		results = append(results, res)
	}

	return results
}

func density(rects []model.Rectangle, bounds model.Size) float64 {
	total := bounds.Area()
	if total == 0 {
		return 0
	}
	used := 0
	for _, r := range rects {
		used += r.Size.Area()
	}
	return float64(used) / float64(total)
}

// BuildDefaultScenarios generates what-if alternatives around the current
// spiral settings.
func BuildDefaultScenarios(base model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	finer := base
	finer.DeltaAngle = base.DeltaAngle / 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Angle %.3f rad (half)", finer.DeltaAngle),
		Settings: finer,
	})

	coarser := base
	coarser.Step = base.Step * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Step %.1f (double)", coarser.Step),
		Settings: coarser,
	})

	if base.Compact {
		loose := base
		loose.Compact = false
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Compaction",
			Settings: loose,
		})
	} else {
		tight := base
		tight.Compact = true
		if tight.MaxCompactionSteps == 0 {
			tight.MaxCompactionSteps = model.DefaultSettings().MaxCompactionSteps
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "With Compaction",
			Settings: tight,
		})
	}

	return scenarios
}
