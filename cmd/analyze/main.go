// Command analyze prints quick, human-readable heuristics about difficulty
// preset files in the project's configs directory. For each preset and
// difficulty it generates sample puzzles and summarizes blank counts, given
// digit distribution, and generation timing.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cognitivegames/sudoku/game/engine"
)

// AnalysisConfig is a light struct for reading preset files used by analysis.
type AnalysisConfig struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	BlankCounts map[string]int `json:"blank_counts"`
	TimeLimits  map[string]int `json:"time_limits"`
}

// samplesPerDifficulty is how many puzzles to generate per difficulty when
// collecting statistics.
const samplesPerDifficulty = 20

func main() {
	configs := []string{
		"classic.json",
		"relaxed.json",
		"blitz.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Description: %s\n", config.Description)

	generator := engine.NewGenerator(nil)

	for _, difficulty := range []string{"easy", "medium", "hard"} {
		blanks, ok := config.BlankCounts[difficulty]
		if !ok {
			fmt.Printf("⚠️  Missing blank count for %s, skipping\n", difficulty)
			continue
		}

		limit := config.TimeLimits[difficulty]
		fmt.Printf("\n--- %s: %d blanks, %ds limit ---\n", difficulty, blanks, limit)

		stats := samplePuzzles(generator, blanks, samplesPerDifficulty)
		if stats == nil {
			fmt.Printf("⚠️  CRITICAL: could not generate puzzles with %d blanks\n", blanks)
			continue
		}

		fmt.Printf("Givens per puzzle: %d\n", engine.TotalCells-blanks)
		fmt.Printf("Avg generation time: %v\n", stats.avgDuration)
		fmt.Printf("Given digit distribution (avg over %d puzzles):\n", samplesPerDifficulty)
		for digit := 1; digit <= 9; digit++ {
			avg := float64(stats.digitCounts[digit]) / float64(samplesPerDifficulty)
			fmt.Printf("  %d: %.1f\n", digit, avg)
		}

		if stats.minGivensPerRow == 0 {
			fmt.Printf("⚠️  Some puzzles have rows with zero givens\n")
		} else {
			fmt.Printf("✅ Every row keeps at least %d given(s)\n", stats.minGivensPerRow)
		}
	}
}

// puzzleStats aggregates statistics over a batch of generated puzzles.
type puzzleStats struct {
	avgDuration     time.Duration
	digitCounts     [10]int
	minGivensPerRow int
}

// samplePuzzles generates count puzzles with the given blank target and
// collects digit distribution and timing statistics. Returns nil if any
// puzzle fails to generate.
func samplePuzzles(generator *engine.Generator, blanks, count int) *puzzleStats {
	stats := &puzzleStats{minGivensPerRow: 9}

	var total time.Duration
	for i := 0; i < count; i++ {
		start := time.Now()
		solution := generator.GenerateCompleteBoard()
		puzzle, _, err := generator.CreatePuzzle(solution, blanks)
		if err != nil {
			return nil
		}
		total += time.Since(start)

		for row := 0; row < engine.GridSize; row++ {
			givensInRow := 0
			for col := 0; col < engine.GridSize; col++ {
				if puzzle[row][col] != engine.Empty {
					stats.digitCounts[puzzle[row][col]]++
					givensInRow++
				}
			}
			if givensInRow < stats.minGivensPerRow {
				stats.minGivensPerRow = givensInRow
			}
		}
	}

	stats.avgDuration = total / time.Duration(count)
	return stats
}
