// Command validate provides a small CLI that validates difficulty preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Presence of all three difficulties (easy, medium, hard) in blank_counts and time_limits
//   - Blank counts within the 0-81 range of a 9x9 board
//   - Positive time limits
//   - Progression: blanks and time limits should not decrease as difficulty rises
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// difficulties in ascending order of challenge.
var difficulties = []string{"easy", "medium", "hard"}

// totalCells is the number of cells on a 9x9 board.
const totalCells = 81

// Config mirrors the JSON schema for a difficulty preset.
type Config struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	BlankCounts map[string]int `json:"blank_counts"`
	TimeLimits  map[string]int `json:"time_limits"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single preset JSON file.
// It performs structural checks, range checks on blank counts and time
// limits, and a progression check across difficulties.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}

	// Validate blank counts
	for _, d := range difficulties {
		blanks, exists := config.BlankCounts[d]
		if !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing blank count for difficulty: %s", d))
			continue
		}
		if blanks < 0 || blanks > totalCells {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Blank count for %s must be between 0 and %d, got %d", d, totalCells, blanks))
		}
	}

	// Validate time limits
	for _, d := range difficulties {
		limit, exists := config.TimeLimits[d]
		if !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing time limit for difficulty: %s", d))
			continue
		}
		if limit <= 0 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Time limit for %s must be positive, got %d", d, limit))
		}
	}

	// Progression validation - harder difficulties should not get easier
	if result.Valid {
		progressionResult := validateProgression(config)
		if !progressionResult.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, progressionResult.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Blanks: %d/%d/%d",
			config.BlankCounts["easy"], config.BlankCounts["medium"], config.BlankCounts["hard"]))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Time limits: %ds/%ds/%ds",
			config.TimeLimits["easy"], config.TimeLimits["medium"], config.TimeLimits["hard"]))
	}

	return result
}

// validateProgression checks that blank counts do not decrease from easy to
// hard. A preset where hard has fewer blanks than easy is almost certainly a
// typo, so it is rejected rather than warned about.
func validateProgression(config Config) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	for i := 1; i < len(difficulties); i++ {
		prev, cur := difficulties[i-1], difficulties[i]
		if config.BlankCounts[cur] < config.BlankCounts[prev] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Blank count decreases from %s (%d) to %s (%d)",
				prev, config.BlankCounts[prev], cur, config.BlankCounts[cur]))
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, "✓ Progression: blank counts are non-decreasing")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
