package main

import (
	"os"
	"testing"

	"github.com/cognitivegames/sudoku/game/engine"
)

func TestAnalysisConfig(t *testing.T) {
	config := AnalysisConfig{
		Name:        "Test Preset",
		Description: "Test preset",
		BlankCounts: map[string]int{
			"easy":   30,
			"medium": 40,
			"hard":   50,
		},
		TimeLimits: map[string]int{
			"easy":   1800,
			"medium": 2400,
			"hard":   3000,
		},
	}

	if config.Name != "Test Preset" {
		t.Errorf("Expected Name 'Test Preset', got '%s'", config.Name)
	}

	if config.BlankCounts["medium"] != 40 {
		t.Errorf("Expected 40 medium blanks, got %d", config.BlankCounts["medium"])
	}
}

func TestSamplePuzzles(t *testing.T) {
	generator := engine.NewSeededGenerator(11)

	stats := samplePuzzles(generator, 45, 3)
	if stats == nil {
		t.Fatal("Expected stats, got nil")
	}

	// 3 puzzles, each with 81-45=36 givens
	totalGivens := 0
	for digit := 1; digit <= 9; digit++ {
		totalGivens += stats.digitCounts[digit]
	}
	if totalGivens != 3*36 {
		t.Errorf("Expected %d total givens, got %d", 3*36, totalGivens)
	}

	if stats.minGivensPerRow < 0 || stats.minGivensPerRow > 9 {
		t.Errorf("Invalid min givens per row: %d", stats.minGivensPerRow)
	}

	if stats.avgDuration <= 0 {
		t.Error("Expected positive average duration")
	}
}

func TestSamplePuzzles_InvalidBlankCount(t *testing.T) {
	generator := engine.NewSeededGenerator(11)

	stats := samplePuzzles(generator, -1, 1)
	if stats != nil {
		t.Error("Expected nil stats for negative blank count")
	}
}

func TestAnalyzeConfig_ValidFile(t *testing.T) {
	validConfig := `{
		"name": "Test Preset",
		"description": "Test preset",
		"blank_counts": {
			"easy": 30,
			"medium": 40,
			"hard": 50
		},
		"time_limits": {
			"easy": 1800,
			"medium": 2400,
			"hard": 3000
		}
	}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	// Test that analyzeConfig doesn't panic
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}

func TestAnalyzeConfig_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid file: %v", r)
		}
	}()

	analyzeConfig("/non/existent/file.json")
}

func TestAnalyzeConfig_InvalidJSON(t *testing.T) {
	invalidJSON := `{"name": "test", invalid json}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(invalidJSON)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid JSON: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}

func TestAnalyzeConfig_MissingDifficulty(t *testing.T) {
	config := `{
		"name": "Partial",
		"description": "Missing hard",
		"blank_counts": {
			"easy": 30,
			"medium": 40
		},
		"time_limits": {
			"easy": 1800,
			"medium": 2400
		}
	}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(config)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with missing difficulty: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}
