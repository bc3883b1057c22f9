package engine

import "fmt"

// Settings is a difficulty preset loaded from JSON. It controls how many
// cells are blanked per difficulty and the time limit used for the score's
// time bonus when the caller does not supply one.
type Settings struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	BlankCounts map[Difficulty]int `json:"blank_counts"`
	TimeLimits  map[Difficulty]int `json:"time_limits"`
}

// DefaultSettings returns the classic preset: 35/45/55 blanks and 30/40/50
// minute limits for easy/medium/hard.
func DefaultSettings() *Settings {
	return &Settings{
		Name:        "Classic",
		Description: "Standard blank counts and time limits",
		BlankCounts: map[Difficulty]int{
			Easy:   35,
			Medium: 45,
			Hard:   55,
		},
		TimeLimits: map[Difficulty]int{
			Easy:   1800,
			Medium: 2400,
			Hard:   3000,
		},
	}
}

// Blanks returns the blank-cell target for a difficulty.
func (s *Settings) Blanks(d Difficulty) int {
	return s.BlankCounts[d]
}

// TimeLimit returns the time limit in seconds for a difficulty.
func (s *Settings) TimeLimit(d Difficulty) int {
	return s.TimeLimits[d]
}

// ValidateSettings checks a preset for correctness and playability.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings validation: settings cannot be nil")
	}
	if s.Name == "" {
		return fmt.Errorf("settings validation: name is required")
	}

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		blanks, ok := s.BlankCounts[d]
		if !ok {
			return fmt.Errorf("settings validation: missing blank count for difficulty %q", d)
		}
		if blanks < 0 || blanks > TotalCells {
			return fmt.Errorf("settings validation: blank count for %q must be between 0 and %d, got %d", d, TotalCells, blanks)
		}

		limit, ok := s.TimeLimits[d]
		if !ok {
			return fmt.Errorf("settings validation: missing time limit for difficulty %q", d)
		}
		if limit <= 0 {
			return fmt.Errorf("settings validation: time limit for %q must be positive, got %d", d, limit)
		}
	}
	return nil
}
