package service

import (
	"time"

	"github.com/cognitivegames/sudoku/game/engine"
)

// SessionInfo provides information about a game session.
type SessionInfo struct {
	ID             string            `json:"id"`
	ConfigID       string            `json:"config_id"`
	Difficulty     engine.Difficulty `json:"difficulty"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	Board          *BoardView        `json:"board"`
}

// BoardView is the player-visible state of a session. It carries the current
// digits and the fixed mask but never the solution.
type BoardView struct {
	Cells            [][]int           `json:"cells"`
	Fixed            [][]bool          `json:"fixed"`
	Difficulty       engine.Difficulty `json:"difficulty"`
	Blanks           int               `json:"blanks"`
	HintsUsed        int               `json:"hints_used"`
	Complete         bool              `json:"complete"`
	Correct          bool              `json:"correct"`
	Finished         bool              `json:"finished"`
	ElapsedSeconds   int               `json:"elapsed_seconds"`
	TimeLimitSeconds int               `json:"time_limit_seconds"`
}

// MoveResult contains the result of a set-value operation.
type MoveResult struct {
	Position  engine.Position  `json:"position"`
	Value     int              `json:"value"`
	CellState engine.CellState `json:"cell_state"`
	Valid     bool             `json:"valid"` // rule-level feedback, does not gate the write
	Complete  bool             `json:"complete"`
	Correct   bool             `json:"correct"`
	Board     *BoardView       `json:"board"`
}

// ValidationResult answers an is-valid-move query without touching state.
type ValidationResult struct {
	Position engine.Position `json:"position"`
	Value    int             `json:"value"`
	Valid    bool            `json:"valid"`
}

// HintResult carries a revealed solution digit and the updated hint count.
// The board is not modified; the caller decides whether to place the digit.
type HintResult struct {
	Position  engine.Position `json:"position"`
	Digit     int             `json:"digit"`
	HintsUsed int             `json:"hints_used"`
}

// BoardReport classifies every cell for display coloring.
type BoardReport struct {
	States   [][]engine.CellState     `json:"states"`
	Counts   map[engine.CellState]int `json:"counts"`
	Complete bool                     `json:"complete"`
	Correct  bool                     `json:"correct"`
}

// FinishRequest carries the caller's clock readings for the final score.
// Nil fields fall back to the session clock and the preset's time limit.
type FinishRequest struct {
	ElapsedSeconds   *int `json:"elapsed_seconds,omitempty"`
	TimeLimitSeconds *int `json:"time_limit_seconds,omitempty"`
}

// ConfigInfo provides information about a difficulty preset.
type ConfigInfo struct {
	Filename    string                    `json:"filename"`
	ConfigID    string                    `json:"config_id"` // identifier to use for session creation
	Name        string                    `json:"name"`      // display name
	Description string                    `json:"description"`
	BlankCounts map[engine.Difficulty]int `json:"blank_counts"`
	TimeLimits  map[engine.Difficulty]int `json:"time_limits"`
}
