package engine

import "fmt"

// Difficulty selects how many cells are blanked out of a complete solution.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"

	// Board geometry
	GridSize   = 9
	BoxSize    = 3
	TotalCells = GridSize * GridSize

	// Empty is the marker for a cell with no digit.
	Empty = 0

	// Scoring constants
	BaseScore        = 1000
	TimeBonusDivisor = 5
	ErrorPenalty     = 5
	HintPenalty      = 10
	EmptyPenalty     = 3
)

// ParseDifficulty maps a user-supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", s)
	}
}

// Grid is a 9x9 matrix of digits. Cells hold 1-9 or Empty. Grid is an array
// type, so assignment copies the whole board.
type Grid [GridSize][GridSize]int

// CountEmpty returns the number of cells holding the Empty marker.
func (g *Grid) CountEmpty() int {
	n := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] == Empty {
				n++
			}
		}
	}
	return n
}

// Rows returns the grid as a slice-of-slices, convenient for JSON responses.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, GridSize)
	for r := 0; r < GridSize; r++ {
		row := make([]int, GridSize)
		copy(row, g[r][:])
		rows[r] = row
	}
	return rows
}

// FixedMask marks the puzzle-supplied cells the player cannot edit.
type FixedMask [GridSize][GridSize]bool

// Rows returns the mask as a slice-of-slices, convenient for JSON responses.
func (m *FixedMask) Rows() [][]bool {
	rows := make([][]bool, GridSize)
	for r := 0; r < GridSize; r++ {
		row := make([]bool, GridSize)
		copy(row, m[r][:])
		rows[r] = row
	}
	return rows
}

// Position identifies a cell by zero-based row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the 9x9 board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// Block returns the 3x3 block coordinates (0-2, 0-2) containing the position.
func (p Position) Block() (int, int) {
	return p.Row / BoxSize, p.Col / BoxSize
}

// CellState classifies a single cell for display purposes.
type CellState string

const (
	CellFixed     CellState = "fixed"
	CellEmpty     CellState = "empty"
	CellCorrect   CellState = "correct"
	CellIncorrect CellState = "incorrect"
)

// Score is the final result of a finished game, with the full breakdown the
// presentation layer needs to explain the number.
type Score struct {
	Points           int  `json:"points"`
	TimeBonus        int  `json:"time_bonus"`
	Errors           int  `json:"errors"`
	Empties          int  `json:"empties"`
	HintsUsed        int  `json:"hints_used"`
	Correct          bool `json:"correct"`
	ElapsedSeconds   int  `json:"elapsed_seconds"`
	TimeLimitSeconds int  `json:"time_limit_seconds"`
}

// Snapshot is the serializable state of a Game, used for persistence.
type Snapshot struct {
	Difficulty Difficulty `json:"difficulty"`
	Puzzle     Grid       `json:"puzzle"`
	Solution   Grid       `json:"solution"`
	Board      Grid       `json:"board"`
	HintsUsed  int        `json:"hints_used"`
	Finished   bool       `json:"finished"`
}
