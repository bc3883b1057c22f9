package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCellLocked rejects a mutation or hint on a puzzle-supplied cell.
	ErrCellLocked = errors.New("cell is locked")

	// ErrInvalidState rejects gameplay operations after the game finished.
	ErrInvalidState = errors.New("game already finished")

	// ErrInvalidValue rejects digits outside 0-9.
	ErrInvalidValue = errors.New("value must be 0 (empty) or 1-9")

	// ErrOutOfBounds rejects positions off the 9x9 board.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Game tracks one play-through of a puzzle. The solution and fixed mask are
// immutable after construction; only the board changes, and only through
// SetValue. A Game is InProgress until FinishGame succeeds, after which every
// mutating operation fails with ErrInvalidState.
type Game struct {
	difficulty Difficulty
	puzzle     Grid
	solution   Grid
	board      Grid
	fixed      FixedMask
	hintsUsed  int
	finished   bool
}

// NewGame builds a game from a (puzzle, solution) pair produced by the
// generator. The fixed mask is derived from the puzzle's filled cells.
func NewGame(puzzle, solution Grid, difficulty Difficulty) *Game {
	g := &Game{
		difficulty: difficulty,
		puzzle:     puzzle,
		solution:   solution,
		board:      puzzle,
	}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			g.fixed[r][c] = puzzle[r][c] != Empty
		}
	}
	return g
}

// RestoreGame rebuilds a game from a persisted snapshot.
func RestoreGame(snap *Snapshot) (*Game, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}
	g := NewGame(snap.Puzzle, snap.Solution, snap.Difficulty)
	g.board = snap.Board
	g.hintsUsed = snap.HintsUsed
	g.finished = snap.Finished
	// Fixed cells always show their puzzle value, whatever the snapshot says.
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g.fixed[r][c] {
				g.board[r][c] = g.puzzle[r][c]
			}
		}
	}
	return g, nil
}

// Snapshot captures the serializable state of the game.
func (g *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Difficulty: g.difficulty,
		Puzzle:     g.puzzle,
		Solution:   g.solution,
		Board:      g.board,
		HintsUsed:  g.hintsUsed,
		Finished:   g.finished,
	}
}

// Difficulty returns the difficulty the puzzle was carved for.
func (g *Game) Difficulty() Difficulty { return g.difficulty }

// Board returns a copy of the current player-visible grid.
func (g *Game) Board() Grid { return g.board }

// Fixed returns a copy of the fixed-cell mask.
func (g *Game) Fixed() FixedMask { return g.fixed }

// Value returns the current board value at p, or Empty when p is off-board.
func (g *Game) Value(p Position) int {
	if !p.InBounds() {
		return Empty
	}
	return g.board[p.Row][p.Col]
}

// IsFixed reports whether p holds a puzzle-supplied, non-editable value.
func (g *Game) IsFixed(p Position) bool {
	return p.InBounds() && g.fixed[p.Row][p.Col]
}

// HintsUsed returns how many hints have been revealed so far.
func (g *Game) HintsUsed() int { return g.hintsUsed }

// Finished reports whether FinishGame has been called.
func (g *Game) Finished() bool { return g.finished }

// SetValue writes a digit (or Empty to erase) into a non-fixed cell. The
// write is unconditional: an incorrect digit is stored as-is, and row/column/
// block conflicts are not enforced here. Use IsValidMove for live feedback.
func (g *Game) SetValue(p Position, value int) error {
	if g.finished {
		return ErrInvalidState
	}
	if !p.InBounds() {
		return ErrOutOfBounds
	}
	if g.fixed[p.Row][p.Col] {
		return ErrCellLocked
	}
	if value < Empty || value > GridSize {
		return ErrInvalidValue
	}
	g.board[p.Row][p.Col] = value
	return nil
}

// IsValidMove reports whether value could be placed at p without repeating in
// the same row, column, or 3x3 block of the current board. The cell at p
// itself is excluded from the check. Pure predicate; it does not gate
// SetValue.
func (g *Game) IsValidMove(p Position, value int) bool {
	if !p.InBounds() || value < 1 || value > GridSize {
		return false
	}
	return !digitConflicts(&g.board, p.Row, p.Col, value)
}

// UseHelp reveals the solution digit at p and charges one hint. It does not
// write the board; the caller decides whether to follow up with SetValue.
func (g *Game) UseHelp(p Position) (int, error) {
	if g.finished {
		return Empty, ErrInvalidState
	}
	if !p.InBounds() {
		return Empty, ErrOutOfBounds
	}
	if g.fixed[p.Row][p.Col] {
		return Empty, ErrCellLocked
	}
	g.hintsUsed++
	return g.solution[p.Row][p.Col], nil
}

// CheckCell classifies p for display: fixed, empty, correct, or incorrect.
// The four states are mutually exclusive and cover every cell.
func (g *Game) CheckCell(p Position) CellState {
	if !p.InBounds() {
		return CellEmpty
	}
	if g.fixed[p.Row][p.Col] {
		return CellFixed
	}
	switch g.board[p.Row][p.Col] {
	case Empty:
		return CellEmpty
	case g.solution[p.Row][p.Col]:
		return CellCorrect
	default:
		return CellIncorrect
	}
}

// CheckAllCells classifies the whole board in one pass.
func (g *Game) CheckAllCells() [GridSize][GridSize]CellState {
	var states [GridSize][GridSize]CellState
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			states[r][c] = g.CheckCell(Position{Row: r, Col: c})
		}
	}
	return states
}

// IsComplete reports whether every cell holds a digit.
func (g *Game) IsComplete() bool {
	return g.board.CountEmpty() == 0
}

// IsCorrect reports whether the board matches the solution cell-for-cell.
func (g *Game) IsCorrect() bool {
	return g.board == g.solution
}

// FinishGame ends the game and computes the score. The transition is one-way:
// a second call fails with ErrInvalidState. The score has no floor and may go
// negative.
func (g *Game) FinishGame(elapsedSeconds, timeLimitSeconds int) (Score, error) {
	if g.finished {
		return Score{}, ErrInvalidState
	}
	g.finished = true

	errs, empties := 0, 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g.fixed[r][c] {
				continue
			}
			switch {
			case g.board[r][c] == Empty:
				empties++
			case g.board[r][c] != g.solution[r][c]:
				errs++
			}
		}
	}

	remaining := timeLimitSeconds - elapsedSeconds
	if remaining < 0 {
		remaining = 0
	}
	bonus := remaining / TimeBonusDivisor

	return Score{
		Points:           BaseScore + bonus - errs*ErrorPenalty - g.hintsUsed*HintPenalty - empties*EmptyPenalty,
		TimeBonus:        bonus,
		Errors:           errs,
		Empties:          empties,
		HintsUsed:        g.hintsUsed,
		Correct:          g.IsCorrect(),
		ElapsedSeconds:   elapsedSeconds,
		TimeLimitSeconds: timeLimitSeconds,
	}, nil
}

// Reset restores the board to the original puzzle, clears the hint counter,
// and reopens a finished game.
func (g *Game) Reset() {
	g.board = g.puzzle
	g.hintsUsed = 0
	g.finished = false
}
