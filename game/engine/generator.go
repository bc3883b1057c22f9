package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidConfiguration reports a preset asking for an impossible puzzle,
// e.g. a blank count outside 0-81.
var ErrInvalidConfiguration = errors.New("invalid puzzle configuration")

// Generator builds solved boards and carves puzzles from them. The random
// source is injected so tests can seed it for reproducible output.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator using the provided random source. A nil
// rng falls back to a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a generator with a deterministic seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// GenerateCompleteBoard produces a full valid solution grid. It backtracks
// over the 81 cells in row-major order, trying the legal digits for each
// empty cell in shuffled order. Any valid partial assignment reached this way
// is completable, so the search always converges and the method never fails.
func (g *Generator) GenerateCompleteBoard() Grid {
	var board Grid
	g.fill(&board, 0)
	return board
}

// fill places a digit at cell index idx (row-major) and recurses. It returns
// false only to drive backtracking inside the search.
func (g *Generator) fill(board *Grid, idx int) bool {
	for ; idx < TotalCells; idx++ {
		r, c := idx/GridSize, idx%GridSize
		if board[r][c] != Empty {
			continue
		}

		candidates := legalDigits(board, r, c)
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		for _, v := range candidates {
			board[r][c] = v
			if g.fill(board, idx+1) {
				return true
			}
			board[r][c] = Empty
		}
		return false
	}
	return true
}

// CreatePuzzle carves a playable puzzle out of a complete solution by
// clearing exactly blanks cells, chosen uniformly without replacement. The
// remaining filled cells become the fixed mask. Removing values can never
// break the Sudoku constraint, so no re-validation happens during carving,
// and the resulting puzzle is not checked for solution uniqueness: the game
// only ever grades player entries against the one stored solution.
func (g *Generator) CreatePuzzle(solution Grid, blanks int) (Grid, FixedMask, error) {
	if blanks < 0 || blanks > TotalCells {
		return Grid{}, FixedMask{}, fmt.Errorf("%w: blank count %d outside 0-%d", ErrInvalidConfiguration, blanks, TotalCells)
	}

	puzzle := solution

	order := g.rng.Perm(TotalCells)
	for _, idx := range order[:blanks] {
		puzzle[idx/GridSize][idx%GridSize] = Empty
	}

	var fixed FixedMask
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			fixed[r][c] = puzzle[r][c] != Empty
		}
	}
	return puzzle, fixed, nil
}

// legalDigits returns the digits 1-9 that do not conflict with the cell's
// row, column, or 3x3 block.
func legalDigits(board *Grid, row, col int) []int {
	var out []int
	for v := 1; v <= GridSize; v++ {
		if !digitConflicts(board, row, col, v) {
			out = append(out, v)
		}
	}
	return out
}

// digitConflicts reports whether placing v at (row, col) would collide with
// an equal value elsewhere in the same row, column, or block. The cell itself
// is excluded, so the check works on both empty and occupied cells.
func digitConflicts(board *Grid, row, col, v int) bool {
	for i := 0; i < GridSize; i++ {
		if i != col && board[row][i] == v {
			return true
		}
		if i != row && board[i][col] == v {
			return true
		}
	}
	br, bc := (row/BoxSize)*BoxSize, (col/BoxSize)*BoxSize
	for r := br; r < br+BoxSize; r++ {
		for c := bc; c < bc+BoxSize; c++ {
			if (r != row || c != col) && board[r][c] == v {
				return true
			}
		}
	}
	return false
}
