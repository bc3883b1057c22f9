package engine

import (
	"errors"
	"testing"
)

// assertValidSolution checks that every row, column, and 3x3 block contains
// each digit 1-9 exactly once.
func assertValidSolution(t *testing.T, g Grid) {
	t.Helper()

	for r := 0; r < GridSize; r++ {
		seen := [GridSize + 1]bool{}
		for c := 0; c < GridSize; c++ {
			v := g[r][c]
			if v < 1 || v > 9 {
				t.Fatalf("cell (%d,%d) holds %d, want 1-9", r, c, v)
			}
			if seen[v] {
				t.Fatalf("row %d repeats digit %d", r, v)
			}
			seen[v] = true
		}
	}

	for c := 0; c < GridSize; c++ {
		seen := [GridSize + 1]bool{}
		for r := 0; r < GridSize; r++ {
			if seen[g[r][c]] {
				t.Fatalf("column %d repeats digit %d", c, g[r][c])
			}
			seen[g[r][c]] = true
		}
	}

	for br := 0; br < BoxSize; br++ {
		for bc := 0; bc < BoxSize; bc++ {
			seen := [GridSize + 1]bool{}
			for r := br * BoxSize; r < (br+1)*BoxSize; r++ {
				for c := bc * BoxSize; c < (bc+1)*BoxSize; c++ {
					if seen[g[r][c]] {
						t.Fatalf("block (%d,%d) repeats digit %d", br, bc, g[r][c])
					}
					seen[g[r][c]] = true
				}
			}
		}
	}
}

func TestGenerateCompleteBoard_Valid(t *testing.T) {
	for _, seed := range []int64{1, 42, 9001} {
		gen := NewSeededGenerator(seed)
		board := gen.GenerateCompleteBoard()

		if board.CountEmpty() != 0 {
			t.Errorf("seed %d: board has %d empty cells, want 0", seed, board.CountEmpty())
		}
		assertValidSolution(t, board)
	}
}

func TestGenerateCompleteBoard_SeededDeterminism(t *testing.T) {
	a := NewSeededGenerator(7).GenerateCompleteBoard()
	b := NewSeededGenerator(7).GenerateCompleteBoard()
	if a != b {
		t.Error("same seed produced different boards")
	}

	c := NewSeededGenerator(8).GenerateCompleteBoard()
	if a == c {
		t.Error("different seeds produced identical boards")
	}
}

func TestCreatePuzzle_BlankCounts(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		blanks     int
	}{
		{Easy, 35},
		{Medium, 45},
		{Hard, 55},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			gen := NewSeededGenerator(11)
			solution := gen.GenerateCompleteBoard()

			puzzle, fixed, err := gen.CreatePuzzle(solution, tt.blanks)
			if err != nil {
				t.Fatalf("CreatePuzzle failed: %v", err)
			}

			if got := puzzle.CountEmpty(); got != tt.blanks {
				t.Errorf("puzzle has %d blanks, want %d", got, tt.blanks)
			}

			for r := 0; r < GridSize; r++ {
				for c := 0; c < GridSize; c++ {
					if puzzle[r][c] != Empty && puzzle[r][c] != solution[r][c] {
						t.Errorf("filled cell (%d,%d) holds %d, solution has %d", r, c, puzzle[r][c], solution[r][c])
					}
					if fixed[r][c] != (puzzle[r][c] != Empty) {
						t.Errorf("fixed mask at (%d,%d) disagrees with puzzle contents", r, c)
					}
				}
			}
		})
	}
}

func TestCreatePuzzle_InvalidBlankCount(t *testing.T) {
	gen := NewSeededGenerator(3)
	solution := gen.GenerateCompleteBoard()

	for _, blanks := range []int{-1, TotalCells + 1} {
		_, _, err := gen.CreatePuzzle(solution, blanks)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("blanks=%d: got err %v, want ErrInvalidConfiguration", blanks, err)
		}
	}
}

func TestCreatePuzzle_Extremes(t *testing.T) {
	gen := NewSeededGenerator(5)
	solution := gen.GenerateCompleteBoard()

	full, _, err := gen.CreatePuzzle(solution, 0)
	if err != nil {
		t.Fatalf("CreatePuzzle(0) failed: %v", err)
	}
	if full != solution {
		t.Error("zero blanks should leave the puzzle equal to the solution")
	}

	blank, fixed, err := gen.CreatePuzzle(solution, TotalCells)
	if err != nil {
		t.Fatalf("CreatePuzzle(81) failed: %v", err)
	}
	if blank.CountEmpty() != TotalCells {
		t.Errorf("expected fully blank puzzle, got %d blanks", blank.CountEmpty())
	}
	if fixed != (FixedMask{}) {
		t.Error("fully blank puzzle should have no fixed cells")
	}
}

func TestCreatePuzzle_SeededDeterminism(t *testing.T) {
	solution := NewSeededGenerator(21).GenerateCompleteBoard()

	p1, _, err := NewSeededGenerator(99).CreatePuzzle(solution, 45)
	if err != nil {
		t.Fatalf("CreatePuzzle failed: %v", err)
	}
	p2, _, err := NewSeededGenerator(99).CreatePuzzle(solution, 45)
	if err != nil {
		t.Fatalf("CreatePuzzle failed: %v", err)
	}
	if p1 != p2 {
		t.Error("same seed carved different puzzles")
	}
}
