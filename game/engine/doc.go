// Package engine implements the core Sudoku logic: board generation and
// the game state machine.
//
// The package has two halves that feed each other:
//
//   - Generator constructs a complete valid 9x9 solution via randomized
//     backtracking and carves a playable puzzle from it by blanking a
//     difficulty-controlled number of cells.
//
//   - Game owns the (puzzle, solution) pair for one play-through: it applies
//     player moves, protects the pre-filled (fixed) cells, classifies every
//     cell for display, accounts for hints, and computes the final score.
//
// The engine is deliberately free of I/O, timers, and concurrency. Elapsed
// time is supplied by the caller, all operations are synchronous and bounded
// by an 81-cell scan, and a Game value is exclusively owned by its session.
// Randomness is injected through *rand.Rand so generation is reproducible
// under test.
//
// Expected gameplay failures are sentinel errors (ErrCellLocked,
// ErrInvalidState, ErrInvalidValue, ErrInvalidConfiguration) that callers
// match with errors.Is; none of them are used for control flow inside the
// backtracking search, which absorbs its dead ends internally.
package engine
