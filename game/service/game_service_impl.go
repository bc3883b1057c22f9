package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/cognitivegames/sudoku/game/engine"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance.
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession starts a new game: it resolves the preset, parses the
// difficulty, and asks the session manager to generate a fresh puzzle.
func (s *gameServiceImpl) CreateSession(ctx context.Context, difficulty, configID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings *engine.Settings
	var err error
	if configID != "" {
		settings, err = s.configs.LoadConfig(configID)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				available, listErr := s.configs.ListConfigs()
				if listErr == nil && len(available) > 0 {
					var ids []string
					for _, cfg := range available {
						ids = append(ids, cfg.ConfigID)
					}
					return nil, fmt.Errorf("preset '%s' not found. Available presets: %v", configID, ids)
				}
				return nil, fmt.Errorf("preset '%s' not found. Use /api/configs to list available presets", configID)
			}
			return nil, fmt.Errorf("failed to load preset %s: %w", configID, err)
		}
	} else {
		settings = s.configs.GetDefault()
	}

	diff := engine.Medium
	if difficulty != "" {
		diff, err = engine.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
	}

	// Let the session manager generate a proper random ID
	session, err := s.sessions.Create("", diff, configID, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information.
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions.
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session.
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// GetBoard returns the current player-visible board.
func (s *gameServiceImpl) GetBoard(ctx context.Context, sessionID string) (*BoardView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return buildBoardView(sess), nil
}

// SetValue writes a digit (or 0 to erase) into a non-fixed cell and reports
// the cell's classification plus rule-level validity for live feedback.
func (s *gameServiceImpl) SetValue(ctx context.Context, sessionID string, row, col, value int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	pos := engine.Position{Row: row, Col: col}
	// Validity is computed before the write so the placed digit does not
	// mask a conflict with a pre-existing duplicate.
	valid := value == engine.Empty || sess.Game.IsValidMove(pos, value)

	if err := sess.Game.SetValue(pos, value); err != nil {
		return nil, err
	}

	result := &MoveResult{
		Position:  pos,
		Value:     value,
		CellState: sess.Game.CheckCell(pos),
		Valid:     valid,
		Complete:  sess.Game.IsComplete(),
		Correct:   sess.Game.IsCorrect(),
		Board:     buildBoardView(sess),
	}

	// Auto-save session after a successful move
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after move: %v", sessionID, err)
	}

	return result, nil
}

// ValidateMove answers whether a digit would conflict in its row, column, or
// block. Pure query, no side effect.
func (s *gameServiceImpl) ValidateMove(ctx context.Context, sessionID string, row, col, value int) (*ValidationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	pos := engine.Position{Row: row, Col: col}
	return &ValidationResult{
		Position: pos,
		Value:    value,
		Valid:    sess.Game.IsValidMove(pos, value),
	}, nil
}

// UseHint reveals the solution digit for a cell at a scoring penalty.
func (s *gameServiceImpl) UseHint(ctx context.Context, sessionID string, row, col int) (*HintResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	pos := engine.Position{Row: row, Col: col}
	digit, err := sess.Game.UseHelp(pos)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after hint: %v", sessionID, err)
	}

	return &HintResult{
		Position:  pos,
		Digit:     digit,
		HintsUsed: sess.Game.HintsUsed(),
	}, nil
}

// CheckBoard classifies every cell, the single call a renderer needs to
// color the whole grid.
func (s *gameServiceImpl) CheckBoard(ctx context.Context, sessionID string) (*BoardReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	states := sess.Game.CheckAllCells()
	report := &BoardReport{
		States:   make([][]engine.CellState, engine.GridSize),
		Counts:   make(map[engine.CellState]int, 4),
		Complete: sess.Game.IsComplete(),
		Correct:  sess.Game.IsCorrect(),
	}
	for r := 0; r < engine.GridSize; r++ {
		report.States[r] = make([]engine.CellState, engine.GridSize)
		for c := 0; c < engine.GridSize; c++ {
			report.States[r][c] = states[r][c]
			report.Counts[states[r][c]]++
		}
	}
	return report, nil
}

// FinishGame ends the session's game and computes the score. Clock readings
// missing from the request fall back to the session clock and the preset's
// time limit for the session's difficulty.
func (s *gameServiceImpl) FinishGame(ctx context.Context, sessionID string, req FinishRequest) (*engine.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	elapsed := int(time.Since(sess.StartedAt).Seconds())
	if req.ElapsedSeconds != nil {
		elapsed = *req.ElapsedSeconds
	}
	limit := sess.Settings.TimeLimit(sess.Game.Difficulty())
	if req.TimeLimitSeconds != nil {
		limit = *req.TimeLimitSeconds
	}

	score, err := sess.Game.FinishGame(elapsed, limit)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after finish: %v", sessionID, err)
	}

	return &score, nil
}

// ResetGame restores the session's board to the original puzzle and restarts
// its clock.
func (s *gameServiceImpl) ResetGame(ctx context.Context, sessionID string) (*BoardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	sess.Game.Reset()
	sess.StartedAt = time.Now()

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}

	return buildBoardView(sess), nil
}

// ListConfigs returns available difficulty presets.
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific preset.
func (s *gameServiceImpl) LoadConfig(ctx context.Context, name string) (*engine.Settings, error) {
	return s.configs.LoadConfig(name)
}

// SaveConfig saves a preset to disk.
func (s *gameServiceImpl) SaveConfig(ctx context.Context, name string, preset *engine.Settings) error {
	return s.configs.SaveConfig(name, preset)
}

// sessionInfo shapes a session into its DTO.
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigID:       sess.ConfigID,
		Difficulty:     sess.Game.Difficulty(),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Board:          buildBoardView(sess),
	}
}

// buildBoardView snapshots the player-visible state. Solution digits never
// appear here.
func buildBoardView(sess *Session) *BoardView {
	board := sess.Game.Board()
	fixed := sess.Game.Fixed()
	return &BoardView{
		Cells:            board.Rows(),
		Fixed:            fixed.Rows(),
		Difficulty:       sess.Game.Difficulty(),
		Blanks:           board.CountEmpty(),
		HintsUsed:        sess.Game.HintsUsed(),
		Complete:         sess.Game.IsComplete(),
		Correct:          sess.Game.IsCorrect(),
		Finished:         sess.Game.Finished(),
		ElapsedSeconds:   int(time.Since(sess.StartedAt).Seconds()),
		TimeLimitSeconds: sess.Settings.TimeLimit(sess.Game.Difficulty()),
	}
}
