package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cognitivegames/sudoku/game/engine"
	"github.com/cognitivegames/sudoku/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	gen      *engine.Generator
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
		gen:      engine.NewSeededGenerator(21),
	}
}

func (m *MockSessionManager) Create(id string, difficulty engine.Difficulty, configID string, settings *engine.Settings) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	solution := m.gen.GenerateCompleteBoard()
	puzzle, _, err := m.gen.CreatePuzzle(solution, settings.Blanks(difficulty))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &service.Session{
		ID:             id,
		Game:           engine.NewGame(puzzle, solution, difficulty),
		Settings:       settings,
		ConfigID:       configID,
		CreatedAt:      now,
		StartedAt:      now,
		LastAccessedAt: now,
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	session, exists := m.sessions[id]
	if !exists {
		return errors.New("session not found")
	}
	session.LastAccessedAt = time.Now()
	return nil
}

func (m *MockSessionManager) Save(id string) error {
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	presets map[string]*engine.Settings
}

func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		presets: map[string]*engine.Settings{
			"classic": engine.DefaultSettings(),
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.Settings, error) {
	preset, exists := m.presets[name]
	if !exists {
		return nil, fmt.Errorf("preset not found: %s", name)
	}
	return preset, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.presets))
	for id, preset := range m.presets {
		result = append(result, &service.ConfigInfo{
			Filename:    id + ".json",
			ConfigID:    id,
			Name:        preset.Name,
			Description: preset.Description,
			BlankCounts: preset.BlankCounts,
			TimeLimits:  preset.TimeLimits,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.Settings {
	return m.presets["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, preset *engine.Settings) error {
	m.presets[name] = preset
	return nil
}

func newTestService() (service.GameService, *MockSessionManager) {
	sessions := NewMockSessionManager()
	return service.NewGameService(sessions, NewMockConfigManager()), sessions
}

// firstEmpty returns the first empty cell of a session's board.
func firstEmpty(t *testing.T, sess *service.Session) engine.Position {
	t.Helper()
	board := sess.Game.Board()
	for r := 0; r < engine.GridSize; r++ {
		for c := 0; c < engine.GridSize; c++ {
			if board[r][c] == engine.Empty {
				return engine.Position{Row: r, Col: c}
			}
		}
	}
	t.Fatal("board has no empty cell")
	return engine.Position{}
}

// firstFixed returns the first fixed cell of a session's board.
func firstFixed(t *testing.T, sess *service.Session) engine.Position {
	t.Helper()
	fixed := sess.Game.Fixed()
	for r := 0; r < engine.GridSize; r++ {
		for c := 0; c < engine.GridSize; c++ {
			if fixed[r][c] {
				return engine.Position{Row: r, Col: c}
			}
		}
	}
	t.Fatal("board has no fixed cell")
	return engine.Position{}
}

func TestGameService_CreateSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("default difficulty and preset", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "", "")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.Difficulty != engine.Medium {
			t.Errorf("Expected medium difficulty by default, got %s", info.Difficulty)
		}
		if info.Board.Blanks != 45 {
			t.Errorf("Expected 45 blanks for medium, got %d", info.Board.Blanks)
		}
	})

	t.Run("explicit difficulty", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "hard", "classic")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.Board.Blanks != 55 {
			t.Errorf("Expected 55 blanks for hard, got %d", info.Board.Blanks)
		}
		if info.Board.TimeLimitSeconds != 3000 {
			t.Errorf("Expected 3000s limit for hard, got %d", info.Board.TimeLimitSeconds)
		}
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		if _, err := svc.CreateSession(ctx, "nightmare", ""); err == nil {
			t.Error("Expected error for unknown difficulty")
		}
	})

	t.Run("unknown preset lists alternatives", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "easy", "nope")
		if err == nil {
			t.Fatal("Expected error for unknown preset")
		}
		if !strings.Contains(err.Error(), "classic") {
			t.Errorf("Expected available presets in error, got: %v", err)
		}
	})
}

func TestGameService_SetValue(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "easy", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess, _ := sessions.Get(info.ID)

	t.Run("write into empty cell", func(t *testing.T) {
		pos := firstEmpty(t, sess)
		result, err := svc.SetValue(ctx, info.ID, pos.Row, pos.Col, 4)
		if err != nil {
			t.Fatalf("Failed to set value: %v", err)
		}
		if result.Value != 4 {
			t.Errorf("Expected value 4, got %d", result.Value)
		}
		if result.Board.Cells[pos.Row][pos.Col] != 4 {
			t.Error("Expected board view to reflect the write")
		}
	})

	t.Run("fixed cell rejected", func(t *testing.T) {
		pos := firstFixed(t, sess)
		_, err := svc.SetValue(ctx, info.ID, pos.Row, pos.Col, 4)
		if !errors.Is(err, engine.ErrCellLocked) {
			t.Errorf("Expected ErrCellLocked, got %v", err)
		}
	})

	t.Run("invalid digit rejected", func(t *testing.T) {
		pos := firstEmpty(t, sess)
		_, err := svc.SetValue(ctx, info.ID, pos.Row, pos.Col, 10)
		if !errors.Is(err, engine.ErrInvalidValue) {
			t.Errorf("Expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("rule-breaking digit still written", func(t *testing.T) {
		pos := firstEmpty(t, sess)
		// Pick a digit already present in the row so the move conflicts.
		conflict := 0
		board := sess.Game.Board()
		for c := 0; c < engine.GridSize; c++ {
			if board[pos.Row][c] != engine.Empty {
				conflict = board[pos.Row][c]
				break
			}
		}
		if conflict == 0 {
			t.Skip("row has no filled cell to conflict with")
		}

		result, err := svc.SetValue(ctx, info.ID, pos.Row, pos.Col, conflict)
		if err != nil {
			t.Fatalf("Expected the write to succeed: %v", err)
		}
		if result.Valid {
			t.Error("Expected Valid=false for a conflicting digit")
		}
		if sess.Game.Value(pos) != conflict {
			t.Error("Expected conflicting digit to land on the board")
		}
	})

	t.Run("missing session", func(t *testing.T) {
		if _, err := svc.SetValue(ctx, "ghost", 0, 0, 1); err == nil {
			t.Error("Expected error for missing session")
		}
	})

	if sessions.saves == 0 {
		t.Error("Expected moves to trigger session saves")
	}
}

func TestGameService_ValidateMove(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "medium", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess, _ := sessions.Get(info.ID)

	pos := firstEmpty(t, sess)
	before := sess.Game.Board()

	result, err := svc.ValidateMove(ctx, info.ID, pos.Row, pos.Col, 3)
	if err != nil {
		t.Fatalf("Failed to validate move: %v", err)
	}
	if result.Position != pos || result.Value != 3 {
		t.Errorf("Unexpected echo: %+v", result)
	}
	if sess.Game.Board() != before {
		t.Error("ValidateMove must not modify the board")
	}
}

func TestGameService_UseHint(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "medium", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess, _ := sessions.Get(info.ID)
	pos := firstEmpty(t, sess)

	result, err := svc.UseHint(ctx, info.ID, pos.Row, pos.Col)
	if err != nil {
		t.Fatalf("Failed to use hint: %v", err)
	}
	if result.Digit < 1 || result.Digit > 9 {
		t.Errorf("Expected revealed digit 1-9, got %d", result.Digit)
	}
	if result.HintsUsed != 1 {
		t.Errorf("Expected 1 hint used, got %d", result.HintsUsed)
	}
	if sess.Game.Value(pos) != engine.Empty {
		t.Error("Hint must not write the revealed digit")
	}
}

func TestGameService_CheckBoard(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "easy", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	report, err := svc.CheckBoard(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to check board: %v", err)
	}
	if report.Counts[engine.CellEmpty] != 35 {
		t.Errorf("Expected 35 empty cells on a fresh easy board, got %d", report.Counts[engine.CellEmpty])
	}
	if report.Counts[engine.CellFixed] != 46 {
		t.Errorf("Expected 46 fixed cells, got %d", report.Counts[engine.CellFixed])
	}
	if report.Complete {
		t.Error("Fresh board must not be complete")
	}
}

func TestGameService_FinishGame(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "easy", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess, _ := sessions.Get(info.ID)

	// Solve the board outright so the breakdown has no errors or empties.
	board := sess.Game.Board()
	fixed := sess.Game.Fixed()
	for r := 0; r < engine.GridSize; r++ {
		for c := 0; c < engine.GridSize; c++ {
			if !fixed[r][c] && board[r][c] == engine.Empty {
				hint, err := svc.UseHint(ctx, info.ID, r, c)
				if err != nil {
					t.Fatalf("Failed to reveal (%d,%d): %v", r, c, err)
				}
				if _, err := svc.SetValue(ctx, info.ID, r, c, hint.Digit); err != nil {
					t.Fatalf("Failed to set (%d,%d): %v", r, c, err)
				}
			}
		}
	}

	elapsed, limit := 100, 1800
	score, err := svc.FinishGame(ctx, info.ID, service.FinishRequest{
		ElapsedSeconds:   &elapsed,
		TimeLimitSeconds: &limit,
	})
	if err != nil {
		t.Fatalf("Failed to finish game: %v", err)
	}

	// 35 hints at 10 points each against a 340-point time bonus.
	want := 1000 + (1800-100)/5 - 35*10
	if score.Points != want {
		t.Errorf("Expected %d points, got %d", want, score.Points)
	}
	if score.Errors != 0 || score.Empties != 0 {
		t.Errorf("Expected clean breakdown, got errors=%d empties=%d", score.Errors, score.Empties)
	}

	t.Run("second finish rejected", func(t *testing.T) {
		_, err := svc.FinishGame(ctx, info.ID, service.FinishRequest{})
		if !errors.Is(err, engine.ErrInvalidState) {
			t.Errorf("Expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("moves rejected after finish", func(t *testing.T) {
		_, err := svc.SetValue(ctx, info.ID, 0, 0, 1)
		if !errors.Is(err, engine.ErrInvalidState) {
			t.Errorf("Expected ErrInvalidState, got %v", err)
		}
	})
}

func TestGameService_FinishGame_DefaultsFromSessionClock(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "medium", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess, _ := sessions.Get(info.ID)

	// Backdate the session clock so the defaulted elapsed time is known.
	sess.StartedAt = time.Now().Add(-400 * time.Second)

	score, err := svc.FinishGame(ctx, info.ID, service.FinishRequest{})
	if err != nil {
		t.Fatalf("Failed to finish game: %v", err)
	}
	if score.TimeLimitSeconds != 2400 {
		t.Errorf("Expected medium preset limit 2400, got %d", score.TimeLimitSeconds)
	}
	if score.ElapsedSeconds < 400 || score.ElapsedSeconds > 405 {
		t.Errorf("Expected elapsed near 400s, got %d", score.ElapsedSeconds)
	}
}

func TestGameService_ResetGame(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "medium", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess, _ := sessions.Get(info.ID)

	pos := firstEmpty(t, sess)
	if _, err := svc.SetValue(ctx, info.ID, pos.Row, pos.Col, 7); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	if _, err := svc.UseHint(ctx, info.ID, pos.Row, pos.Col); err != nil {
		t.Fatalf("Failed to use hint: %v", err)
	}

	view, err := svc.ResetGame(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to reset game: %v", err)
	}
	if view.Cells[pos.Row][pos.Col] != engine.Empty {
		t.Error("Expected reset to clear the player's digit")
	}
	if view.HintsUsed != 0 {
		t.Errorf("Expected hint counter cleared, got %d", view.HintsUsed)
	}
}

func TestGameService_SessionLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "easy", "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 session, got %d", len(list))
	}

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("Expected session %s, got %s", info.ID, got.ID)
	}

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); err == nil {
		t.Error("Expected error after delete")
	}
}

func TestGameService_Configs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Expected [classic], got %+v", configs)
	}

	preset, err := svc.LoadConfig(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if preset.Blanks(engine.Easy) != 35 {
		t.Errorf("Expected 35 easy blanks, got %d", preset.Blanks(engine.Easy))
	}

	custom := engine.DefaultSettings()
	custom.Name = "Custom"
	if err := svc.SaveConfig(ctx, "custom", custom); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	if _, err := svc.LoadConfig(ctx, "custom"); err != nil {
		t.Errorf("Expected saved config to load: %v", err)
	}
}
