package service

import (
	"context"
	"time"

	"github.com/cognitivegames/sudoku/game/engine"
)

// GameService defines all game-related operations.
type GameService interface {
	// Session management
	CreateSession(ctx context.Context, difficulty, configID string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game operations
	GetBoard(ctx context.Context, sessionID string) (*BoardView, error)
	SetValue(ctx context.Context, sessionID string, row, col, value int) (*MoveResult, error)
	ValidateMove(ctx context.Context, sessionID string, row, col, value int) (*ValidationResult, error)
	UseHint(ctx context.Context, sessionID string, row, col int) (*HintResult, error)
	CheckBoard(ctx context.Context, sessionID string) (*BoardReport, error)
	FinishGame(ctx context.Context, sessionID string, req FinishRequest) (*engine.Score, error)
	ResetGame(ctx context.Context, sessionID string) (*BoardView, error)

	// Presets
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, name string) (*engine.Settings, error)
	SaveConfig(ctx context.Context, name string, preset *engine.Settings) error
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, difficulty engine.Difficulty, configID string, settings *engine.Settings) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles difficulty preset loading.
type ConfigManager interface {
	LoadConfig(name string) (*engine.Settings, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.Settings
	SaveConfig(name string, preset *engine.Settings) error
}

// Session is one active play-through. The embedded engine.Game is the single
// owner of the board; StartedAt is the elapsed-time basis used when a caller
// finishes without supplying its own clock.
type Session struct {
	ID             string
	Game           *engine.Game
	Settings       *engine.Settings
	ConfigID       string
	CreatedAt      time.Time
	StartedAt      time.Time
	LastAccessedAt time.Time
}
