package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cognitivegames/sudoku/game/engine"
	"github.com/cognitivegames/sudoku/game/service"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Manager handles difficulty preset loading and caching.
type Manager struct {
	presetDir     string
	defaultPreset *engine.Settings
	presets       map[string]*engine.Settings
	mu            sync.RWMutex
}

// NewManager creates a preset manager rooted at presetDir.
func NewManager(presetDir string) (*Manager, error) {
	if _, err := os.Stat(presetDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
	}

	m := &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*engine.Settings),
	}

	if err := m.loadDefaultPreset(); err != nil {
		return nil, fmt.Errorf("failed to load default preset: %w", err)
	}

	return m, nil
}

// LoadConfig loads a preset by name (filename without the .json extension).
func (m *Manager) LoadConfig(name string) (*engine.Settings, error) {
	m.mu.RLock()
	if preset, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if preset, exists := m.presets[name]; exists {
		return preset, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.presetDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset engine.Settings
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	if err := engine.ValidateSettings(&preset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	m.presets[name] = &preset
	return &preset, nil
}

// ListConfigs returns information about all available presets.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var infos []*service.ConfigInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		preset, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid presets
			continue
		}

		infos = append(infos, &service.ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    name,
			Name:        preset.Name,
			Description: preset.Description,
			BlankCounts: preset.BlankCounts,
			TimeLimits:  preset.TimeLimits,
		})
	}

	return infos, nil
}

// GetDefault returns the default preset.
func (m *Manager) GetDefault() *engine.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPreset
}

// SetDefault sets the default preset by name.
func (m *Manager) SetDefault(name string) error {
	preset, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultPreset = preset
	return nil
}

// SaveConfig validates and writes a preset to disk, updating the cache.
func (m *Manager) SaveConfig(name string, preset *engine.Settings) error {
	if err := engine.ValidateSettings(preset); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.presetDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	m.mu.Lock()
	m.presets[name] = preset
	m.mu.Unlock()

	return nil
}

// RefreshCache drops every cached preset and reloads the default.
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.presets = make(map[string]*engine.Settings)
	m.mu.Unlock()

	return m.loadDefaultPreset()
}

// loadDefaultPreset prefers classic.json, then the first available preset,
// then the engine's built-in defaults. Must be called without the lock held.
func (m *Manager) loadDefaultPreset() error {
	preset, err := m.LoadConfig("classic")
	if err != nil {
		presets, listErr := m.ListConfigs()
		if listErr == nil && len(presets) > 0 {
			preset, err = m.LoadConfig(strings.TrimSuffix(presets[0].Filename, ".json"))
		}
		if err != nil {
			preset = engine.DefaultSettings()
		}
	}

	m.mu.Lock()
	m.defaultPreset = preset
	m.mu.Unlock()
	return nil
}
