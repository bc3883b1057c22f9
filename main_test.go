package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "1.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}

	expectedAppName := "Sudoku Game Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("CONFIG_DIR", "")
	if got := defaultConfigDir(); got != "configs" {
		t.Errorf("Expected default config dir 'configs', got %s", got)
	}

	t.Setenv("CONFIG_DIR", "/tmp/presets")
	if got := defaultConfigDir(); got != "/tmp/presets" {
		t.Errorf("Expected config dir from env '/tmp/presets', got %s", got)
	}
}

func TestInitializeServices(t *testing.T) {
	// Create config directory if it doesn't exist for test
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	sessionsDir := filepath.Join(t.TempDir(), "sessions")

	gameService, err := initializeServices("configs", sessionsDir)
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	sessionsDir := filepath.Join(t.TempDir(), "sessions")

	_, err := initializeServices("/non/existent/path", sessionsDir)
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

// Note: We can't easily test main(), runHTTPServer(), and runStdioMCPWithInternalServer()
// without significant mocking or refactoring, as they start servers and block.
// These functions would be better tested in integration tests that start actual servers
// and test their endpoints.

func TestServiceInitialization(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Service initialization panicked: %v", r)
		}
	}()

	// Create config directory if it doesn't exist for test
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	sessionsDir := filepath.Join(t.TempDir(), "sessions")

	_, err := initializeServices("configs", sessionsDir)
	if err != nil {
		// This is expected if configs are missing, but shouldn't panic
		t.Logf("Service initialization failed as expected: %v", err)
	}
}
