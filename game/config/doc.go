// Package config loads and caches difficulty presets from JSON files.
//
// A preset (engine.Settings) names the blank-cell count and time limit per
// difficulty. The Manager reads presets from a directory, validates them
// through the engine, caches them, and serves a default: the "classic"
// preset file when present, otherwise the engine's built-in defaults.
//
// Preset files are plain JSON:
//
//	{
//	  "name": "Classic",
//	  "description": "Standard blank counts and time limits",
//	  "blank_counts": {"easy": 35, "medium": 45, "hard": 55},
//	  "time_limits": {"easy": 1800, "medium": 2400, "hard": 3000}
//	}
package config
