// Package service defines the synchronous procedure-call surface the
// presentation collaborators (REST API, MCP tools, websocket hub) use to
// drive games, and its implementation over a session manager and a preset
// manager.
//
// The GameService interface is the single boundary the transports depend on.
// It owns session lifecycle (a new game is a new session; the old one is
// deleted, never reused), translates requests into engine operations, and
// shapes engine state into display DTOs that never expose solution digits.
// The only way a solution digit crosses the boundary is through UseHint.
//
// All methods accept a context for parity with the transports, are safe for
// concurrent use, and report expected gameplay failures by wrapping the
// engine's sentinel errors so callers can match them with errors.Is.
package service
