// Package api provides the REST API server for the Sudoku game.
//
// The api package implements:
//   - RESTful session management endpoints
//   - Board reads and cell writes
//   - Move validation, hints, and cell classification
//   - Game completion and scoring
//   - Difficulty preset endpoints
//   - WebSocket upgrade for real-time board updates
//
// Endpoints:
//
//	POST   /api/sessions                  create a session
//	GET    /api/sessions                  list sessions
//	GET    /api/sessions/{id}             session info
//	DELETE /api/sessions/{id}             delete a session
//	GET    /api/sessions/{id}/board       player-visible board
//	POST   /api/sessions/{id}/cells       write or erase a digit
//	POST   /api/sessions/{id}/validate    dry-run rule check
//	POST   /api/sessions/{id}/hint        reveal a solution digit
//	GET    /api/sessions/{id}/check       classify every cell
//	POST   /api/sessions/{id}/finish      end the game and score it
//	POST   /api/sessions/{id}/reset       restore the original puzzle
//	GET    /api/configs                   list difficulty presets
//	POST   /api/configs                   save a preset
//	GET    /api/configs/{name}            load a preset
//	GET    /ws?session={id}               WebSocket upgrade
//	GET    /health                        health check
//
// Error Handling:
//
// Errors are returned as JSON objects with an "error" field. Game rule
// violations (locked cells, finished games) map to 409 Conflict, malformed
// input to 400 Bad Request, and unknown sessions or presets to 404 Not Found.
package api
