// Package mcp provides an MCP (Model Context Protocol) interface to the
// Sudoku game server.
//
// The package implements a thin client that proxies all tool calls to the
// REST API server, so MCP-driven agents and human REST clients share the
// same sessions and see the same state.
//
// Available Tools:
//   - create_session: start a new game at a chosen difficulty
//   - list_sessions / get_session: session management
//   - board_state: render the current board
//   - set_value: write or erase a digit (with an intent explanation)
//   - validate_move: dry-run rule check without writing
//   - hint: reveal the solution digit for a cell
//   - check_board: classify every cell
//   - finish_game: end the game and compute the score
//   - reset_game: restore the original puzzle
//   - list_configs: list difficulty presets
//   - game_instructions: comprehensive rules and strategy notes
//
// Board rendering uses an ASCII grid with '.' for empty cells and box
// separators every three rows and columns.
package mcp
