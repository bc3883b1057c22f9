package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cognitivegames/sudoku/game/engine"
	"github.com/cognitivegames/sudoku/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sudoku Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sudoku Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Fill the 9x9 grid so every row, column, and 3x3 box contains the digits 1-9 exactly once.

AVAILABLE TOOLS:
- create_session: Start a new game (easy/medium/hard)
- board_state: Render the current board
- set_value: Write a digit into a cell (0 erases) - requires intent explanation
- validate_move: Check a digit against the rules without writing it
- hint: Reveal the solution digit for a cell (scoring penalty)
- check_board: Classify every cell (fixed/empty/correct/incorrect)
- finish_game: End the game and compute the score
- reset_game: Restore the original puzzle
- get_session / list_sessions: Session management
- list_configs: List difficulty presets
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on set_value serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional difficulty and preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"difficulty": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"easy", "medium", "hard"},
					"description": "Difficulty level (default: medium)",
				},
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset to use for blank counts and time limits (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_state",
		Description: "Get the current board rendered as an ASCII grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleBoardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_value",
		Description: "Write a digit into a cell. Value 0 erases the cell. Fixed cells cannot be written. Rule-breaking digits are still written; the response reports validity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row index (0-8, top to bottom)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column index (0-8, left to right)",
				},
				"value": map[string]interface{}{
					"type":        "integer",
					"description": "Digit 1-9, or 0 to erase",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "row", "col", "value"},
		},
	}, c.handleSetValue)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_move",
		Description: "Check whether a digit would conflict with its row, column, or 3x3 box. Does not modify the board.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row index (0-8)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column index (0-8)",
				},
				"value": map[string]interface{}{
					"type":        "integer",
					"description": "Digit 1-9 to test",
				},
			},
			Required: []string{"session_id", "row", "col", "value"},
		},
	}, c.handleValidateMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "hint",
		Description: "Reveal the solution digit for a cell. Costs 10 points at scoring time. The digit is not written to the board.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row index (0-8)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column index (0-8)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleHint)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_board",
		Description: "Classify every cell as fixed, empty, correct, or incorrect",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleCheckBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "finish_game",
		Description: "End the game and compute the final score with its breakdown",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"elapsed_seconds": map[string]interface{}{
					"type":        "integer",
					"description": "Elapsed play time in seconds (default: session clock)",
				},
				"time_limit_seconds": map[string]interface{}{
					"type":        "integer",
					"description": "Time limit in seconds (default: preset limit for the difficulty)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleFinishGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Restore the board to the original puzzle and restart the clock",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available difficulty presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	difficulty, _ := args["difficulty"].(string)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if difficulty != "" {
		body["difficulty"] = difficulty
	}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nDifficulty: %s\n\n%s",
		session.ID, session.Difficulty, formatBoard(session.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		blanks := 0
		if s.Board != nil {
			blanks = s.Board.Blanks
		}
		result += fmt.Sprintf("- %s (Difficulty: %s, Empty cells: %d, Created: %s)\n",
			s.ID, s.Difficulty, blanks, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleBoardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var board service.BoardView
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/board", sessionID), nil, &board)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoard(&board)), nil
}

func (c *Client) handleSetValue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := intArg(args, "row")
	col := intArg(args, "col")
	value := intArg(args, "value")
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]int{
		"row":   row,
		"col":   col,
		"value": value,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/cells", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleValidateMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]int{
		"row":   intArg(args, "row"),
		"col":   intArg(args, "col"),
		"value": intArg(args, "value"),
	}

	var result service.ValidationResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/validate", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	verdict := "✓ no conflict in row, column, or box"
	if !result.Valid {
		verdict = "✗ conflicts with an existing digit"
	}
	response := fmt.Sprintf("Digit %d at (%d,%d): %s",
		result.Value, result.Position.Row, result.Position.Col, verdict)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]int{
		"row": intArg(args, "row"),
		"col": intArg(args, "col"),
	}

	var result service.HintResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/hint", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Solution digit at (%d,%d) is %d\nHints used: %d (10 points each at scoring)\nThe digit was NOT written; use set_value to place it.",
		result.Position.Row, result.Position.Col, result.Digit, result.HintsUsed)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleCheckBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var report service.BoardReport
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/check", sessionID), nil, &report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoardReport(&report)), nil
}

func (c *Client) handleFinishGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]interface{}{}
	if elapsed, ok := args["elapsed_seconds"].(float64); ok {
		body["elapsed_seconds"] = int(elapsed)
	}
	if limit, ok := args["time_limit_seconds"].(float64); ok {
		body["time_limit_seconds"] = int(limit)
	}

	var score engine.Score
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/finish", sessionID), body, &score)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatScore(&score)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string             `json:"message"`
		Board   *service.BoardView `json:"board"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatBoard(response.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (id: %s)\n  %s\n  Blanks: easy=%d medium=%d hard=%d\n  Time limits: easy=%ds medium=%ds hard=%ds\n\n",
			config.Name, config.ConfigID, config.Description,
			config.BlankCounts[engine.Easy], config.BlankCounts[engine.Medium], config.BlankCounts[engine.Hard],
			config.TimeLimits[engine.Easy], config.TimeLimits[engine.Medium], config.TimeLimits[engine.Hard])
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 Sudoku Game - Complete Instructions

GAME OBJECTIVE:
Fill the 9x9 grid so that every row, every column, and every 3x3 box contains
the digits 1 through 9 exactly once.

BOARD COORDINATES:
- Rows and columns are 0-based: row 0 is the top row, col 0 is the leftmost column
- Boxes are the nine 3x3 regions; a cell's box is (row/3, col/3)

CELL TYPES:
- Fixed: given clues from the puzzle. They can never be changed.
- Empty: rendered as '.' in the board display. Fill these in.
- Player digits: anything you wrote with set_value. Erase with value 0.

MOVE SEMANTICS (IMPORTANT):
- set_value WRITES the digit even when it breaks the one-per-row/column/box
  rule. The response carries valid=true/false as feedback only.
- Use validate_move first when you want a dry-run rule check.
- Writing to a fixed cell is an error and changes nothing.

HINTS:
- hint reveals the true solution digit for a cell but does NOT write it.
- Each hint costs 10 points at scoring time, even for the same cell twice.
- Follow up with set_value to actually place the revealed digit.

CHECKING PROGRESS:
- check_board classifies every cell: fixed, empty, correct, incorrect.
- "correct" means the digit matches the hidden solution, not merely that it
  breaks no rule.

SCORING (on finish_game):
  1000 base
  + (time remaining / 5) time bonus, zero when over the limit
  - 5 per incorrect cell
  - 10 per hint used
  - 3 per empty cell
The score can go negative. Finishing is one-way: no moves or hints afterward.

DIFFICULTY LEVELS:
- easy: 35 empty cells, 1800s time limit
- medium: 45 empty cells, 2400s time limit
- hard: 55 empty cells, 3000s time limit
(the classic preset; other presets may differ)

🤖 AI AGENT STRATEGY NOTES:
1. Start with check_board to see the layout, then scan for naked singles:
   cells whose row+column+box already contain 8 distinct digits.
2. validate_move is free; use it to prune candidates without penalty.
3. An incorrect cell costs 5 but an empty cell costs only 3: leave a cell
   empty rather than guessing when no candidates remain.
4. Hints are expensive (10) - reserve them for cells that unblock whole
   regions.
5. Finish before the time limit to collect the time bonus; it decays by one
   point per 5 seconds.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent boards and clocks
- reset_game restores the original puzzle and clears the hint counter

Good luck! 🧩`

	return mcp.NewToolResultText(instructions), nil
}

// intArg reads an integer tool argument, accepting JSON's float64 encoding.
func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return 0
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nDifficulty: %s\nCreated: %s\n\n%s",
		session.ID, session.Difficulty,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatBoard(session.Board))
}

// formatBoard renders the 9x9 grid with '.' for empty cells and box
// separators every three rows and columns.
func formatBoard(board *service.BoardView) string {
	if board == nil {
		return "No board available"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Difficulty: %s | Empty: %d | Hints used: %d | Elapsed: %ds/%ds\n\n",
		board.Difficulty, board.Blanks, board.HintsUsed,
		board.ElapsedSeconds, board.TimeLimitSeconds))

	for r := 0; r < engine.GridSize; r++ {
		if r > 0 && r%engine.BoxSize == 0 {
			result.WriteString("------+-------+------\n")
		}
		for c := 0; c < engine.GridSize; c++ {
			if c > 0 && c%engine.BoxSize == 0 {
				result.WriteString("| ")
			}
			v := board.Cells[r][c]
			if v == engine.Empty {
				result.WriteString(". ")
			} else {
				result.WriteString(fmt.Sprintf("%d ", v))
			}
		}
		result.WriteString("\n")
	}

	if board.Finished {
		result.WriteString("\nGame finished.")
	} else if board.Complete && board.Correct {
		result.WriteString("\n🎉 Board solved! Call finish_game to collect your score.")
	} else if board.Complete {
		result.WriteString("\nBoard is full but contains mistakes. Use check_board to find them.")
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder

	action := fmt.Sprintf("Wrote %d", result.Value)
	if result.Value == engine.Empty {
		action = "Erased"
	}
	b.WriteString(fmt.Sprintf("%s at (%d,%d)\n", action, result.Position.Row, result.Position.Col))

	if result.Value != engine.Empty {
		if result.Valid {
			b.WriteString("✓ No rule conflict\n")
		} else {
			b.WriteString("✗ Conflicts with an existing digit in its row, column, or box\n")
		}
	}
	b.WriteString(fmt.Sprintf("Cell state: %s\n", result.CellState))

	if result.Complete && result.Correct {
		b.WriteString("\n🎉 Board solved! Call finish_game to collect your score.")
	} else if result.Complete {
		b.WriteString("\nBoard is full but contains mistakes.")
	}

	b.WriteString("\n" + formatBoard(result.Board))
	return b.String()
}

// formatBoardReport renders each cell's classification as a single character:
// F fixed, . empty, o correct, x incorrect.
func formatBoardReport(report *service.BoardReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Cells: %d fixed, %d empty, %d correct, %d incorrect\n",
		report.Counts[engine.CellFixed], report.Counts[engine.CellEmpty],
		report.Counts[engine.CellCorrect], report.Counts[engine.CellIncorrect]))
	b.WriteString(fmt.Sprintf("Complete: %t | Correct: %t\n\n", report.Complete, report.Correct))

	for r := 0; r < len(report.States); r++ {
		if r > 0 && r%engine.BoxSize == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < len(report.States[r]); c++ {
			if c > 0 && c%engine.BoxSize == 0 {
				b.WriteString("| ")
			}
			switch report.States[r][c] {
			case engine.CellFixed:
				b.WriteString("F ")
			case engine.CellEmpty:
				b.WriteString(". ")
			case engine.CellCorrect:
				b.WriteString("o ")
			case engine.CellIncorrect:
				b.WriteString("x ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatScore(score *engine.Score) string {
	return fmt.Sprintf(`Final Score: %d

Breakdown:
  Base:        1000
  Time bonus:  +%d (elapsed %ds of %ds)
  Errors:      -%d (%d incorrect cells × 5)
  Hints:       -%d (%d hints × 10)
  Empties:     -%d (%d empty cells × 3)
  Correct non-fixed cells: %d`,
		score.Points,
		score.TimeBonus, score.ElapsedSeconds, score.TimeLimitSeconds,
		score.Errors*5, score.Errors,
		score.HintsUsed*10, score.HintsUsed,
		score.Empties*3, score.Empties,
		score.Correct)
}
