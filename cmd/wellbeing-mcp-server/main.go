package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"wellbeing-ai/internal/app"
	"wellbeing-ai/internal/config"
	"wellbeing-ai/internal/engine"
)

// AnalyzeTextParams are the arguments of the analyze_text tool
type AnalyzeTextParams struct {
	Text string `json:"text" mcp:"the student writing to analyze for emotional risk"`
}

// SendChatParams are the arguments of the send_chat_message tool
type SendChatParams struct {
	SessionID string `json:"session_id,omitempty" mcp:"chat session identifier (default: 'mcp')"`
	Message   string `json:"message" mcp:"the student's chat message"`
}

// RecentHistoryParams are the arguments of the recent_history tool
type RecentHistoryParams struct {
	Kind  string `json:"kind" mcp:"which records to return: 'assignments' or 'chats'"`
	Limit int    `json:"limit,omitempty" mcp:"maximum number of records (default: 10)"`
}

// WellbeingMCPServer exposes the wellbeing engine as MCP tools
type WellbeingMCPServer struct {
	engine *engine.Engine
}

func (s *WellbeingMCPServer) AnalyzeText(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[AnalyzeTextParams]) (*mcp.CallToolResultFor[any], error) {
	res, err := s.engine.AnalyzeAssignment(ctx, params.Arguments.Text)
	if err != nil {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("❌ Analysis failed: %v", err)},
			},
		}, nil
	}
	payload, _ := json.MarshalIndent(map[string]any{
		"id":                res.Record.ID,
		"detected_language": res.Record.DetectedLanguage,
		"analysis":          res.Record.Analysis,
		"urgent":            res.Urgent,
	}, "", "  ")
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
	}, nil
}

func (s *WellbeingMCPServer) SendChatMessage(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[SendChatParams]) (*mcp.CallToolResultFor[any], error) {
	sessionID := params.Arguments.SessionID
	if sessionID == "" {
		sessionID = "mcp"
	}
	res, err := s.engine.SendChatMessage(ctx, sessionID, params.Arguments.Message)
	if err != nil {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("❌ Chat failed: %v", err)},
			},
		}, nil
	}
	payload, _ := json.MarshalIndent(map[string]any{
		"id":     res.Exchange.ID,
		"reply":  res.Exchange.ReplyLocal,
		"urgent": res.Exchange.UrgentFlag,
	}, "", "  ")
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
	}, nil
}

func (s *WellbeingMCPServer) RecentHistory(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[RecentHistoryParams]) (*mcp.CallToolResultFor[any], error) {
	limit := params.Arguments.Limit
	if limit <= 0 {
		limit = 10
	}

	var payload []byte
	switch params.Arguments.Kind {
	case "assignments":
		recs, err := s.engine.RecentAssignments(limit)
		if err != nil {
			return nil, err
		}
		payload, _ = json.MarshalIndent(recs, "", "  ")
	case "chats":
		recs, err := s.engine.RecentChats(limit)
		if err != nil {
			return nil, err
		}
		payload, _ = json.MarshalIndent(recs, "", "  ")
	default:
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "❌ kind must be 'assignments' or 'chats'"},
			},
		}, nil
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
	}, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ failed to build app: %v", err)
	}

	log.Printf("🚀 Starting Wellbeing MCP Server (strategy=%s)", cfg.AnalysisStrategy)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "wellbeing-ai-mcp",
		Version: "1.0.0",
	}, nil)

	ws := &WellbeingMCPServer{engine: a.Engine}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Analyzes student writing and returns a risk tier, rationale and urgent flag",
	}, ws.AnalyzeText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_chat_message",
		Description: "Sends a student chat message and returns the supportive reply with an urgent indicator",
	}, ws.SendChatMessage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_history",
		Description: "Returns recent assignment analyses or chat exchanges from the record store",
	}, ws.RecentHistory)

	log.Printf("📋 Registered 3 tools: analyze_text, send_chat_message, recent_history")
	log.Printf("🔗 Starting server on stdin/stdout...")

	transport := mcp.NewStdioTransport()
	if err := server.Run(context.Background(), transport); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
