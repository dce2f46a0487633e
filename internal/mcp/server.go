// Package mcp exposes the debate engine as Model Context Protocol tools
// over stdio, so MCP-capable hosts can start and steer debates.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/debate"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Server wraps the engine behind MCP tool handlers.
type Server struct {
	engine *debate.Engine
	logger *logging.Logger
	server *mcp.Server
}

// NewServer builds the MCP server with the debate tools registered.
func NewServer(engine *debate.Engine, version string, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine: engine,
		logger: logger,
		server: mcp.NewServer(&mcp.Implementation{Name: "debate-ai", Version: version}, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until the context is cancelled or the host
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server listening on stdio")
	return s.server.Run(ctx, mcp.NewStdioTransport())
}

type startDebateArgs struct {
	Question   string  `json:"question"`
	Context    string  `json:"context,omitempty"`
	RoundLimit int     `json:"round_limit,omitempty"`
	BudgetUSD  float64 `json:"budget_usd,omitempty"`
	Strategy   string  `json:"strategy,omitempty"`
}

type resumeDebateArgs struct {
	SessionID   string `json:"session_id"`
	Mode        string `json:"mode"`
	Participant string `json:"participant,omitempty"`
}

type sessionArgs struct {
	SessionID string `json:"session_id"`
}

type transcriptArgs struct {
	SessionID string `json:"session_id"`
	Format    string `json:"format,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "start_debate",
		Description: "Start a multi-round AI debate on a question and run it to consensus or deadlock. Returns the result with round history, costs, and final answer or disagreement report.",
	}, s.startDebate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resume_debate",
		Description: "Resume a deadlocked or paused debate. Modes: two_rounds, until_consensus, accept_answer (requires participant), synthesize.",
	}, s.resumeDebate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_disagreement_report",
		Description: "Fetch the disagreement analysis (core conflict, type, resolvability, key points) for a debate's last round.",
	}, s.getReport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the round-by-round transcript of a debate, in markdown or plain format.",
	}, s.getTranscript)
}

func (s *Server) startDebate(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[startDebateArgs]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	result, err := s.engine.StartDebate(ctx, debate.StartRequest{
		Question:   args.Question,
		Context:    args.Context,
		RoundLimit: args.RoundLimit,
		BudgetUSD:  args.BudgetUSD,
		Strategy:   core.Strategy(args.Strategy),
	})
	if err != nil {
		// A hard budget stop still carries the collected rounds.
		if result != nil {
			return jsonResult(map[string]interface{}{"error": err.Error(), "result": result})
		}
		return errorResult(err), nil
	}
	return jsonResult(result)
}

func (s *Server) resumeDebate(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[resumeDebateArgs]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	result, err := s.engine.Resume(ctx, core.SessionID(args.SessionID), core.ResumeInstruction{
		Mode:        core.ResumeMode(args.Mode),
		Participant: args.Participant,
	})
	if err != nil {
		if result != nil {
			return jsonResult(map[string]interface{}{"error": err.Error(), "result": result})
		}
		return errorResult(err), nil
	}
	return jsonResult(result)
}

func (s *Server) getReport(_ context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[sessionArgs]) (*mcp.CallToolResultFor[any], error) {
	report, err := s.engine.Report(core.SessionID(params.Arguments.SessionID))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(report)
}

func (s *Server) getTranscript(_ context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[transcriptArgs]) (*mcp.CallToolResultFor[any], error) {
	session, err := s.engine.Store().Get(core.SessionID(params.Arguments.SessionID))
	if err != nil {
		return errorResult(err), nil
	}
	transcript, err := debate.RenderTranscript(session, debate.TranscriptFormat(params.Arguments.Format))
	if err != nil {
		return errorResult(err), nil
	}
	return textResult(transcript), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResultFor[any], error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResultFor[any] {
	result := textResult(err.Error())
	result.IsError = true
	return result
}
