package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// Models answers the queries exposed as tools.
type Models interface {
	Regularity(args map[string]any) (service.Regularity, error)
	Steady(args map[string]any) (service.Steady, error)
	Transitions(args map[string]any, from int) (service.Transitions, error)
}

// Server exposes the board models as an MCP Server.
type Server struct {
	models    Models
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(models Models, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		models:    models,
		logger:    logger,
		mcpServer: server.NewMCPServer("boardchain-mcp", boardchain.Version),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// boardOptions are the override arguments shared by every tool.
func boardOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("size", mcp.Description("Number of board spaces (default 40)")),
		mcp.WithNumber("dice", mcp.Description("Number of six sided dice rolled per turn (default 2)")),
		mcp.WithNumber("jail", mcp.Description("Index of the jail space (default 10)")),
		mcp.WithNumber("goto_jail", mcp.Description("Index of the go-to-jail space (default 30)")),
		mcp.WithString("chance", mcp.Description("Comma separated chance space indices (default 7,22,36)")),
	}
}

func (s *Server) registerTools() {
	// TOOL: check_regularity
	regularTool := mcp.NewTool("check_regularity", append([]mcp.ToolOption{
		mcp.WithDescription("Check whether the transition matrix raised to a power is strictly positive."),
		mcp.WithNumber("power", mcp.Description("Matrix power to test (default 6)")),
		mcp.WithOutputSchema[service.Regularity](),
	}, boardOptions()...)...)
	s.mcpServer.AddTool(regularTool, mcp.NewStructuredToolHandler(s.handleCheckRegularity))

	// TOOL: steady_state
	steadyTool := mcp.NewTool("steady_state", append([]mcp.ToolOption{
		mcp.WithDescription("Certify regularity and return the long-run probability of every state."),
		mcp.WithNumber("power", mcp.Description("Matrix power used for the regularity certificate (default 6)")),
		mcp.WithOutputSchema[service.Steady](),
	}, boardOptions()...)...)
	s.mcpServer.AddTool(steadyTool, mcp.NewStructuredToolHandler(s.handleSteadyState))

	// TOOL: transition_row
	rowTool := mcp.NewTool("transition_row", append([]mcp.ToolOption{
		mcp.WithDescription("List the outgoing transition probabilities of one state."),
		mcp.WithNumber("from", mcp.Required(), mcp.Description("Source state index")),
		mcp.WithOutputSchema[service.Transitions](),
	}, boardOptions()...)...)
	s.mcpServer.AddTool(rowTool, mcp.NewStructuredToolHandler(s.handleTransitionRow))
}

func (s *Server) handleCheckRegularity(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (service.Regularity, error) {
	return s.models.Regularity(args)
}

func (s *Server) handleSteadyState(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (service.Steady, error) {
	return s.models.Steady(args)
}

func (s *Server) handleTransitionRow(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (service.Transitions, error) {
	from, ok := args["from"].(float64)
	if !ok {
		return service.Transitions{}, fmt.Errorf("from is required and must be a number")
	}
	if from != math.Trunc(from) || math.IsInf(from, 0) {
		return service.Transitions{}, fmt.Errorf("from must be a whole state index, got %v", from)
	}
	delete(args, "from")
	return s.models.Transitions(args, int(from))
}
