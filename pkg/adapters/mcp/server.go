package mcp

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/aretw0/jumptable"
	"github.com/aretw0/jumptable/internal/logging"
	"github.com/aretw0/jumptable/internal/presentation/graph"
	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GraphURI is the resource holding the Mermaid diagram of the menu.
const GraphURI = "jumptable://graph"

// StructureResponse aligns with the HTTP Structure schema.
type StructureResponse struct {
	Kind  string   `json:"kind" jsonschema_description:"stack, queue or list"`
	Items []string `json:"items" jsonschema_description:"Stored items, bottom of the stack or front of the queue first"`
	Line  string   `json:"line" jsonschema_description:"The persisted text form"`
}

// ShowResponse is returned by show_structures.
type ShowResponse struct {
	Structures []StructureResponse `json:"structures"`
}

// ResetResponse is returned by reset_structure.
type ResetResponse struct {
	Reset []string `json:"reset" jsonschema_description:"Kinds that were cleared"`
}

type kindArgs struct {
	Kind string `json:"kind"`
}

// Server exposes a Store as an MCP server. Like the HTTP server it only
// reads and clears saved data; the menu itself stays local.
type Server struct {
	store     ports.Store
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		store:     store,
		logger:    logger,
		mcpServer: server.NewMCPServer("jumptable-mcp", strings.TrimSpace(jumptable.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Listen serves JSON-RPC over in and out until ctx is done or in is closed.
// Transport errors go to errOut so they never corrupt the protocol stream.
func (s *Server) Listen(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(log.New(errOut, "", log.LstdFlags))
	return stdio.Listen(ctx, in, out)
}

func (s *Server) registerTools() {
	kinds := make([]string, len(domain.Kinds))
	for i, k := range domain.Kinds {
		kinds[i] = string(k)
	}

	// TOOL: show_structures
	showTool := mcp.NewTool("show_structures",
		mcp.WithDescription("Read the saved stack, queue and list. Pass kind to read a single one."),
		mcp.WithString("kind", mcp.Enum(kinds...), mcp.Description("Structure to read (optional, all when omitted)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOutputSchema[ShowResponse](),
	)
	s.mcpServer.AddTool(showTool, mcp.NewStructuredToolHandler(s.handleShow))

	// TOOL: reset_structure
	resetTool := mcp.NewTool("reset_structure",
		mcp.WithDescription("Delete the saved contents of one structure, or of all when kind is omitted."),
		mcp.WithString("kind", mcp.Enum(kinds...), mcp.Description("Structure to clear (optional, all when omitted)")),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOutputSchema[ResetResponse](),
	)
	s.mcpServer.AddTool(resetTool, mcp.NewStructuredToolHandler(s.handleReset))
}

func (s *Server) handleShow(ctx context.Context, request mcp.CallToolRequest, args kindArgs) (ShowResponse, error) {
	kinds, err := selectKinds(args.Kind)
	if err != nil {
		return ShowResponse{}, err
	}

	resp := ShowResponse{Structures: make([]StructureResponse, 0, len(kinds))}
	for _, kind := range kinds {
		items, err := s.store.Load(ctx, kind)
		if err != nil {
			s.logger.Error("MCP show failed", "kind", kind, "error", err)
			return ShowResponse{}, fmt.Errorf("load %s: %w", kind, err)
		}
		strs := make([]string, len(items))
		for i, r := range items {
			strs[i] = string(r)
		}
		resp.Structures = append(resp.Structures, StructureResponse{
			Kind:  string(kind),
			Items: strs,
			Line:  codec.Encode(items),
		})
	}
	return resp, nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest, args kindArgs) (ResetResponse, error) {
	kinds, err := selectKinds(args.Kind)
	if err != nil {
		return ResetResponse{}, err
	}

	resp := ResetResponse{Reset: make([]string, 0, len(kinds))}
	for _, kind := range kinds {
		if err := s.store.Delete(ctx, kind); err != nil {
			s.logger.Error("MCP reset failed", "kind", kind, "error", err)
			return ResetResponse{}, fmt.Errorf("reset %s: %w", kind, err)
		}
		resp.Reset = append(resp.Reset, string(kind))
	}
	s.logger.Info("MCP reset", "kinds", resp.Reset)
	return resp, nil
}

func selectKinds(name string) ([]domain.Kind, error) {
	if name == "" {
		return domain.Kinds, nil
	}
	kind, err := domain.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []domain.Kind{kind}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: jumptable://graph
	s.mcpServer.AddResource(mcp.NewResource(GraphURI, "Menu State Diagram",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GraphURI,
				MIMEType: "text/plain",
				Text:     graph.GenerateMermaid(domain.Transitions(), nil),
			},
		}, nil
	})
}
