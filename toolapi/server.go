package toolapi

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/anomaly"
	"github.com/coreprobe/sysmon/errs"
	"github.com/coreprobe/sysmon/gpu"
	"github.com/coreprobe/sysmon/history"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Deps is the shared, long-lived state every handler reads from. It is
// constructed once in the binary's entrypoint alongside the sampling loop
// and handed to both the mcp-go server and the direct Invoke path.
type Deps struct {
	Gpu      *gpu.Collection
	History  *history.Buffer
	Detector *anomaly.Detector
	Net      *agent.NetworkMonitor
}

// Server wraps the mcp-go server instance and the shared Deps every
// registered tool closes over.
type Server struct {
	mcpServer *server.MCPServer
	deps      *Deps
}

// NewServer builds an MCP server with every registry tool registered.
func NewServer(version string, deps *Deps) *Server {
	s := server.NewMCPServer("sysmon-agent", version, server.WithLogging())
	srv := &Server{mcpServer: s, deps: deps}
	srv.registerTools()
	return srv
}

func (srv *Server) registerTools() {
	for _, spec := range registry {
		tool := mcp.NewTool(spec.Name, mcp.WithDescription(spec.Description), toolOptions(spec.Name)...)
		handler := spec.handler
		srv.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			out, err := handler(ctx, srv.deps, getArgs(request))
			if err != nil {
				return errResult(err.Error()), nil
			}
			return newTextResult(out), nil
		})
	}
}

// Start runs the server in stdio mode, blocking until ctx is cancelled.
func (srv *Server) Start(ctx context.Context) error {
	stdioServer := server.NewStdioServer(srv.mcpServer)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// Invoke dispatches a tool call directly, bypassing MCP transport entirely.
// paramsJSON is the raw JSON arguments object; "" and "{}" both mean no
// arguments.
func (srv *Server) Invoke(ctx context.Context, name string, paramsJSON string) (string, error) {
	spec, ok := findTool(name)
	if !ok {
		return "", fmt.Errorf("%w: unknown tool %q", errs.ErrInvalidArgument, name)
	}

	p := params{}
	if paramsJSON != "" && paramsJSON != "{}" {
		if err := json.Unmarshal([]byte(paramsJSON), &p); err != nil {
			return "", fmt.Errorf("%w: malformed arguments json: %v", errs.ErrInvalidArgument, err)
		}
	}

	return spec.handler(ctx, srv.deps, p)
}

// getArgs safely extracts the arguments map from a CallToolRequest.
func getArgs(request mcp.CallToolRequest) params {
	if request.Params.Arguments == nil {
		return params{}
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return params{}
	}
	return args
}

// newTextResult builds a successful MCP tool result carrying a JSON body.
func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
	}
}

// errResult builds a tool-level error result (IsError=true), not a
// transport-level JSON-RPC error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: msg}},
	}
}
