package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/window"
)

const (
	ServerName    = "floatwin"
	ServerVersion = "0.1.0"
)

// Server exposes the window commands as MCP tools. Every tool runs on
// the event loop that owns the window.
type Server struct {
	mcpServer *mcpsdk.Server
	loop      *eventloop.Loop
}

// NewServer creates a new MCP server driving loop
func NewServer(loop *eventloop.Loop) *Server {
	s := &Server{loop: loop}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	logging.Info().Msg("mcp server starting on stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect serves a single session over t
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}

// apply runs fn on the loop and captures the resulting state
func (s *Server) apply(ctx context.Context, fn func(w *window.Window, surf window.Surface) error) (WindowOutput, error) {
	var out WindowOutput
	err := s.loop.Do(ctx, func(w *window.Window) error {
		if err := fn(w, s.loop.Surface()); err != nil {
			return err
		}
		out = newWindowOutput(w)
		return nil
	})
	return out, err
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_geometry",
		Description: "Return the floating window's size policy, geometry in policy units, rendered pixel box, minimum size and saved snapshot.",
	}, s.handleGetGeometry)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_policy",
		Description: "Change the size policy. Auto sizes to content, Fixed keeps pixels, Relative keeps percentages of the viewport. Discards any saved snapshot.",
	}, s.handleSetPolicy)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize",
		Description: "Fill the viewport, saving the current geometry so a title bar double-click or drag restores it.",
	}, s.handleMaximize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "minimize",
		Description: "Shrink the window to its minimum size at the top-left corner, saving the current geometry.",
	}, s.handleMinimize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "restore",
		Description: "Restore the saved geometry if there is one. accepted reports whether anything was restored.",
	}, s.handleRestore)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "dock",
		Description: "Place the window on a 3x3 grid over the viewport. With autosize the window takes the size of its cell.",
	}, s.handleDock)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_fixed_style",
		Description: "Move and/or resize the window to explicit CSS lengths, optionally anchored on the target point.",
	}, s.handleFixedStyle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "drag",
		Description: "Press the pointer at from_x/from_y, move to to_x/to_y and release. The title bar moves the window; edges and corners resize it.",
	}, s.handleDrag)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "double_click_title",
		Description: "Double-click the title bar: restore when a snapshot is saved, otherwise maximize.",
	}, s.handleDoubleClick)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_viewport",
		Description: "Simulate a viewport resize. Relative geometry follows; the minimum size is re-derived.",
	}, s.handleResizeViewport)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_content",
		Description: "Change the natural size of the window content. Auto windows resize to fit it.",
	}, s.handleResizeContent)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close the window. Later commands fail.",
	}, s.handleClose)
}
