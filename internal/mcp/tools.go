package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

func (s *Server) handleGetGeometry(ctx context.Context, _ *mcpsdk.CallToolRequest, _ GetGeometryInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	out, err := s.apply(ctx, func(*window.Window, window.Surface) error { return nil })
	return nil, out, err
}

func (s *Server) handleSetPolicy(ctx context.Context, _ *mcpsdk.CallToolRequest, args SetPolicyInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	p, err := window.ParsePolicy(args.Policy)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.SetPolicy(p)
	})
	return nil, out, err
}

func (s *Server) handleMaximize(ctx context.Context, _ *mcpsdk.CallToolRequest, _ CommandInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.Maximize()
	})
	return nil, out, err
}

func (s *Server) handleMinimize(ctx context.Context, _ *mcpsdk.CallToolRequest, _ CommandInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.Minimize()
	})
	return nil, out, err
}

func (s *Server) handleRestore(ctx context.Context, _ *mcpsdk.CallToolRequest, _ CommandInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	var restored bool
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		if w.Closed() {
			return window.ErrClosed
		}
		w.AllowRestoration()
		restored = w.Restore(true, true, true)
		return nil
	})
	out.Accepted = &restored
	return nil, out, err
}

func (s *Server) handleDock(ctx context.Context, _ *mcpsdk.CallToolRequest, args DockInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.Dock(args.Row, args.Col, args.Autosize)
	})
	return nil, out, err
}

func (s *Server) handleFixedStyle(ctx context.Context, _ *mcpsdk.CallToolRequest, args FixedStyleInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if (args.Top == "") != (args.Left == "") || (args.Width == "") != (args.Height == "") {
		return nil, WindowOutput{}, fmt.Errorf("top/left and width/height must be set in pairs")
	}

	var pos *window.Position
	if args.Top != "" {
		top, err := length.ParseStrict(args.Top)
		if err != nil {
			return nil, WindowOutput{}, fmt.Errorf("top: %w", err)
		}
		left, err := length.ParseStrict(args.Left)
		if err != nil {
			return nil, WindowOutput{}, fmt.Errorf("left: %w", err)
		}
		pos = &window.Position{Top: top, Left: left}
	}

	var size *window.Size
	if args.Width != "" {
		width, err := length.ParseStrict(args.Width)
		if err != nil {
			return nil, WindowOutput{}, fmt.Errorf("width: %w", err)
		}
		height, err := length.ParseStrict(args.Height)
		if err != nil {
			return nil, WindowOutput{}, fmt.Errorf("height: %w", err)
		}
		size = &window.Size{Width: width, Height: height}
	}

	anchor := window.Anchor{X: args.AnchorX, Y: args.AnchorY}
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.ApplyFixedStyle(pos, size, anchor)
	})
	return nil, out, err
}

func (s *Server) handleDrag(ctx context.Context, _ *mcpsdk.CallToolRequest, args DragInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	handle := types.HandleNone
	if args.Handle != "" {
		h, ok := types.ParseHandle(args.Handle)
		if !ok || h == types.HandleNone {
			return nil, WindowOutput{}, fmt.Errorf("unknown handle %q", args.Handle)
		}
		handle = h
	}
	steps := max(args.Steps, 1)

	from := types.Point{X: args.FromX, Y: args.FromY}
	to := types.Point{X: args.ToX, Y: args.ToY}

	var accepted bool
	out, err := s.apply(ctx, func(w *window.Window, surf window.Surface) error {
		if w.Closed() {
			return window.ErrClosed
		}
		if err := (eventloop.PointerDown{P: from, Handle: handle}).Apply(w, surf); err != nil {
			return err
		}
		if accepted = w.Dragging(); !accepted {
			return nil
		}
		for i := 1; i <= steps; i++ {
			k := float64(i) / float64(steps)
			p := types.Point{X: from.X + (to.X-from.X)*k, Y: from.Y + (to.Y-from.Y)*k}
			if err := (eventloop.PointerMove{P: p}).Apply(w, surf); err != nil {
				return err
			}
		}
		return eventloop.PointerUp{}.Apply(w, surf)
	})

	logging.Debug().
		Float64("from_x", from.X).Float64("from_y", from.Y).
		Float64("to_x", to.X).Float64("to_y", to.Y).
		Bool("accepted", accepted).
		Msg("mcp drag")

	out.Accepted = &accepted
	return nil, out, err
}

func (s *Server) handleDoubleClick(ctx context.Context, _ *mcpsdk.CallToolRequest, _ CommandInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.TitleBarDoubleClick()
	})
	return nil, out, err
}

func (s *Server) handleResizeViewport(ctx context.Context, _ *mcpsdk.CallToolRequest, args SizeInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if args.Width <= 0 || args.Height <= 0 {
		return nil, WindowOutput{}, fmt.Errorf("viewport size must be positive, got %gx%g", args.Width, args.Height)
	}
	out, err := s.apply(ctx, func(w *window.Window, surf window.Surface) error {
		return eventloop.ViewportResize{Width: args.Width, Height: args.Height}.Apply(w, surf)
	})
	return nil, out, err
}

func (s *Server) handleResizeContent(ctx context.Context, _ *mcpsdk.CallToolRequest, args SizeInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if args.Width < 0 || args.Height < 0 {
		return nil, WindowOutput{}, fmt.Errorf("content size cannot be negative, got %gx%g", args.Width, args.Height)
	}
	out, err := s.apply(ctx, func(w *window.Window, surf window.Surface) error {
		return eventloop.ContentResize{Width: args.Width, Height: args.Height}.Apply(w, surf)
	})
	return nil, out, err
}

func (s *Server) handleClose(ctx context.Context, _ *mcpsdk.CallToolRequest, _ CommandInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	out, err := s.apply(ctx, func(w *window.Window, _ window.Surface) error {
		return w.Close()
	})
	return nil, out, err
}
