package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/mcp"
	"github.com/yourusername/floatwin/internal/output"
	"github.com/yourusername/floatwin/internal/server"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/tui"
	"github.com/yourusername/floatwin/internal/window"
	"github.com/yourusername/floatwin/internal/x11"
)

var (
	tuiASCII bool
	x11Title string
	x11Serve bool
)

// tuiCmd hosts the window in the terminal
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Drag and resize the window in the terminal",
	Long: `Draws the window in the terminal, one cell per 8x16 pixels. Drag the title
bar to move, drag a border to resize, double-click the title bar to toggle
maximize. Keys: m maximize, n minimize, r restore, f float, 1-9 dock,
p cycle policy, c close, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, rs, err := hostOptions(cfg, "tui")
		if err != nil {
			return err
		}
		opts.Sizer = tui.Sizer

		vw, vh := cfg.Display.Width, cfg.Display.Height
		if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			vw, vh = tui.ViewportFor(cols, rows)
		}

		s := surface.NewMemory(vw, vh, cfg.Display.ContentWidth, cfg.Display.ContentHeight)
		w, err := window.New(s, opts)
		if err != nil {
			return err
		}

		if err := tui.Run(w, s, !tuiASCII && output.DefaultVisualizationOptions().UseUnicode); err != nil {
			return err
		}
		rememberWindow(rs, "tui", w)
		return nil
	},
}

// x11Cmd hosts the window as a real X client window
var x11Cmd = &cobra.Command{
	Use:   "x11",
	Short: "Host the window on an X11 display",
	Long: `Creates a top-level X window sized by the engine. The work area is the
viewport. Drag with button 1 to move or resize, double-click the title
bar to toggle maximize. With --serve the control socket drives the same
window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, rs, err := hostOptions(cfg, "x11")
		if err != nil {
			return err
		}

		conn, err := x11.NewConnection()
		if err != nil {
			return fmt.Errorf("failed to connect to X server: %w", err)
		}
		defer conn.Close()

		s, err := x11.NewSurface(conn, x11Title, cfg.Display.ContentWidth, cfg.Display.ContentHeight)
		if err != nil {
			return err
		}
		w, err := window.New(s, opts)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		loop := eventloop.New(w, s)
		go loop.Run(ctx)

		host := x11.NewHost(conn, s, loop)
		if err := host.Bind(); err != nil {
			return fmt.Errorf("failed to bind input: %w", err)
		}

		if x11Serve {
			srv := server.New(controlSocket(cfg), loop)
			if err := srv.Start(); err != nil {
				return err
			}
			defer srv.Close()
		}

		go func() {
			<-ctx.Done()
			conn.Quit()
		}()

		logging.Info().Str("window", w.ID()).Uint32("xid", uint32(s.ID())).Msg("x11 host running")
		conn.EventLoop()

		cancel()
		<-loop.Done()
		rememberWindow(rs, "x11", w)
		return nil
	},
}

// mcpCmd serves the window as MCP tools over stdio
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose a simulated window as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, err := cfg.Window.Options()
		if err != nil {
			return err
		}
		w, s, err := newMemoryWindow(cfg, opts)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		loop := eventloop.New(w, s)
		go loop.Run(ctx)

		logging.Info().Str("window", w.ID()).Msg("mcp server starting")
		return mcp.NewServer(loop).Run(ctx)
	},
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiASCII, "ascii", false, "Force ASCII box drawing")

	x11Cmd.Flags().StringVar(&x11Title, "title", "floatwin", "Window title")
	x11Cmd.Flags().BoolVar(&x11Serve, "serve", false, "Also serve the control socket")
}
