package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/floatwin/internal/client"
	"github.com/yourusername/floatwin/internal/config"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/state"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/window"
)

var (
	configPath string
	socketPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	debugMode  bool
	freshStart bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "floatwin",
	Short: "Floating window geometry engine",
	Long: `floatwin drives a floating window's geometry: CSS lengths resolved against
a viewport, three size policies, drag to move and resize, maximize, minimize,
dock and restore.

It can evaluate lengths, replay scenario scripts, and host a window in the
terminal, on X11, behind a unix control socket or as an MCP tool server.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/floatwin/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "Control socket path (default from config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&freshStart, "fresh", false, "Ignore the geometry remembered from the last run")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ctlCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(x11Cmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(stateCmd)

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	if err := logging.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging disabled:", err)
	}
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		logging.Close()
		os.Exit(1)
	}
}

// loadConfig loads --config, applying settings that depend on it
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Settings.Debug {
		logging.SetDebug(true)
	}
	return cfg, nil
}

// controlSocket returns --socket, then the configured path
func controlSocket(cfg *config.Config) string {
	if socketPath != "" {
		return socketPath
	}
	if cfg != nil && cfg.Settings.SocketPath != "" {
		return cfg.Settings.SocketPath
	}
	return client.DefaultSocketPath
}

// newClient connects to the control socket named by flags or config
func newClient() *client.Client {
	var cfg *config.Config
	if socketPath == "" {
		cfg, _ = loadConfig()
	}
	return client.NewClient(controlSocket(cfg), timeout)
}

// newMemoryWindow builds a window on the configured simulated display
func newMemoryWindow(cfg *config.Config, opts window.Options) (*window.Window, *surface.Memory, error) {
	d := cfg.Display
	s := surface.NewMemory(d.Width, d.Height, d.ContentWidth, d.ContentHeight)
	w, err := window.New(s, opts)
	if err != nil {
		return nil, nil, err
	}
	return w, s, nil
}

// hostOptions returns the configured window options, moved to where the
// host's window was when it last exited unless --fresh is set
func hostOptions(cfg *config.Config, host string) (window.Options, *state.RuntimeState, error) {
	opts, err := cfg.Window.Options()
	if err != nil {
		return window.Options{}, nil, err
	}

	rs, err := state.LoadState()
	if err != nil {
		logging.Warn().Err(err).Msg("ignoring unreadable state file")
		rs = state.NewRuntimeState()
	}
	if ws := rs.Lookup(host); ws != nil && !freshStart {
		ws.ApplyTo(&opts)
		logging.Info().Str("host", host).Str("policy", string(ws.Policy)).Msg("reopening remembered geometry")
	}
	return opts, rs, nil
}

// rememberWindow records the window for the next run. The caller must own w.
func rememberWindow(rs *state.RuntimeState, host string, w *window.Window) {
	rs.Record(host, w)
	if err := rs.Save(); err != nil {
		logging.Warn().Err(err).Msg("failed to save state")
	}
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
