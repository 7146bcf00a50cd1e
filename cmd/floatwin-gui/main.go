// Command floatwin-gui hosts a floating window in an ebiten game window.
// The game window is the viewport.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/yourusername/floatwin/internal/config"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/state"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/window"
)

var (
	configPath string
	debugMode  bool
	freshStart bool

	errorColor = color.New(color.FgRed, color.Bold)
)

// stateHost keys this host's remembered geometry
const stateHost = "gui"

var rootCmd = &cobra.Command{
	Use:           "floatwin-gui",
	Short:         "Drag and resize a floating window in a desktop window",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debugMode {
			logging.SetDebug(true)
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts, err := cfg.Window.Options()
		if err != nil {
			return err
		}

		rs, err := state.LoadState()
		if err != nil {
			logging.Warn().Err(err).Msg("ignoring unreadable state file")
			rs = state.NewRuntimeState()
		}
		if ws := rs.Lookup(stateHost); ws != nil && !freshStart {
			ws.ApplyTo(&opts)
		}

		d := cfg.Display
		s := surface.NewMemory(d.Width, d.Height, d.ContentWidth, d.ContentHeight)
		w, err := window.New(s, opts)
		if err != nil {
			return err
		}

		ebiten.SetWindowSize(int(d.Width), int(d.Height))
		ebiten.SetWindowTitle("floatwin")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		logging.Info().Str("window", w.ID()).Msg("gui host starting")
		if err := ebiten.RunGame(newGame(w, s)); err != nil {
			return fmt.Errorf("game loop: %w", err)
		}

		rs.Record(stateHost, w)
		if err := rs.Save(); err != nil {
			logging.Warn().Err(err).Msg("failed to save state")
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default ~/.config/floatwin/config.yaml)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&freshStart, "fresh", false, "Ignore the geometry remembered from the last run")
}

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging disabled:", err)
	}
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, err)
		logging.Close()
		os.Exit(1)
	}
}
