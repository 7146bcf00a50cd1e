package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/output"
	"github.com/yourusername/floatwin/internal/server"
)

var (
	showASCII   bool
	showUnicode bool
	showWidth   int
	showHeight  int
	showTable   bool
)

// serveCmd hosts a window behind the control socket
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a simulated window on the control socket",
	Long: `Creates the configured window on an in-memory display and accepts
newline-delimited JSON requests on a unix socket until interrupted.
Use "floatwin ctl" and "floatwin show" to talk to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, rs, err := hostOptions(cfg, "serve")
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

		srv := server.New(controlSocket(cfg), loop)
		infoColor.Printf("Serving window %s on %s\n", w.ID(), srv.SocketPath())
		logging.Info().Str("window", w.ID()).Msg("serving")

		err = srv.Serve(ctx)
		cancel()
		<-loop.Done()
		rememberWindow(rs, "serve", w)
		return err
	},
}

// ctlCmd sends one raw request
var ctlCmd = &cobra.Command{
	Use:   "ctl <method> [key=value]...",
	Short: "Send a request to a running window",
	Long: `Sends one request to "floatwin serve" (or a tui/x11 host started with
--serve) and prints the window state it returns. Values that parse as
numbers or booleans are sent as such.

Methods: ` + strings.Join(sortedMethods(), ", "),
	Example: `  floatwin ctl window.dock row=0 col=2 autosize=true
  floatwin ctl window.grab x=300 y=110
  floatwin ctl window.move x=250 y=160
  floatwin ctl window.fixed top=10% left=calc(50%-200px) width=400px height=300px`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}

		c := newClient()
		defer c.Close()

		result, err := c.CallMethod(context.Background(), args[0], params)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(result)
		}

		state, err := models.ParseWindowState(result)
		if err != nil || state.ID == "" {
			// ping and other non-window replies
			return printJSON(result)
		}
		if accepted, ok := result["accepted"].(bool); ok {
			keyColor.Print("Accepted: ")
			fmt.Println(accepted)
		}
		output.PrintWindowDetail(os.Stdout, state)
		return nil
	},
}

// showCmd draws a running window
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the window of a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		defer c.Close()

		state, err := c.State(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(state)
		}
		if showTable {
			output.PrintGeometryTable(os.Stdout, state)
			return nil
		}

		opts := output.DefaultVisualizationOptions()
		if showASCII {
			opts.UseUnicode = false
		}
		if showUnicode {
			opts.UseUnicode = true
		}
		if showWidth > 0 {
			opts.MaxWidth = showWidth
		}
		if showHeight > 0 {
			opts.MaxHeight = showHeight
		}
		output.PrintVisualization(os.Stdout, state, opts)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Force ASCII box drawing")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Force Unicode box drawing")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Maximum drawing width in columns")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Maximum drawing height in rows")
	showCmd.Flags().BoolVar(&showTable, "table", false, "Print a geometry table instead of a drawing")
}

// parseParams turns key=value arguments into request params
func parseParams(args []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", arg)
		}
		params[key] = paramValue(value)
	}
	return params, nil
}

func paramValue(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func sortedMethods() []string {
	names := append(server.Methods(), "ping")
	sort.Strings(names)
	return names
}
