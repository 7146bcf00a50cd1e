package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yourusername/floatwin/internal/state"
)

// stateCmd groups remembered-geometry commands
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Geometry remembered between runs",
}

// stateShowCmd prints the remembered windows
var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the geometry each host will reopen with",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := state.LoadState()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(rs.Summary())
		}

		hosts := rs.Hosts()
		if len(hosts) == 0 {
			infoColor.Println("No remembered windows")
			return nil
		}
		for _, host := range hosts {
			ws := rs.Lookup(host)
			keyColor.Printf("%-6s ", host)
			fmt.Printf("%-8s top=%s left=%s width=%s height=%s",
				ws.Policy, ws.Top, ws.Left, ws.Width, ws.Height)
			if ws.Snapshot != nil {
				fmt.Printf(" (restorable %s %sx%s)", ws.Snapshot.Policy, ws.Snapshot.Width, ws.Snapshot.Height)
			}
			infoColor.Printf(" saved %s\n", humanize.Time(ws.SavedAt))
		}
		return nil
	},
}

// stateResetCmd forgets every remembered window
var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all remembered geometry",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := state.NewRuntimeState()
		if err := rs.Reset(); err != nil {
			return err
		}
		successColor.Printf("✓ Cleared %s\n", state.GetStatePath())
		return nil
	},
}

func init() {
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
}
