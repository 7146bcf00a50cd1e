package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/output"
	"github.com/yourusername/floatwin/internal/scenario"
)

var runShowFinal bool

// runCmd replays scenario scripts
var runCmd = &cobra.Command{
	Use:   "run <script.yaml>...",
	Short: "Replay scenario scripts against a simulated window",
	Long: `Each script creates a window on an in-memory display, applies its steps
(pointer grabs and moves, commands, docking, resizes) and checks the
expectations attached to them. Exits non-zero if any step fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []*scenario.Result
		failed := 0

		for _, path := range args {
			script, err := scenario.Load(path)
			if err != nil {
				return err
			}
			res, err := scenario.Run(script)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results = append(results, res)
			if !res.Passed() {
				failed++
			}
		}

		if jsonOutput {
			if err := printJSON(scenarioJSON(results)); err != nil {
				return err
			}
		} else {
			for _, res := range results {
				printScenario(res)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runShowFinal, "show", false, "Draw the final window state of each script")
}

func printScenario(res *scenario.Result) {
	infoColor.Printf("%s\n", res.Name)
	output.PrintScenarioTable(os.Stdout, res)

	if runShowFinal {
		output.PrintVisualization(os.Stdout, models.NewWindowState(res.Window), output.DefaultVisualizationOptions())
	}

	if res.Passed() {
		successColor.Printf("✓ %d steps passed\n\n", len(res.Steps))
	} else {
		errorColor.Printf("✗ %d of %d steps failed\n\n", len(res.Failed()), len(res.Steps))
	}
}

func scenarioJSON(results []*scenario.Result) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(results))
	for _, res := range results {
		steps := make([]map[string]interface{}, 0, len(res.Steps))
		for _, st := range res.Steps {
			step := map[string]interface{}{
				"index":    st.Index,
				"action":   st.Action,
				"policy":   string(st.Policy),
				"bounds":   st.Bounds,
				"snapshot": st.Snapshot,
				"dragging": st.Dragging,
				"ok":       st.OK(),
			}
			if st.Err != nil {
				step["error"] = st.Err.Error()
			}
			if len(st.Failures) > 0 {
				step["failures"] = st.Failures
			}
			steps = append(steps, step)
		}
		out = append(out, map[string]interface{}{
			"name":   res.Name,
			"passed": res.Passed(),
			"steps":  steps,
			"final":  models.NewWindowState(res.Window),
		})
	}
	return out
}
