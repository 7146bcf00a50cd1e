package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/floatwin/internal/length"
)

var (
	calcAxis      string
	calcViewportW float64
	calcViewportH float64
	calcContainW  float64
	calcContainH  float64
)

// calcCmd resolves a CSS length
var calcCmd = &cobra.Command{
	Use:   "calc <length>",
	Short: "Resolve a CSS length to pixels and percent",
	Long: `Parses a length such as "calc(50% - 20px + 2vh)" and resolves it on one axis
against the viewport (and an optional container for percentages).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, ctx, err := calcContext()
		if err != nil {
			return err
		}

		e, err := length.ParseStrict(args[0])
		if err != nil {
			return err
		}

		px := e.Pixels(axis, ctx)
		pct := e.Percent(axis, ctx)

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"input":      args[0],
				"normalized": e.String(),
				"axis":       axis.String(),
				"pixels":     px,
				"percent":    pct,
			})
		}

		keyColor.Print("Normalized: ")
		fmt.Println(e.String())
		keyColor.Print("Pixels:     ")
		fmt.Printf("%g\n", px)
		keyColor.Print("Percent:    ")
		fmt.Printf("%g%%\n", pct)
		return nil
	},
}

// compareCmd compares two lengths
var compareCmd = &cobra.Command{
	Use:   "compare <min|max> <a> <b>",
	Short: "Compare two CSS lengths on one axis",
	Long: `Resolves both lengths to pixels. "max" reports whether a is larger than b,
"min" whether a is smaller. Equal lengths report false for both.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, ctx, err := calcContext()
		if err != nil {
			return err
		}

		op, err := length.ParseOp(args[0])
		if err != nil {
			return err
		}
		a, err := length.ParseStrict(args[1])
		if err != nil {
			return fmt.Errorf("a: %w", err)
		}
		b, err := length.ParseStrict(args[2])
		if err != nil {
			return fmt.Errorf("b: %w", err)
		}

		result, err := length.Compare(op, a, b, axis, ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"op":     string(op),
				"a":      a.Pixels(axis, ctx),
				"b":      b.Pixels(axis, ctx),
				"result": result,
			})
		}

		fmt.Printf("%s(%gpx, %gpx) = %v\n", op, a.Pixels(axis, ctx), b.Pixels(axis, ctx), result)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{calcCmd, compareCmd} {
		cmd.Flags().StringVar(&calcAxis, "axis", "width", "Axis to resolve on (width|height)")
		cmd.Flags().Float64Var(&calcViewportW, "vw", 0, "Viewport width (default from config)")
		cmd.Flags().Float64Var(&calcViewportH, "vh", 0, "Viewport height (default from config)")
		cmd.Flags().Float64Var(&calcContainW, "container-width", 0, "Container width for percentages (default viewport)")
		cmd.Flags().Float64Var(&calcContainH, "container-height", 0, "Container height for percentages (default viewport)")
	}
}

// calcContext builds the axis and reference sizes from flags and config
func calcContext() (length.Axis, length.Context, error) {
	axis, ok := length.ParseAxis(calcAxis)
	if !ok {
		return 0, length.Context{}, fmt.Errorf("invalid axis %q (use width or height)", calcAxis)
	}

	cfg, err := loadConfig()
	if err != nil {
		return 0, length.Context{}, err
	}

	vw, vh := cfg.Display.Width, cfg.Display.Height
	if calcViewportW > 0 {
		vw = calcViewportW
	}
	if calcViewportH > 0 {
		vh = calcViewportH
	}

	ctx := length.Viewport(vw, vh)
	ctx.ContainerWidth = calcContainW
	ctx.ContainerHeight = calcContainH
	return axis, ctx, nil
}
