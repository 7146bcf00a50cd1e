package length

import (
	"strconv"
	"strings"
)

// Expr is an additive length over four units.
// Supports: "12px", "50%", "10vw", "calc(50% - 20px)"
type Expr struct {
	Px  float64 // Absolute pixels
	Vw  float64 // Percent of viewport width
	Vh  float64 // Percent of viewport height
	Pct float64 // Percent of the container along the resolving axis
}

// Axis selects which container dimension a percentage resolves against
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
)

// String returns the string representation of an Axis
func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	default:
		return "unknown"
	}
}

// ParseAxis converts a string to Axis
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(s) {
	case "width", "w", "x":
		return AxisWidth, true
	case "height", "h", "y":
		return AxisHeight, true
	default:
		return 0, false
	}
}

// Context holds the reference sizes an Expr is resolved against.
// A zero container dimension falls back to the viewport.
type Context struct {
	ViewportWidth   float64
	ViewportHeight  float64
	ContainerWidth  float64
	ContainerHeight float64
}

// Viewport returns a context whose container is the viewport itself
func Viewport(width, height float64) Context {
	return Context{ViewportWidth: width, ViewportHeight: height}
}

// Reference returns the container size along an axis
func (c Context) Reference(axis Axis) float64 {
	if axis == AxisHeight {
		if c.ContainerHeight > 0 {
			return c.ContainerHeight
		}
		return c.ViewportHeight
	}
	if c.ContainerWidth > 0 {
		return c.ContainerWidth
	}
	return c.ViewportWidth
}

// Px returns an expression of v pixels
func Px(v float64) Expr { return Expr{Px: v} }

// Vw returns an expression of v viewport-width percent
func Vw(v float64) Expr { return Expr{Vw: v} }

// Vh returns an expression of v viewport-height percent
func Vh(v float64) Expr { return Expr{Vh: v} }

// Percent returns an expression of v container percent
func Percent(v float64) Expr { return Expr{Pct: v} }

// Add returns e + o
func (e Expr) Add(o Expr) Expr {
	return Expr{Px: e.Px + o.Px, Vw: e.Vw + o.Vw, Vh: e.Vh + o.Vh, Pct: e.Pct + o.Pct}
}

// Sub returns e - o
func (e Expr) Sub(o Expr) Expr {
	return e.Add(o.Scale(-1))
}

// Scale multiplies every coefficient by k
func (e Expr) Scale(k float64) Expr {
	return Expr{Px: e.Px * k, Vw: e.Vw * k, Vh: e.Vh * k, Pct: e.Pct * k}
}

// IsZero reports whether every coefficient is zero
func (e Expr) IsZero() bool {
	return e.Px == 0 && e.Vw == 0 && e.Vh == 0 && e.Pct == 0
}

// Pixels resolves the expression to an absolute pixel value
func (e Expr) Pixels(axis Axis, ctx Context) float64 {
	return e.Px +
		e.Vw*ctx.ViewportWidth/100 +
		e.Vh*ctx.ViewportHeight/100 +
		e.Pct*ctx.Reference(axis)/100
}

// Percent converts the expression to a percentage of the container axis.
// vw and vh coefficients are summed as-is.
func (e Expr) Percent(axis Axis, ctx Context) float64 {
	pct := e.Vw + e.Vh + e.Pct
	if ref := ctx.Reference(axis); ref != 0 {
		pct += e.Px * 100 / ref
	}
	return pct
}

// String returns the canonical style value for the expression
func (e Expr) String() string {
	type term struct {
		v    float64
		unit string
	}
	var terms []term
	for _, t := range []term{{e.Px, "px"}, {e.Vw, "vw"}, {e.Vh, "vh"}, {e.Pct, "%"}} {
		if t.v != 0 {
			terms = append(terms, t)
		}
	}

	switch len(terms) {
	case 0:
		return "0px"
	case 1:
		return formatNumber(terms[0].v) + terms[0].unit
	}

	var sb strings.Builder
	sb.WriteString("calc(")
	for i, t := range terms {
		v := t.v
		if i > 0 {
			if v < 0 {
				sb.WriteString(" - ")
				v = -v
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(formatNumber(v))
		sb.WriteString(t.unit)
	}
	sb.WriteString(")")
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler
func (e Expr) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using strict parsing
func (e *Expr) UnmarshalText(text []byte) error {
	parsed, err := ParseStrict(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// formatNumber prints the shortest exponent-free decimal that parses back exactly
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
