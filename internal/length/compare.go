package length

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOp is returned by Compare for an operator other than Min or Max
var ErrUnknownOp = errors.New("unknown comparison operator")

// Op selects the direction of Compare
type Op string

const (
	Min Op = "min"
	Max Op = "max"
)

// ParseOp converts a string to Op
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case Min, Max:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Compare resolves a and b to pixels on the same axis.
// Max reports a > b, Min reports a < b; equal values report false.
func Compare(op Op, a, b Expr, axis Axis, ctx Context) (bool, error) {
	pa := a.Pixels(axis, ctx)
	pb := b.Pixels(axis, ctx)

	switch op {
	case Max:
		return pa > pb, nil
	case Min:
		return pa < pb, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}
}
