package server

import (
	"fmt"
	"math"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

// snapshot builds the reply for a request: the window state after the
// operation, plus whether a pointer operation was accepted.
func snapshot(w *window.Window, accepted *bool) (map[string]interface{}, error) {
	result, err := models.NewWindowState(w).ToMap()
	if err != nil {
		return nil, err
	}
	if accepted != nil {
		result["accepted"] = *accepted
	}
	return result, nil
}

// params are the decoded JSON parameters of a request.
// Numbers arrive as float64.
type params map[string]interface{}

func (p params) number(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", errInvalidParams, key)
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q must be a number", errInvalidParams, key)
	}
	return f, nil
}

func (p params) integer(key string) (int, error) {
	f, err := p.number(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q must be an integer", errInvalidParams, key)
	}
	return int(f), nil
}

func (p params) boolean(key string) bool {
	b, _ := p[key].(bool)
	return b
}

func (p params) str(key string) (string, error) {
	s, ok := p[key].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: missing %q", errInvalidParams, key)
	}
	return s, nil
}

func (p params) point() (types.Point, error) {
	x, err := p.number("x")
	if err != nil {
		return types.Point{}, err
	}
	y, err := p.number("y")
	if err != nil {
		return types.Point{}, err
	}
	return types.Point{X: x, Y: y}, nil
}

func (p params) size() (float64, float64, error) {
	width, err := p.number("width")
	if err != nil {
		return 0, 0, err
	}
	height, err := p.number("height")
	if err != nil {
		return 0, 0, err
	}
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("%w: size cannot be negative", errInvalidParams)
	}
	return width, height, nil
}

// expr reads an optional length; ok is false when the key is absent
func (p params) expr(key string) (e length.Expr, ok bool, err error) {
	v, present := p[key]
	if !present {
		return length.Expr{}, false, nil
	}
	s, isString := v.(string)
	if !isString {
		return length.Expr{}, false, fmt.Errorf("%w: %q must be a length string", errInvalidParams, key)
	}
	e, err = length.ParseStrict(s)
	if err != nil {
		return length.Expr{}, false, fmt.Errorf("%w: %q: %v", errInvalidParams, key, err)
	}
	return e, true, nil
}

// fixedStyle reads the parameters of ApplyFixedStyle:
// top/left, width/height and anchorX/anchorY, each pair optional
func (p params) fixedStyle() (*window.Position, *window.Size, window.Anchor, error) {
	var anchor window.Anchor

	top, hasTop, err := p.expr("top")
	if err != nil {
		return nil, nil, anchor, err
	}
	left, hasLeft, err := p.expr("left")
	if err != nil {
		return nil, nil, anchor, err
	}
	width, hasWidth, err := p.expr("width")
	if err != nil {
		return nil, nil, anchor, err
	}
	height, hasHeight, err := p.expr("height")
	if err != nil {
		return nil, nil, anchor, err
	}
	if hasTop != hasLeft || hasWidth != hasHeight {
		return nil, nil, anchor, fmt.Errorf("%w: top/left and width/height come in pairs", errInvalidParams)
	}

	var pos *window.Position
	if hasTop {
		pos = &window.Position{Top: top, Left: left}
	}
	var size *window.Size
	if hasWidth {
		size = &window.Size{Width: width, Height: height}
	}

	if _, ok := p["anchorX"]; ok {
		if anchor.X, err = p.number("anchorX"); err != nil {
			return nil, nil, anchor, err
		}
	}
	if _, ok := p["anchorY"]; ok {
		if anchor.Y, err = p.number("anchorY"); err != nil {
			return nil, nil, anchor, err
		}
	}

	return pos, size, anchor, nil
}
