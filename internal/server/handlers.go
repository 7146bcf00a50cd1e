package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

// requestTimeout bounds how long a request waits for the event loop
const requestTimeout = 5 * time.Second

// errInvalidParams marks errors caused by request parameters
var errInvalidParams = errors.New("invalid params")

// op runs on the event loop. A non-nil accepted is added to the reply.
type op func(w *window.Window, s window.Surface, p params) (accepted *bool, err error)

var methods = map[string]op{
	"window.state": func(*window.Window, window.Surface, params) (*bool, error) {
		return nil, nil
	},
	"window.policy": func(w *window.Window, _ window.Surface, p params) (*bool, error) {
		name, err := p.str("policy")
		if err != nil {
			return nil, err
		}
		pol, err := window.ParsePolicy(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidParams, err)
		}
		return nil, w.SetPolicy(pol)
	},
	"window.maximize": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		return nil, w.Maximize()
	},
	"window.minimize": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		return nil, w.Minimize()
	},
	"window.float": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		return nil, w.ApplyBasicFloatingStyle()
	},
	"window.fixed": func(w *window.Window, _ window.Surface, p params) (*bool, error) {
		pos, size, anchor, err := p.fixedStyle()
		if err != nil {
			return nil, err
		}
		return nil, w.ApplyFixedStyle(pos, size, anchor)
	},
	"window.dock": func(w *window.Window, _ window.Surface, p params) (*bool, error) {
		row, err := p.integer("row")
		if err != nil {
			return nil, err
		}
		col, err := p.integer("col")
		if err != nil {
			return nil, err
		}
		return nil, w.Dock(row, col, p.boolean("autosize"))
	},
	"window.close": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		return nil, w.Close()
	},
	"window.restore": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		w.AllowRestoration()
		ok := w.Restore(true, true, true)
		return &ok, nil
	},
	"window.grab": func(w *window.Window, _ window.Surface, p params) (*bool, error) {
		pt, err := p.point()
		if err != nil {
			return nil, err
		}
		h := w.HandleAt(pt)
		if name, ok := p["handle"].(string); ok && name != "" {
			if h, ok = types.ParseHandle(name); !ok {
				return nil, fmt.Errorf("%w: unknown handle %q", errInvalidParams, name)
			}
		}
		ok := w.GrabHandle(pt, h)
		return &ok, nil
	},
	"window.move": func(w *window.Window, _ window.Surface, p params) (*bool, error) {
		pt, err := p.point()
		if err != nil {
			return nil, err
		}
		ok := w.Move(pt)
		return &ok, nil
	},
	"window.release": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		ok := w.Release()
		return &ok, nil
	},
	"window.doubleclick": func(w *window.Window, _ window.Surface, _ params) (*bool, error) {
		return nil, w.TitleBarDoubleClick()
	},
	"viewport.resize": func(w *window.Window, s window.Surface, p params) (*bool, error) {
		width, height, err := p.size()
		if err != nil {
			return nil, err
		}
		return nil, eventloop.ViewportResize{Width: width, Height: height}.Apply(w, s)
	},
	"content.resize": func(w *window.Window, s window.Surface, p params) (*bool, error) {
		width, height, err := p.size()
		if err != nil {
			return nil, err
		}
		return nil, eventloop.ContentResize{Width: width, Height: height}.Apply(w, s)
	},
}

// Methods returns the supported method names besides ping
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	return names
}

func (s *Server) handleRequest(ctx context.Context, req *models.Request) *models.MessageEnvelope {
	if req.Method == "ping" {
		return models.NewResponse(req.ID, map[string]interface{}{
			"pong":   true,
			"uptime": time.Since(s.startTime).Seconds(),
		})
	}

	fn, ok := methods[req.Method]
	if !ok {
		return models.NewErrorResponse(req.ID, models.CodeMethodNotFound, fmt.Sprintf("unknown method: %s", req.Method))
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var result map[string]interface{}
	err := s.loop.Do(ctx, func(w *window.Window) error {
		accepted, err := fn(w, s.loop.Surface(), params(req.Params))
		if err != nil {
			return err
		}
		result, err = snapshot(w, accepted)
		return err
	})
	if err != nil {
		return models.NewErrorResponse(req.ID, errorCode(err), err.Error())
	}
	return models.NewResponse(req.ID, result)
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, window.ErrClosed):
		return models.CodeWindowClosed
	case errors.Is(err, errInvalidParams),
		errors.Is(err, window.ErrInvalidPolicy),
		errors.Is(err, window.ErrDockOutOfRange),
		errors.Is(err, length.ErrSyntax):
		return models.CodeInvalidParams
	}
	return models.CodeInternalError
}
