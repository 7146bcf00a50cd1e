package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/floatwin/internal/models"
)

const (
	DefaultSocketPath = "/tmp/floatwin.sock"
	DefaultTimeout    = 10 * time.Second
)

// Client talks to a floatwin control server
type Client struct {
	conn *Connection
}

// NewClient creates a new client
func NewClient(socketPath string, timeout time.Duration) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		conn: NewConnection(socketPath, timeout),
	}
}

// Connect establishes connection to the server
func (c *Client) Connect(ctx context.Context) error {
	return c.conn.Connect(ctx)
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// request is a helper to send a request and get the response
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (*models.Response, error) {
	if !c.conn.IsConnected() {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	req := models.NewRequest(uuid.New().String(), method, params)
	return c.conn.SendRequest(ctx, req)
}

// CallMethod sends a generic RPC request with the given method and parameters
func (c *Client) CallMethod(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	resp, err := c.request(ctx, method, params)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("server error: %s", resp.GetError())
	}

	return resp.Result, nil
}

// call sends a request whose reply is a window state
func (c *Client) call(ctx context.Context, method string, params map[string]interface{}) (*models.WindowState, error) {
	result, err := c.CallMethod(ctx, method, params)
	if err != nil {
		return nil, err
	}
	return models.ParseWindowState(result)
}

// pointer sends a drag request and reports whether the window accepted it
func (c *Client) pointer(ctx context.Context, method string, params map[string]interface{}) (*models.WindowState, bool, error) {
	result, err := c.CallMethod(ctx, method, params)
	if err != nil {
		return nil, false, err
	}
	accepted, _ := result["accepted"].(bool)
	state, err := models.ParseWindowState(result)
	return state, accepted, err
}

// Ping sends a ping request to test connectivity
func (c *Client) Ping(ctx context.Context) (map[string]interface{}, error) {
	return c.CallMethod(ctx, "ping", nil)
}

// State returns the current window state
func (c *Client) State(ctx context.Context) (*models.WindowState, error) {
	return c.call(ctx, "window.state", nil)
}

// SetPolicy changes the size policy
func (c *Client) SetPolicy(ctx context.Context, policy string) (*models.WindowState, error) {
	return c.call(ctx, "window.policy", map[string]interface{}{"policy": policy})
}

func (c *Client) Maximize(ctx context.Context) (*models.WindowState, error) {
	return c.call(ctx, "window.maximize", nil)
}

func (c *Client) Minimize(ctx context.Context) (*models.WindowState, error) {
	return c.call(ctx, "window.minimize", nil)
}

// Dock places the window on the 3x3 dock grid
func (c *Client) Dock(ctx context.Context, row, col int, autosize bool) (*models.WindowState, error) {
	return c.call(ctx, "window.dock", map[string]interface{}{
		"row":      row,
		"col":      col,
		"autosize": autosize,
	})
}

// Restore restores the saved snapshot, if any
func (c *Client) Restore(ctx context.Context) (*models.WindowState, bool, error) {
	return c.pointer(ctx, "window.restore", nil)
}

func (c *Client) DoubleClick(ctx context.Context) (*models.WindowState, error) {
	return c.call(ctx, "window.doubleclick", nil)
}

func (c *Client) CloseWindow(ctx context.Context) (*models.WindowState, error) {
	return c.call(ctx, "window.close", nil)
}

// Grab starts a drag. An empty handle is hit-tested at x, y.
func (c *Client) Grab(ctx context.Context, x, y float64, handle string) (*models.WindowState, bool, error) {
	params := map[string]interface{}{"x": x, "y": y}
	if handle != "" {
		params["handle"] = handle
	}
	return c.pointer(ctx, "window.grab", params)
}

func (c *Client) Move(ctx context.Context, x, y float64) (*models.WindowState, bool, error) {
	return c.pointer(ctx, "window.move", map[string]interface{}{"x": x, "y": y})
}

func (c *Client) Release(ctx context.Context) (*models.WindowState, bool, error) {
	return c.pointer(ctx, "window.release", nil)
}

// ResizeViewport changes the simulated viewport
func (c *Client) ResizeViewport(ctx context.Context, width, height float64) (*models.WindowState, error) {
	return c.call(ctx, "viewport.resize", map[string]interface{}{"width": width, "height": height})
}

// ResizeContent changes the content's natural size
func (c *Client) ResizeContent(ctx context.Context, width, height float64) (*models.WindowState, error) {
	return c.call(ctx, "content.resize", map[string]interface{}{"width": width, "height": height})
}
