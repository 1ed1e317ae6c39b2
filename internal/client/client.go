package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/placer-cli/internal/models"
)

const (
	DefaultSocketPath = "/tmp/placer-wm.sock"
	DefaultTimeout    = 10 * time.Second
)

// Client is the typed interface to the window-manager backend. It is the
// only component that talks to the outside world; every policy operation
// goes snapshot in, commands out, through here.
type Client struct {
	conn *Connection
}

// NewClient creates a new backend client
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

// Connect establishes connection to the backend
func (c *Client) Connect() error {
	return c.conn.Connect()
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// request is a helper to send a request and get the response
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (*models.Response, error) {
	if !c.conn.IsConnected() {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}

	req := models.NewRequest(uuid.New().String(), method, params)
	return c.conn.SendRequest(ctx, req)
}

// call sends a request and unwraps backend-level errors.
func (c *Client) call(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	resp, err := c.request(ctx, method, params)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("backend error: %s", resp.GetError())
	}

	return resp.Result, nil
}

// Ping sends a ping request to test connectivity
func (c *Client) Ping(ctx context.Context) (map[string]interface{}, error) {
	return c.call(ctx, "ping", nil)
}

// Dump retrieves the complete window state for this invocation.
func (c *Client) Dump(ctx context.Context) (*models.Dump, error) {
	result, err := c.call(ctx, "dump", map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	return models.ParseDump(result)
}

// Move repositions a window. Fire-and-forget: the backend's own command
// ordering is the only consistency guarantee.
func (c *Client) Move(ctx context.Context, windowID uint32, x, y int) error {
	_, err := c.call(ctx, "moveWindow", map[string]interface{}{
		"windowId": windowID,
		"x":        x,
		"y":        y,
	})
	return err
}

// Resize changes a window's size.
func (c *Client) Resize(ctx context.Context, windowID uint32, width, height int) error {
	_, err := c.call(ctx, "resizeWindow", map[string]interface{}{
		"windowId": windowID,
		"width":    width,
		"height":   height,
	})
	return err
}

// Focus gives a window the input focus.
func (c *Client) Focus(ctx context.Context, windowID uint32) error {
	_, err := c.call(ctx, "focusWindow", map[string]interface{}{
		"windowId": windowID,
	})
	return err
}

// CallMethod sends a generic RPC request with the given method and parameters
func (c *Client) CallMethod(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	return c.call(ctx, method, params)
}
