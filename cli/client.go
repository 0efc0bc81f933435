package cli

import (
	"bytes"
	"coinwidget/models"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the HTTP client for the coinwidget API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
}

// do sends a request and decodes the envelope's data into result.
// Non-OK envelopes become errors carrying the server message and detail.
func (c *Client) do(method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := qjson.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env apiResponse
	if err := qjson.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(raw))
	}
	if env.Code != "OK" {
		var detail struct {
			Detail string `json:"detail"`
		}
		_ = qjson.Unmarshal(env.Data, &detail)
		if detail.Detail != "" {
			return fmt.Errorf("%s: %s", env.Message, detail.Detail)
		}
		return fmt.Errorf("%s (%s)", env.Message, env.Code)
	}

	if result != nil {
		if err := qjson.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// HealthCheck pings the health endpoint
func (c *Client) HealthCheck() error {
	return c.do(http.MethodGet, "/api/health", nil, nil)
}

// GetWidget fetches every resolved setting of a widget
func (c *Client) GetWidget(id int) (*models.WidgetView, error) {
	var view models.WidgetView
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/widgets/%d", id), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SetupWidget saves the full settings screen
func (c *Client) SetupWidget(id int, req models.WidgetSetup) (*models.WidgetView, error) {
	var view models.WidgetView
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/widgets/%d", id), req, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SetField writes one raw field; nil clears it
func (c *Client) SetField(id int, key string, value *string) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/widgets/%d/fields/%s", id, key), models.FieldUpdate{Value: value}, nil)
}

// MarkTemporary sets or clears the provisional-widget flag
func (c *Client) MarkTemporary(id int, temporary bool) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/widgets/%d/temporary", id), models.TemporaryUpdate{Temporary: temporary}, nil)
}

// Cleanup deletes the widget if it is still temporary
func (c *Client) Cleanup(id int) (bool, error) {
	var res struct {
		Deleted bool `json:"deleted"`
	}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/widgets/%d/cleanup", id), nil, &res); err != nil {
		return false, err
	}
	return res.Deleted, nil
}

// DeleteWidget removes a widget's settings
func (c *Client) DeleteWidget(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/widgets/%d", id), nil, nil)
}
