// Package api is the uniform request path to the marketplace backend. It
// attaches the persisted bearer credential to every request and applies the
// global authorization-failure policy in one place.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/client/internal/guard"
	"github.com/tutorlink/client/internal/logger"
	"github.com/tutorlink/client/internal/model"
	"github.com/tutorlink/client/internal/storage"
)

// Navigator receives forced navigation requests, such as the redirect to
// sign-in after an authorization failure.
type Navigator interface {
	NavigateTo(route string)
}

// Error is a non-authorization backend failure carrying the server-supplied
// message for local handling by the caller.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client performs all backend HTTP calls.
type Client struct {
	baseURL string
	http    *http.Client
	kv      storage.Store
	nav     Navigator
	logger  *logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, kv storage.Store, nav Navigator, logger *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		kv:      kv,
		nav:     nav,
		logger:  logger.With("component", "api"),
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Token    string          `json:"token,omitempty"`
	Identity json.RawMessage `json:"identity,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, err := c.kv.Load(storage.KeyToken); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			"method", method,
			"path", path,
			"error", err.Error())
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusUnauthorized {
		c.forceSignOut()
		return nil, model.ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	return &env, nil
}

// forceSignOut applies the global authorization-failure policy: purge the
// persisted session material and send the user back to sign-in.
func (c *Client) forceSignOut() {
	c.logger.Info("credential rejected, clearing session")

	if err := c.kv.Clear(storage.KeyToken, storage.KeyIdentity); err != nil {
		c.logger.Error("failed to clear session material", "error", err.Error())
	}

	c.nav.NavigateTo(guard.RouteSignIn)
}

// decodeData unmarshals the envelope's data payload into T.
func decodeData[T any](env *envelope, what string) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s: %w", what, err)
	}
	return out, nil
}
