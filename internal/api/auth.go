package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tutorlink/client/internal/model"
)

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	payload := map[string]string{"email": email, "password": password}

	env, err := c.do(ctx, http.MethodPost, "/auth/login", payload, nil)
	if err != nil {
		return model.Session{}, err
	}

	return sessionFromEnvelope(env)
}

// Register submits a completed registration draft for the given role and
// returns the created session.
func (c *Client) Register(ctx context.Context, draft model.Draft, role model.Role) (model.Session, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register/"+string(role), draft, nil)
	if err != nil {
		return model.Session{}, err
	}

	return sessionFromEnvelope(env)
}

func sessionFromEnvelope(env *envelope) (model.Session, error) {
	session := model.Session{Token: env.Token}
	if len(env.Identity) > 0 {
		if err := json.Unmarshal(env.Identity, &session.Identity); err != nil {
			return model.Session{}, fmt.Errorf("decode identity: %w", err)
		}
	}
	return session, nil
}
