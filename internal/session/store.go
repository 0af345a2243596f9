// Package session holds the single source of truth for who is signed in,
// shared by the route guard, the wizard and every page.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tutorlink/client/internal/logger"
	"github.com/tutorlink/client/internal/model"
	"github.com/tutorlink/client/internal/storage"
)

// AuthAPI is the authentication/registration collaborator.
type AuthAPI interface {
	SignIn(ctx context.Context, email, password string) (model.Session, error)
	Register(ctx context.Context, draft model.Draft, role model.Role) (model.Session, error)
}

// Store exposes the current credential and identity. Reads go through the
// durable store, so a purge by any component (sign-out, or the API client
// on an authorization failure) is visible everywhere immediately. Writes
// are last-write-wins. Derived queries are computed from the source fields,
// never stored.
type Store struct {
	kv     storage.Store
	auth   AuthAPI
	logger *logger.Logger

	mu    sync.RWMutex
	ready bool
}

func NewStore(kv storage.Store, auth AuthAPI, logger *logger.Logger) *Store {
	return &Store{
		kv:     kv,
		auth:   auth,
		logger: logger.With("component", "session"),
	}
}

// Init recovers any previously persisted session. Runs once per application
// load. A credential without a recoverable identity still counts as signed
// in; callers must tolerate an absent identity.
func (s *Store) Init() error {
	token, err := s.kv.Load(storage.KeyToken)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	if token != "" {
		_, hasIdentity := s.Identity()
		s.logger.Info("session recovered", "has_identity", hasIdentity)
	}
	return nil
}

// Ready reports whether Init has completed; the route guard waits on it.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// SignIn authenticates against the backend. On success the session is
// persisted atomically; on failure nothing changes and the returned error
// carries the server-supplied message.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	sess, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(sess)
}

// Register creates a new identity from a completed draft. Persist-on-success
// contract matches SignIn.
func (s *Store) Register(ctx context.Context, draft model.Draft, role model.Role) error {
	sess, err := s.auth.Register(ctx, draft, role)
	if err != nil {
		return err
	}
	return s.adopt(sess)
}

func (s *Store) adopt(sess model.Session) error {
	raw, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Save(storage.KeyToken, sess.Token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	if err := s.kv.Save(storage.KeyIdentity, string(raw)); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}

	s.logger.Info("session established", "role", sess.Identity.Role, "email", sess.Identity.Email)
	return nil
}

// SignOut purges the persisted session unconditionally. Safe to call when
// already signed out.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Clear(storage.KeyToken, storage.KeyIdentity); err != nil {
		s.logger.Error("failed to clear persisted session", "error", err.Error())
	}
}

// UpdateIdentity replaces the profile without touching the credential. The
// role is immutable after registration, so an already-known role wins over
// whatever the update carries.
func (s *Store) UpdateIdentity(identity model.Identity) error {
	if current, ok := s.Identity(); ok {
		identity.Role = current.Role
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Save(storage.KeyIdentity, string(raw)); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	return nil
}

// Token returns the current bearer credential, empty when signed out.
func (s *Store) Token() string {
	token, err := s.kv.Load(storage.KeyToken)
	if err != nil {
		s.logger.Error("failed to load credential", "error", err.Error())
		return ""
	}
	return token
}

// Identity returns the current profile; ok is false when none is known.
func (s *Store) Identity() (identity model.Identity, ok bool) {
	raw, err := s.kv.Load(storage.KeyIdentity)
	if err != nil || raw == "" {
		return model.Identity{}, false
	}
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		s.logger.Error("failed to decode persisted identity", "error", err.Error())
		return model.Identity{}, false
	}
	return identity, true
}

// IsSignedIn reports whether a credential is present.
func (s *Store) IsSignedIn() bool {
	return s.Token() != ""
}

// Role returns the signed-in role, empty when no identity is known.
func (s *Store) Role() model.Role {
	identity, ok := s.Identity()
	if !ok {
		return ""
	}
	return identity.Role
}

func (s *Store) IsLearner() bool {
	return s.Role() == model.RoleLearner
}

func (s *Store) IsProvider() bool {
	return s.Role() == model.RoleProvider
}
