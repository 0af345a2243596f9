// Package mocks provides testify doubles for the client's collaborator
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tutorlink/client/internal/model"
)

// AuthAPI mocks session.AuthAPI.
type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AuthAPI) Register(ctx context.Context, draft model.Draft, role model.Role) (model.Session, error) {
	args := m.Called(ctx, draft, role)
	return args.Get(0).(model.Session), args.Error(1)
}

// Registrar mocks wizard.Registrar.
type Registrar struct {
	mock.Mock
}

func (m *Registrar) Register(ctx context.Context, draft model.Draft, role model.Role) error {
	args := m.Called(ctx, draft, role)
	return args.Error(0)
}

// Locator mocks geo.Locator.
type Locator struct {
	mock.Mock
}

func (m *Locator) Locate(ctx context.Context) (model.Coordinates, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Coordinates), args.Error(1)
}
