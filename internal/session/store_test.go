package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/client/internal/mocks"
	"github.com/tutorlink/client/internal/model"
	"github.com/tutorlink/client/internal/storage"
	"github.com/tutorlink/client/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory, *mocks.AuthAPI) {
	t.Helper()

	kv := storage.NewMemory()
	auth := &mocks.AuthAPI{}
	store := NewStore(kv, auth, testutil.MakeNoopLogger())

	return store, kv, auth
}

func TestStore_InitRecoversPersistedSession(t *testing.T) {
	store, kv, _ := newTestStore(t)

	require.NoError(t, kv.Save(storage.KeyToken, "persisted-token"))
	require.NoError(t, kv.Save(storage.KeyIdentity, `{"id":"u1","role":"learner","name":"Priya"}`))

	assert.False(t, store.Ready())
	require.NoError(t, store.Init())

	assert.True(t, store.Ready())
	assert.True(t, store.IsSignedIn())
	assert.True(t, store.IsLearner())
	assert.False(t, store.IsProvider())

	identity, ok := store.Identity()
	require.True(t, ok)
	assert.Equal(t, "Priya", identity.Name)
}

func TestStore_InitCredentialWithoutIdentity(t *testing.T) {
	store, kv, _ := newTestStore(t)

	require.NoError(t, kv.Save(storage.KeyToken, "orphan-token"))

	require.NoError(t, store.Init())

	assert.True(t, store.IsSignedIn())
	_, ok := store.Identity()
	assert.False(t, ok)
	assert.False(t, store.IsLearner())
	assert.False(t, store.IsProvider())
}

func TestStore_SignInPersistsOnSuccess(t *testing.T) {
	store, kv, auth := newTestStore(t)
	require.NoError(t, store.Init())

	sess := model.Session{
		Token:    "fresh-token",
		Identity: model.Identity{ID: "u1", Role: model.RoleLearner, Email: "priya@example.com"},
	}
	auth.On("SignIn", mock.Anything, "priya@example.com", "secret1").Return(sess, nil)

	require.NoError(t, store.SignIn(context.Background(), "priya@example.com", "secret1"))

	assert.Equal(t, "fresh-token", store.Token())
	assert.True(t, store.IsLearner())

	token, _ := kv.Load(storage.KeyToken)
	assert.Equal(t, "fresh-token", token)

	raw, _ := kv.Load(storage.KeyIdentity)
	var persisted model.Identity
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, model.RoleLearner, persisted.Role)
}

func TestStore_SignInFailureLeavesStateUntouched(t *testing.T) {
	store, kv, auth := newTestStore(t)
	require.NoError(t, store.Init())

	auth.On("SignIn", mock.Anything, "priya@example.com", "wrong").
		Return(model.Session{}, errors.New("Invalid credentials"))

	err := store.SignIn(context.Background(), "priya@example.com", "wrong")
	require.EqualError(t, err, "Invalid credentials")

	assert.False(t, store.IsSignedIn())
	token, _ := kv.Load(storage.KeyToken)
	assert.Empty(t, token)
}

func TestStore_RegisterAdoptsSession(t *testing.T) {
	store, _, auth := newTestStore(t)
	require.NoError(t, store.Init())

	draft := model.Draft{Name: "Priya", Email: "priya@example.com"}
	sess := model.Session{
		Token:    "reg-token",
		Identity: model.Identity{ID: "u2", Role: model.RoleLearner, Name: "Priya"},
	}
	auth.On("Register", mock.Anything, draft, model.RoleLearner).Return(sess, nil)

	require.NoError(t, store.Register(context.Background(), draft, model.RoleLearner))
	assert.True(t, store.IsSignedIn())
	assert.True(t, store.IsLearner())
}

func TestStore_SignOutFromAnyPriorState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, store *Store, kv *storage.Memory)
	}{
		{
			name:  "never signed in",
			setup: func(t *testing.T, store *Store, kv *storage.Memory) {},
		},
		{
			name: "signed in with identity",
			setup: func(t *testing.T, store *Store, kv *storage.Memory) {
				require.NoError(t, kv.Save(storage.KeyToken, "tok"))
				require.NoError(t, kv.Save(storage.KeyIdentity, `{"role":"provider"}`))
				require.NoError(t, store.Init())
			},
		},
		{
			name: "already signed out once",
			setup: func(t *testing.T, store *Store, kv *storage.Memory) {
				require.NoError(t, kv.Save(storage.KeyToken, "tok"))
				require.NoError(t, store.Init())
				store.SignOut()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kv, _ := newTestStore(t)
			tt.setup(t, store, kv)

			store.SignOut()

			assert.False(t, store.IsSignedIn())
			assert.False(t, store.IsLearner())
			assert.False(t, store.IsProvider())
			_, ok := store.Identity()
			assert.False(t, ok)

			token, _ := kv.Load(storage.KeyToken)
			assert.Empty(t, token)
		})
	}
}

func TestStore_ExternalPurgeIsVisible(t *testing.T) {
	store, kv, _ := newTestStore(t)

	require.NoError(t, kv.Save(storage.KeyToken, "tok"))
	require.NoError(t, kv.Save(storage.KeyIdentity, `{"role":"learner"}`))
	require.NoError(t, store.Init())
	require.True(t, store.IsSignedIn())

	// The API client clears the persisted session on an authorization
	// failure; the store must reflect that without being told.
	require.NoError(t, kv.Clear(storage.KeyToken, storage.KeyIdentity))

	assert.False(t, store.IsSignedIn())
	_, ok := store.Identity()
	assert.False(t, ok)
}

func TestStore_UpdateIdentityKeepsCredentialAndRole(t *testing.T) {
	store, kv, _ := newTestStore(t)

	require.NoError(t, kv.Save(storage.KeyToken, "tok"))
	require.NoError(t, kv.Save(storage.KeyIdentity, `{"id":"u1","role":"learner","name":"Priya"}`))
	require.NoError(t, store.Init())

	update := model.Identity{ID: "u1", Role: model.RoleProvider, Name: "Priya S"}
	require.NoError(t, store.UpdateIdentity(update))

	assert.Equal(t, "tok", store.Token())

	identity, ok := store.Identity()
	require.True(t, ok)
	assert.Equal(t, "Priya S", identity.Name)
	assert.Equal(t, model.RoleLearner, identity.Role, "role must survive profile updates")
}
