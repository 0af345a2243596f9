package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/client/internal/guard"
	"github.com/tutorlink/client/internal/model"
	"github.com/tutorlink/client/internal/storage"
	"github.com/tutorlink/client/internal/testutil"
)

type recordingNavigator struct {
	routes []string
}

func (n *recordingNavigator) NavigateTo(route string) {
	n.routes = append(n.routes, route)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *storage.Memory, *recordingNavigator) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	kv := storage.NewMemory()
	nav := &recordingNavigator{}
	client := NewClient(srv.URL, 5*time.Second, kv, nav, testutil.MakeNoopLogger())

	return client, kv, nav
}

func TestClient_AttachesBearerCredential(t *testing.T) {
	var gotAuth string
	client, kv, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	}))

	require.NoError(t, kv.Save(storage.KeyToken, "opaque-token"))

	_, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token", gotAuth)
}

func TestClient_NoCredentialNoHeader(t *testing.T) {
	var gotAuth string
	var hasRequestID bool
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		hasRequestID = r.Header.Get("X-Request-Id") != ""
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	_, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.True(t, hasRequestID)
}

func TestClient_UnauthorizedClearsSessionAndRedirects(t *testing.T) {
	client, kv, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	require.NoError(t, kv.Save(storage.KeyToken, "expired-token"))
	require.NoError(t, kv.Save(storage.KeyIdentity, `{"role":"learner"}`))

	_, err := client.ListBookings(context.Background())
	require.ErrorIs(t, err, model.ErrUnauthorized)

	token, _ := kv.Load(storage.KeyToken)
	identity, _ := kv.Load(storage.KeyIdentity)
	assert.Empty(t, token)
	assert.Empty(t, identity)
	assert.Equal(t, []string{guard.RouteSignIn}, nav.routes)
}

func TestClient_ServerFailureReturnsMessage(t *testing.T) {
	client, _, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "email already registered"})
	}))

	_, err := client.SignIn(context.Background(), "a@b.co", "secret1")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email already registered", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Empty(t, nav.routes, "non-authorization failures must not redirect")
}

func TestClient_SignInReturnsSession(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); assert.NoError(t, err) {
			assert.Equal(t, "priya@example.com", creds["email"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"token":    "fresh-token",
			"identity": map[string]any{"id": "u1", "role": "learner", "name": "Priya"},
		})
	}))

	sess, err := client.SignIn(context.Background(), "priya@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", sess.Token)
	assert.Equal(t, model.RoleLearner, sess.Identity.Role)
	assert.Equal(t, "Priya", sess.Identity.Name)
}

func TestClient_RegisterTargetsRolePath(t *testing.T) {
	var gotPath string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"token":    "t",
			"identity": map[string]any{"role": "learner"},
		})
	}))

	_, err := client.Register(context.Background(), model.Draft{Name: "Priya"}, model.RoleLearner)
	require.NoError(t, err)
	assert.Equal(t, "/auth/register/learner", gotPath)
}

func TestClient_SearchForwardsQuery(t *testing.T) {
	var gotQuery url.Values
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "p1", "name": "Rahul"}},
		})
	}))

	providers, err := client.SearchProviders(context.Background(), url.Values{"subject": {"Mathematics"}})
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "Rahul", providers[0].Name)
	assert.Equal(t, "Mathematics", gotQuery.Get("subject"))
}
