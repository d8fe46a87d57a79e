package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	"github.com/pttech/storefront/user/pkg/request"
	"github.com/pttech/storefront/user/pkg/response"
)

func newService(t *testing.T, handler http.Handler) (UserService, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	return NewUserService(rest.NewClient(server.URL, store, 5*time.Second), store), store
}

func TestLoginPersistsSession(t *testing.T) {
	c := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response.Login{
			UserID:      "user-1",
			AccessToken: "token-1",
		})
	})
	svc, store := newService(t, mux)

	result, err := svc.Login(c, request.Login{Email: "a@b.com", Password: "Secret1!"})

	require.NoError(t, err)
	assert.EqualValues(t, "user-1", result.UserID)

	sess, err := store.Current(c)
	require.NoError(t, err)
	assert.EqualValues(t, "user-1", sess.UserID)
	assert.EqualValues(t, "token-1", sess.AccessToken)
}

func TestLoginValidation(t *testing.T) {
	c := context.Background()

	var calls atomic.Int32
	svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	tests := []struct {
		name  string
		login request.Login
	}{
		{name: "missing email", login: request.Login{Password: "Secret1!"}},
		{name: "malformed email", login: request.Login{Email: "not-an-email", Password: "Secret1!"}},
		{name: "weak password", login: request.Login{Email: "a@b.com", Password: "secret"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(c, tt.login)

			valErr := &inErrors.ValidationError{}
			require.ErrorAs(t, err, &valErr)
		})
	}
	assert.EqualValues(t, 0, calls.Load())

	_, err := store.Current(c)
	assert.ErrorIs(t, err, inErrors.ErrNoSession, "no session persisted on failed login")
}

func TestLogoutClearsSession(t *testing.T) {
	c := context.Background()

	svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	require.NoError(t, store.Login(c, "user-1", "token-1"))

	require.NoError(t, svc.Logout(c))

	_, err := store.Current(c)
	assert.ErrorIs(t, err, inErrors.ErrNoSession)
}

func TestFindProfileRequiresSession(t *testing.T) {
	c := context.Background()

	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := svc.FindProfile(c)

	assert.ErrorIs(t, err, inErrors.ErrNoSession)
}
