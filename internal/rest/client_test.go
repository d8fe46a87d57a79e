package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestRequestHeaders(t *testing.T) {
	c := context.Background()

	t.Run("attaches the bearer token when a session exists", func(t *testing.T) {
		var authorization, requestID string
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authorization = r.Header.Get(HeaderAuthorization)
				requestID = r.Header.Get(HeaderRequestID)
			}),
		)
		defer server.Close()

		store := newStore(t)
		require.NoError(t, store.Login(c, "user-1", "token-1"))
		client := NewClient(server.URL, store, 5*time.Second)

		require.NoError(t, client.Get(c, "/api/products", nil, nil))
		assert.EqualValues(t, "Bearer token-1", authorization)
		assert.NotEmpty(t, requestID)
	})

	t.Run("sends unauthenticated requests without a session", func(t *testing.T) {
		var authorization string
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authorization = r.Header.Get(HeaderAuthorization)
			}),
		)
		defer server.Close()

		client := NewClient(server.URL, newStore(t), 5*time.Second)

		require.NoError(t, client.Get(c, "/api/products", nil, nil))
		assert.Empty(t, authorization)
	})

	t.Run("sets the json content type only when there is a body", func(t *testing.T) {
		contentTypes := map[string]string{}
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				contentTypes[r.Method] = r.Header.Get(HeaderContentType)
			}),
		)
		defer server.Close()

		client := NewClient(server.URL, newStore(t), 5*time.Second)

		require.NoError(t, client.Get(c, "/api/products", nil, nil))
		require.NoError(t, client.Post(c, "/api/products", nil, map[string]string{"a": "b"}, nil))
		assert.Empty(t, contentTypes[http.MethodGet])
		assert.EqualValues(t, HeaderValueJson, contentTypes[http.MethodPost])
	})
}

func TestErrorMapping(t *testing.T) {
	c := context.Background()

	t.Run("non 2xx maps to ServerError with the body", func(t *testing.T) {
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message":"not found"}`))
			}),
		)
		defer server.Close()

		client := NewClient(server.URL, newStore(t), 5*time.Second)

		err := client.Get(c, "/api/products/missing", nil, nil)

		srvErr := &inErrors.ServerError{}
		require.ErrorAs(t, err, &srvErr)
		assert.EqualValues(t, http.StatusNotFound, srvErr.StatusCode)
		assert.Contains(t, srvErr.Body, "not found")
	})

	t.Run("transport failure maps to NetworkError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, newStore(t), time.Second)

		err := client.Get(c, "/api/products", nil, nil)

		netErr := &inErrors.NetworkError{}
		assert.ErrorAs(t, err, &netErr)
	})

	t.Run("undecodable body maps to ValidationError", func(t *testing.T) {
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}),
		)
		defer server.Close()

		client := NewClient(server.URL, newStore(t), 5*time.Second)

		out := map[string]string{}
		err := client.Get(c, "/api/products", nil, &out)

		valErr := &inErrors.ValidationError{}
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestQueryAndDecode(t *testing.T) {
	c := context.Background()

	var keyword string
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			keyword = r.URL.Query().Get("keyword")
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "product-1"})
		}),
	)
	defer server.Close()

	client := NewClient(server.URL, newStore(t), 5*time.Second)

	query := url.Values{}
	query.Set("keyword", "iphone")
	out := map[string]string{}
	err := client.Get(c, "/api/products/search", query, &out)

	require.NoError(t, err)
	assert.EqualValues(t, "iphone", keyword)
	assert.EqualValues(t, "product-1", out["id"])
}
