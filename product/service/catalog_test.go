package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	"github.com/pttech/storefront/product/pkg/response"
)

func newTestClient(t *testing.T, handler http.Handler) *rest.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	return rest.NewClient(server.URL, store, 5*time.Second)
}

func TestSearchProducts(t *testing.T) {
	c := context.Background()

	var keyword string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/search", func(w http.ResponseWriter, r *http.Request) {
		keyword = r.URL.Query().Get("keyword")
		_ = json.NewEncoder(w).Encode([]response.Product{{ID: "product-1", Name: "iPhone 15"}})
	})

	svc := NewCatalogService(newTestClient(t, mux))
	products, err := svc.SearchProducts(c, "iphone")

	require.NoError(t, err)
	assert.EqualValues(t, "iphone", keyword)
	require.Len(t, products, 1)
	assert.EqualValues(t, "iPhone 15", products[0].Name)
}

func TestFindDiscountCodesForProduct(t *testing.T) {
	c := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/discount-codes", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]response.DiscountCode{
			{ID: "code-1", Code: "SALE10", ApplicableProducts: []string{"product-1"}},
			{ID: "code-2", Code: "SALE20", ApplicableProducts: []string{"product-2"}},
			{ID: "code-3", Code: "ALL5", ApplicableProducts: []string{"product-1", "product-2"}},
		})
	})

	svc := NewCatalogService(newTestClient(t, mux))
	codes, err := svc.FindDiscountCodesForProduct(c, "product-1")

	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.EqualValues(t, "SALE10", codes[0].Code)
	assert.EqualValues(t, "ALL5", codes[1].Code)
}
