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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pttech/storefront/cart/pkg/request"
	"github.com/pttech/storefront/cart/pkg/response"
	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	orderResponse "github.com/pttech/storefront/order/pkg/response"
)

func TestDiscountAmount(t *testing.T) {
	million := decimal.NewFromInt(1_000_000)
	tests := []struct {
		name     string
		raw      string
		total    decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "ten percent of a million",
			raw:      "10",
			total:    million,
			expected: decimal.NewFromInt(100_000),
		},
		{
			name:     "whitespace is trimmed",
			raw:      " 10 ",
			total:    million,
			expected: decimal.NewFromInt(100_000),
		},
		{
			name:     "non numeric input contributes nothing",
			raw:      "abc",
			total:    million,
			expected: decimal.Zero,
		},
		{
			name:     "empty input contributes nothing",
			raw:      "",
			total:    million,
			expected: decimal.Zero,
		},
		{
			name:     "negative input contributes nothing",
			raw:      "-5",
			total:    million,
			expected: decimal.Zero,
		},
		{
			name:     "zero input contributes nothing",
			raw:      "0",
			total:    million,
			expected: decimal.Zero,
		},
		{
			name:     "over one hundred percent is not clamped",
			raw:      "150",
			total:    million,
			expected: decimal.NewFromInt(1_500_000),
		},
		{
			name:     "fractional percentage",
			raw:      "2.5",
			total:    million,
			expected: decimal.NewFromInt(25_000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := DiscountAmount(tt.raw, tt.total)
			assert.True(
				t,
				tt.expected.Equal(actual),
				"expected=%s actual=%s",
				tt.expected,
				actual,
			)
		})
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		total    decimal.Decimal
		discount decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "adds the flat shipping fee",
			total:    decimal.NewFromInt(1_000_000),
			discount: decimal.Zero,
			expected: decimal.NewFromInt(1_030_000),
		},
		{
			name:     "subtracts the discount before shipping",
			total:    decimal.NewFromInt(1_000_000),
			discount: decimal.NewFromInt(100_000),
			expected: decimal.NewFromInt(930_000),
		},
		{
			name:     "unclamped discount can push the price negative",
			total:    decimal.NewFromInt(1_000_000),
			discount: decimal.NewFromInt(1_500_000),
			expected: decimal.NewFromInt(-470_000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := FinalPrice(tt.total, tt.discount)
			assert.True(
				t,
				tt.expected.Equal(actual),
				"expected=%s actual=%s",
				tt.expected,
				actual,
			)
		})
	}
}

func newTestSession(t *testing.T, userID string) *session.Store {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Login(context.Background(), userID, "test-token"))
	return store
}

func testCart() response.Cart {
	return response.Cart{
		ID:         "cart-1",
		UserID:     "user-1",
		TotalItems: 3,
		TotalPrice: decimal.NewFromInt(1_000_000),
		Items: []response.CartItem{
			{
				ProductID:  "product-1",
				VariantID:  "variant-1",
				Quantity:   1,
				TotalPrice: decimal.NewFromInt(400_000),
			},
			{
				ProductID:  "product-2",
				VariantID:  "variant-2",
				Quantity:   2,
				TotalPrice: decimal.NewFromInt(600_000),
			},
		},
	}
}

func validCheckout() request.Checkout {
	return request.Checkout{
		Street:      "1 Lê Lợi",
		Communes:    "Bến Nghé",
		District:    "Quận 1",
		City:        "Hồ Chí Minh",
		Country:     "Việt Nam",
		PhoneNumber: "0912345678",
	}
}

func TestCheckout(t *testing.T) {
	c := context.Background()

	t.Run("empty cart is rejected before any request", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
			}),
		)
		defer server.Close()

		store := newTestSession(t, "user-1")
		svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)

		_, _, err := svc.Checkout(c, validCheckout())

		valErr := &inErrors.ValidationError{}
		require.ErrorAs(t, err, &valErr)
		assert.ErrorIs(t, valErr.Err, inErrors.ErrEmptyCart)
		assert.EqualValues(t, 0, calls.Load())
	})

	t.Run("invalid phone number is rejected before any order request", func(t *testing.T) {
		var orderCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/carts/user/user-1", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(testCart())
		})
		mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
			orderCalls.Add(1)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		store := newTestSession(t, "user-1")
		svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)
		_, err := svc.FindCart(c)
		require.NoError(t, err)

		param := validCheckout()
		param.PhoneNumber = "12345"
		_, _, err = svc.Checkout(c, param)

		valErr := &inErrors.ValidationError{}
		require.ErrorAs(t, err, &valErr)
		assert.EqualValues(t, 0, orderCalls.Load())
	})

	t.Run("posts the order and clears the cart", func(t *testing.T) {
		var posted orderRequestBody
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/carts/user/user-1", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(testCart())
		})
		mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			_ = json.NewEncoder(w).Encode(orderResponse.Order{
				ID:          "order-1",
				OrderStatus: orderResponse.StatusPending,
			})
		})
		var deletes atomic.Int32
		mux.HandleFunc("DELETE /api/carts/cart-1/items/", func(w http.ResponseWriter, r *http.Request) {
			deletes.Add(1)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		store := newTestSession(t, "user-1")
		svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)
		_, err := svc.FindCart(c)
		require.NoError(t, err)

		param := validCheckout()
		param.DiscountCode = "10"
		placed, report, err := svc.Checkout(c, param)

		require.NoError(t, err)
		assert.EqualValues(t, "order-1", placed.ID)
		assert.True(t, report.AllCleared())
		assert.EqualValues(t, 2, deletes.Load())

		assert.EqualValues(t, "user-1", posted.UserID)
		assert.EqualValues(t, "cart-1", posted.CartID)
		assert.EqualValues(t, "COD", posted.PaymentMethod)
		assert.EqualValues(t, "Giao hàng tiết kiệm", posted.ShippingMethod)
		assert.EqualValues(t, "1000000", posted.TotalPrice)
		assert.EqualValues(t, "100000", posted.DiscountAmount)
		assert.EqualValues(t, "930000", posted.FinalPrice)
		assert.EqualValues(t, "30000", posted.ShippingPrice)
		assert.Len(t, posted.Items, 2)

		assert.True(t, svc.Cart().IsEmpty())
		assert.EqualValues(t, 0, svc.Cart().TotalItems)
		assert.True(t, svc.Cart().TotalPrice.IsZero())
	})

	t.Run("failed item deletes are reported but the cart still empties", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/carts/user/user-1", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(testCart())
		})
		mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(orderResponse.Order{ID: "order-1"})
		})
		mux.HandleFunc(
			"DELETE /api/carts/cart-1/items/product-1/variant-1",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		)
		mux.HandleFunc(
			"DELETE /api/carts/cart-1/items/product-2/variant-2",
			func(w http.ResponseWriter, r *http.Request) {},
		)
		server := httptest.NewServer(mux)
		defer server.Close()

		store := newTestSession(t, "user-1")
		svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)
		_, err := svc.FindCart(c)
		require.NoError(t, err)

		_, report, err := svc.Checkout(c, validCheckout())

		require.NoError(t, err)
		require.Len(t, report.Failures, 1)
		assert.EqualValues(t, "product-1", report.Failures[0].ProductID)
		assert.EqualValues(t, "variant-1", report.Failures[0].VariantID)
		srvErr := &inErrors.ServerError{}
		assert.ErrorAs(t, report.Failures[0].Err, &srvErr)
		assert.True(t, svc.Cart().IsEmpty())
	})

	t.Run("a rejected order leaves the cart untouched", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/carts/user/user-1", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(testCart())
		})
		mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		store := newTestSession(t, "user-1")
		svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)
		_, err := svc.FindCart(c)
		require.NoError(t, err)

		_, _, err = svc.Checkout(c, validCheckout())

		srvErr := &inErrors.ServerError{}
		require.ErrorAs(t, err, &srvErr)
		assert.False(t, svc.Cart().IsEmpty())
		assert.EqualValues(t, 3, svc.Cart().TotalItems)
	})
}

// orderRequestBody decodes the decimal fields as plain strings so the
// assertions stay exact.
type orderRequestBody struct {
	UserID         string `json:"userId"`
	CartID         string `json:"cartId"`
	PaymentMethod  string `json:"paymentMethod"`
	ShippingMethod string `json:"shippingMethod"`
	TotalPrice     string `json:"totalPrice"`
	DiscountAmount string `json:"discountAmount"`
	FinalPrice     string `json:"finalPrice"`
	ShippingPrice  string `json:"shippingPrice"`
	Items          []struct {
		ProductID string `json:"productId"`
		VariantID string `json:"variantId"`
	} `json:"items"`
}

func TestMutateQuantity(t *testing.T) {
	c := context.Background()

	mutated := testCart()
	mutated.TotalItems = 4
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/carts/user/user-1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(testCart())
	})
	mux.HandleFunc(
		"PUT /api/carts/cart-1/increase/product-1/variant-1",
		func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(mutated)
		},
	)
	server := httptest.NewServer(mux)
	defer server.Close()

	store := newTestSession(t, "user-1")
	svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)
	_, err := svc.FindCart(c)
	require.NoError(t, err)

	cart, err := svc.IncreaseQuantity(c, "product-1", "variant-1")

	require.NoError(t, err)
	assert.EqualValues(t, 4, cart.TotalItems)
	assert.EqualValues(t, 4, svc.Cart().TotalItems)
}

func TestAddItemValidation(t *testing.T) {
	c := context.Background()

	var calls atomic.Int32
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}),
	)
	defer server.Close()

	store := newTestSession(t, "user-1")
	svc := NewCartService(rest.NewClient(server.URL, store, 5*time.Second), store)

	err := svc.AddItem(c, "cart-1", request.AddCartItem{ProductID: "product-1"})

	valErr := &inErrors.ValidationError{}
	require.ErrorAs(t, err, &valErr)
	assert.EqualValues(t, 0, calls.Load())
}
