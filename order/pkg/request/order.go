package request

import (
	"github.com/shopspring/decimal"

	"github.com/pttech/storefront/order/pkg/response"
)

// Payment and shipping are fixed constants in the primary checkout flow.
const (
	PaymentMethodCOD   = "COD"
	ShippingMethodGHTK = "Giao hàng tiết kiệm"
)

// CreateOrder embeds a full copy of every cart item's display and pricing
// fields so the order survives later product or price changes.
type CreateOrder struct {
	UserID          string                   `json:"userId"`
	DiscountCode    string                   `json:"discountCode"`
	ShippingAddress response.ShippingAddress `json:"shippingAddress"`
	PhoneNumber     string                   `json:"phoneNumber"`
	OrderNotes      string                   `json:"orderNotes"`
	CartID          string                   `json:"cartId"`
	Items           []OrderItem              `json:"items"`
	TotalItems      int                      `json:"totalItems"`
	TotalPrice      decimal.Decimal          `json:"totalPrice"`
	DiscountAmount  decimal.Decimal          `json:"discountAmount"`
	FinalPrice      decimal.Decimal          `json:"finalPrice"`
	ShippingPrice   decimal.Decimal          `json:"shippingPrice"`
	PaymentMethod   string                   `json:"paymentMethod"`
	ShippingMethod  string                   `json:"shippingMethod"`
}

type OrderItem struct {
	ProductID     string          `json:"productId"`
	VariantID     string          `json:"variantId"`
	BrandID       string          `json:"brandId"`
	CategoryID    string          `json:"categoryId"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ProductName   string          `json:"productName"`
	Color         string          `json:"color"`
	HexCode       string          `json:"hexCode"`
	Size          string          `json:"size"`
	Ram           string          `json:"ram"`
	Storage       string          `json:"storage"`
	Condition     string          `json:"condition"`
	ProductImage  string          `json:"productImage"`
}

type CancelOrder struct {
	OrderID string `validate:"required" json:"orderId"`
	Reason  string `validate:"required" json:"reason"`
}

type RequestReturn struct {
	OrderID string `validate:"required" json:"orderId"`
	Reason  string `validate:"required" json:"reason"`
}
