package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status vocabulary as the backend emits it.
const (
	StatusPending        = "Chờ xác nhận"
	StatusAwaitingPickup = "Chờ lấy hàng"
	StatusShipping       = "Đang giao"
	StatusDelivered      = "Đã giao"
	StatusCancelled      = "Đã hủy"
	StatusReturned       = "Đã trả hàng"
)

var StatusOptions = []string{
	StatusPending,
	StatusAwaitingPickup,
	StatusDelivered,
	StatusShipping,
	StatusCancelled,
	StatusReturned,
}

type ShippingAddress struct {
	Street   string `json:"street"`
	Communes string `json:"communes"`
	District string `json:"district"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// Order is immutable once placed; status transitions happen server-side
// and are only observed through re-fetches.
type Order struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"orderId"`
	UserID             string          `json:"userId"`
	Items              []OrderItem     `json:"items"`
	TotalItems         int             `json:"totalItems"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	ShippingPrice      decimal.Decimal `json:"shippingPrice"`
	DiscountCode       string          `json:"discountCode,omitempty"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	FinalPrice         decimal.Decimal `json:"finalPrice"`
	PhoneNumber        string          `json:"phoneNumber"`
	ShippingAddress    ShippingAddress `json:"shippingAddress"`
	PaymentMethod      string          `json:"paymentMethod"`
	PaymentStatus      string          `json:"paymentStatus"`
	OrderStatus        string          `json:"orderStatus"`
	ShippingMethod     string          `json:"shippingMethod"`
	OrderNotes         string          `json:"orderNotes,omitempty"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	ReturnReason       string          `json:"returnReason,omitempty"`
	IsReturnApproved   bool            `json:"isReturnApproved,omitempty"`
	IsDeleted          bool            `json:"isDeleted"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// OrderItem is structurally a cart item snapshot plus the line total.
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
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
