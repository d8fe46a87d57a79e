package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart mirrors the backend cart wholesale. totalPrice and totalItems are
// authoritative only right after a server response, the client never
// recomputes them except for the final checkout price.
type Cart struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	IsDeleted  bool            `json:"isDeleted"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CartItem is identified by the (productId, variantId) pair. The display
// fields are an add-time snapshot of the product.
type CartItem struct {
	ProductID     string          `json:"productId"`
	VariantID     string          `json:"variantId"`
	BrandID       string          `json:"brandId"`
	CategoryID    string          `json:"categoryId"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ProductName   string          `json:"productName"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	ProductImage  string          `json:"productImage"`
	Color         string          `json:"color"`
	HexCode       string          `json:"hexCode"`
	Size          string          `json:"size"`
	Ram           string          `json:"ram"`
	Storage       string          `json:"storage"`
	Condition     string          `json:"condition"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (cart Cart) IsEmpty() bool {
	return len(cart.Items) == 0
}
