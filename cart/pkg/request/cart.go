package request

import (
	"github.com/shopspring/decimal"

	"github.com/pttech/storefront/order/pkg/response"
)

// AddCartItem is the add-to-cart body posted from the product detail
// flow, carrying the product snapshot at add-time.
type AddCartItem struct {
	ProductID     string          `validate:"required"       json:"productId"`
	VariantID     string          `validate:"required"       json:"variantId"`
	BrandID       string          `json:"brandId"`
	CategoryID    string          `json:"categoryId"`
	Quantity      int             `validate:"required,gte=1" json:"quantity"`
	ProductName   string          `json:"productName"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	RatingAverage decimal.Decimal `json:"ratingAverage"`
	TotalReviews  int             `json:"totalReviews"`
	ProductImage  string          `json:"productImage"`
	Color         string          `json:"color"`
	HexCode       string          `json:"hexCode"`
	Size          string          `json:"size"`
	Ram           string          `json:"ram"`
	Storage       string          `json:"storage"`
	Condition     string          `json:"condition"`
}

// Checkout carries everything the user types into the checkout form. The
// discount code is deliberately unvalidated free text, anything that does
// not parse as a positive number contributes zero discount.
type Checkout struct {
	Street       string `validate:"required,max=100"    json:"street"`
	Communes     string `validate:"required,max=50"     json:"communes"`
	District     string `validate:"required,max=50"     json:"district"`
	City         string `validate:"required,max=50"     json:"city"`
	Country      string `validate:"required,max=50"     json:"country"`
	PhoneNumber  string `validate:"required,phone_vn"   json:"phoneNumber"`
	OrderNotes   string `validate:"omitempty,maxwords=200" json:"orderNotes"`
	DiscountCode string `json:"discountCode"`
}

func (c Checkout) ShippingAddress() response.ShippingAddress {
	return response.ShippingAddress{
		Street:   c.Street,
		Communes: c.Communes,
		District: c.District,
		City:     c.City,
		Country:  c.Country,
	}
}
