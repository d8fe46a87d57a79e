package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Pricing struct {
	Original decimal.Decimal `json:"original"`
	Current  decimal.Decimal `json:"current"`
}

type Ratings struct {
	Average      decimal.Decimal `json:"average"`
	TotalReviews int             `json:"totalReviews"`
}

type Variant struct {
	VariantID string          `json:"variantId"`
	Color     string          `json:"color"`
	HexCode   string          `json:"hexCode"`
	Size      string          `json:"size"`
	Ram       string          `json:"ram"`
	Storage   string          `json:"storage"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BrandID     string    `json:"brandId"`
	CategoryID  string    `json:"categoryId"`
	Pricing     Pricing   `json:"pricing"`
	Ratings     Ratings   `json:"ratings"`
	Images      []string  `json:"images"`
	Variants    []Variant `json:"variants"`
	Condition   string    `json:"condition"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Brand struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	IsDeleted bool   `json:"isDeleted"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	IsDeleted bool   `json:"isDeleted"`
}

type DiscountCode struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	ApplicableProducts []string        `json:"applicableProducts"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	IsDeleted          bool            `json:"isDeleted"`
}

func (d DiscountCode) AppliesTo(productID string) bool {
	for _, id := range d.ApplicableProducts {
		if id == productID {
			return true
		}
	}
	return false
}

type AdImage struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
}
