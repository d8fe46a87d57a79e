package request

import "fmt"

// Review is the body posted to the reviews endpoint. The order id is an
// explicit required field, the caller names the order being reviewed
// rather than inferring it from the product id.
type Review struct {
	ProductID        string   `validate:"required"                       json:"productId"`
	ProductVariantID string   `validate:"required"                       json:"productVariantId"`
	UserID           string   `validate:"required"                       json:"userId"`
	OrderID          string   `validate:"required"                       json:"orderId"`
	Rating           int      `validate:"required,gte=1,lte=5"           json:"rating"`
	Review           string   `validate:"required,maxwords=200"          json:"review"`
	ReviewTitle      string   `json:"reviewTitle"`
	Images           []string `json:"images"`
	IsDeleted        bool     `json:"isDeleted"`

	// ProductName is only used to default the title, it is not posted.
	ProductName string `json:"-"`
}

// ApplyDefaults fills the title from the product name and guarantees at
// least one image entry, matching what the backend expects.
func (r *Review) ApplyDefaults() {
	if r.ReviewTitle == "" {
		r.ReviewTitle = fmt.Sprintf("Đánh giá sản phẩm %s", r.ProductName)
	}
	if len(r.Images) == 0 {
		r.Images = []string{""}
	}
}
