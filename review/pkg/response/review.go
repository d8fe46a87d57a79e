package response

import "time"

type Review struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productId"`
	ProductVariantID string    `json:"productVariantId"`
	UserID           string    `json:"userId"`
	OrderID          string    `json:"orderId"`
	Rating           int       `json:"rating"`
	Review           string    `json:"review"`
	ReviewTitle      string    `json:"reviewTitle"`
	Images           []string  `json:"images"`
	IsDeleted        bool      `json:"isDeleted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
