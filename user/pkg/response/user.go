package response

import (
	"time"

	orderResponse "github.com/pttech/storefront/order/pkg/response"
)

type Login struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

type Role struct {
	RoleName    string   `json:"roleName"`
	Permissions []string `json:"permissions"`
}

type User struct {
	ID                 string                        `json:"id"`
	Email              string                        `json:"email"`
	PhoneNumber        string                        `json:"phoneNumber"`
	Avatar             string                        `json:"avatar"`
	Address            orderResponse.ShippingAddress `json:"address"`
	SubscribedToEmails bool                          `json:"subscribedToEmails"`
	Roles              []Role                        `json:"roles"`
	IsVerified         bool                          `json:"isVerified"`
	IsBlocked          bool                          `json:"isBlocked"`
	IsDeleted          bool                          `json:"isDeleted"`
	CreatedAt          time.Time                     `json:"createdAt"`
	UpdatedAt          time.Time                     `json:"updatedAt"`
}
