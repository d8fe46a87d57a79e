package request

import (
	"github.com/rs/zerolog"

	"github.com/pttech/storefront/order/pkg/response"
)

type Login struct {
	Email    string `validate:"required,email"    json:"email"`
	Password string `validate:"required,password" json:"password"`
}

func (l Login) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", l.Email).Str("password", "***")
}

type Role struct {
	RoleName    string   `json:"roleName"`
	Permissions []string `json:"permissions"`
}

// Register posts the full profile the backend expects on signup,
// defaulted the same way the mobile client does.
type Register struct {
	Email              string                   `validate:"required,email"    json:"email"`
	PhoneNumber        string                   `validate:"required,phone_vn" json:"phoneNumber"`
	Password           string                   `validate:"required,password" json:"password"`
	Avatar             string                   `json:"avatar"`
	Address            response.ShippingAddress `json:"address"`
	SubscribedToEmails bool                     `json:"subscribedToEmails"`
	Roles              []Role                   `json:"roles"`
	IsVerified         string                   `json:"isVerified"`
}

const defaultAvatar = "https://i.postimg.cc/153KnpPS/avatar-m-c-nh.jpg"

func (r *Register) ApplyDefaults() {
	if r.Avatar == "" {
		r.Avatar = defaultAvatar
	}
	if len(r.Roles) == 0 {
		r.Roles = []Role{{RoleName: "CUSTOMER", Permissions: []string{""}}}
	}
	if r.IsVerified == "" {
		r.IsVerified = "true"
	}
}

func (r Register) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", r.Email).Str("phoneNumber", r.PhoneNumber).Str("password", "***")
}

type ForgotPassword struct {
	Email string `validate:"required,email" json:"email"`
}

type ResetPassword struct {
	Email       string `validate:"required,email"    json:"email"`
	Token       string `validate:"required"          json:"token"`
	NewPassword string `validate:"required,password" json:"newPassword"`
}

func (r ResetPassword) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", r.Email).Str("token", "***").Str("newPassword", "***")
}

type UpdateProfile struct {
	Email              string                   `validate:"omitempty,email"    json:"email"`
	PhoneNumber        string                   `validate:"omitempty,phone_vn" json:"phoneNumber"`
	Password           string                   `json:"password,omitempty"`
	Avatar             string                   `json:"avatar,omitempty"`
	Address            response.ShippingAddress `json:"address"`
	SubscribedToEmails bool                     `json:"subscribedToEmails"`
}

func (u UpdateProfile) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", u.Email).Str("phoneNumber", u.PhoneNumber).Str("password", "***")
}
