package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	validate := New()
	type fields struct {
		Password string `validate:"password"`
	}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all character classes", password: "Abc12!", valid: true},
		{name: "longer password", password: "Str0ng&Passw0rd", valid: true},
		{name: "too short", password: "Ab1!", valid: false},
		{name: "missing uppercase", password: "abc12!", valid: false},
		{name: "missing lowercase", password: "ABC12!", valid: false},
		{name: "missing digit", password: "Abcde!", valid: false},
		{name: "missing special", password: "Abc123", valid: false},
		{name: "disallowed character", password: "Abc12! ", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(fields{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	validate := New()
	type fields struct {
		Phone string `validate:"phone_vn"`
	}

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "vinaphone prefix", phone: "0912345678", valid: true},
		{name: "viettel prefix", phone: "0351234567", valid: true},
		{name: "too short", phone: "091234567", valid: false},
		{name: "too long", phone: "09123456789", valid: false},
		{name: "bad prefix", phone: "0112345678", valid: false},
		{name: "not starting with zero", phone: "9123456780", valid: false},
		{name: "letters", phone: "09abc45678", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(fields{Phone: tt.phone})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMaxWords(t *testing.T) {
	validate := New()
	type fields struct {
		Notes string `validate:"maxwords=5"`
	}

	assert.NoError(t, validate.Struct(fields{Notes: ""}))
	assert.NoError(t, validate.Struct(fields{Notes: "giao hàng giờ hành chính"}))
	assert.Error(t, validate.Struct(fields{Notes: "một hai ba bốn năm sáu"}))
	assert.NoError(t, validate.Struct(fields{Notes: strings.Repeat("từ ", 5)}))
	assert.Error(t, validate.Struct(fields{Notes: strings.Repeat("từ ", 6)}))
}
