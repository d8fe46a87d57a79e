package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	review := Review{ProductName: "iPhone 15"}

	review.ApplyDefaults()

	assert.EqualValues(t, "Đánh giá sản phẩm iPhone 15", review.ReviewTitle)
	assert.EqualValues(t, []string{""}, review.Images)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	review := Review{
		ReviewTitle: "Tuyệt vời",
		Images:      []string{"https://example.com/1.jpg"},
	}

	review.ApplyDefaults()

	assert.EqualValues(t, "Tuyệt vời", review.ReviewTitle)
	assert.EqualValues(t, []string{"https://example.com/1.jpg"}, review.Images)
}
