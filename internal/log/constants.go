package log

const (
	KeyAppName     = "app"
	KeyTag         = "tag"
	KeyProcess     = "process"
	KeyConfig      = "config"
	KeyEndpoint    = "endpoint"
	KeyUserID      = "userId"
	KeyCartID      = "cartId"
	KeyOrderID     = "orderId"
	KeyProductID   = "productId"
	KeyVariantID   = "variantId"
	KeyBrandID     = "brandId"
	KeyReviewID    = "reviewId"
	KeyOrderStatus = "orderStatus"
	KeyQuantity    = "quantity"
	KeyTotalPrice  = "totalPrice"
	KeyFinalPrice  = "finalPrice"
	KeyDiscount    = "discountAmount"
	KeyStatusCode  = "statusCode"
	KeySessionFile = "sessionFile"
	KeyKeyword     = "keyword"
	KeyPage        = "page"
	KeyPageSize    = "pageSize"
	KeyEmail       = "email"
	KeyToken       = "token"
)
