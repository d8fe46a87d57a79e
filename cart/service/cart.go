package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pttech/storefront/cart/pkg/request"
	"github.com/pttech/storefront/cart/pkg/response"
	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	"github.com/pttech/storefront/internal/validate"
	orderRequest "github.com/pttech/storefront/order/pkg/request"
	orderResponse "github.com/pttech/storefront/order/pkg/response"
)

// ShippingFee is the flat checkout shipping fee in VND.
var ShippingFee = decimal.NewFromInt(30000)

var oneHundred = decimal.NewFromInt(100)

// DiscountAmount interprets the raw discount input as a percentage.
// Anything that does not parse as a positive number contributes zero.
// The result is deliberately not clamped to the subtotal.
func DiscountAmount(raw string, totalPrice decimal.Decimal) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}
	percentage, err := decimal.NewFromString(trimmed)
	if err != nil || !percentage.IsPositive() {
		return decimal.Zero
	}
	return totalPrice.Mul(percentage).Div(oneHundred)
}

func FinalPrice(totalPrice, discountAmount decimal.Decimal) decimal.Decimal {
	return totalPrice.Sub(discountAmount).Add(ShippingFee)
}

// ClearFailure names a cart item whose post-order delete did not succeed.
type ClearFailure struct {
	ProductID string
	VariantID string
	Err       error
}

// ClearReport is the partial-failure report of the best-effort cart
// clearing batch that follows a placed order.
type ClearReport struct {
	Failures []ClearFailure
}

func (r ClearReport) AllCleared() bool {
	return len(r.Failures) == 0
}

// CartService mirrors the server cart and provides the checkout
// arithmetic. Mutations replace the mirrored cart wholesale with the
// server's response, the last response applied wins.
type CartService struct {
	client   *rest.Client
	session  *session.Store
	validate *validator.Validate
	current  response.Cart
}

func NewCartService(client *rest.Client, store *session.Store) *CartService {
	return &CartService{client: client, session: store, validate: validate.New()}
}

func (s *CartService) Cart() response.Cart {
	return s.current
}

func (s *CartService) FindCart(c context.Context) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "reading session").Logger()
	logger.Info().Msg("reading session")
	sess, err := s.session.Current(c)
	if err != nil {
		err = fmt.Errorf("failed reading session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyUserID, sess.UserID).Logger()
	logger.Info().Msg("read session")

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart := response.Cart{}
	err = s.client.Get(c, "/api/carts/user/"+sess.UserID, nil, &cart)
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID).Logger()
	logger.Info().Msg("found cart")

	s.current = cart
	return cart, nil
}

func (s *CartService) IncreaseQuantity(
	c context.Context,
	productID string,
	variantID string,
) (response.Cart, error) {
	return s.mutateQuantity(c, "increase", productID, variantID)
}

func (s *CartService) DecreaseQuantity(
	c context.Context,
	productID string,
	variantID string,
) (response.Cart, error) {
	// Decreasing below 1 is the server's call to reject or clamp.
	return s.mutateQuantity(c, "decrease", productID, variantID)
}

func (s *CartService) mutateQuantity(
	c context.Context,
	direction string,
	productID string,
	variantID string,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService mutateQuantity "+direction)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService mutateQuantity").
		Str(log.KeyCartID, s.current.ID).
		Str(log.KeyProductID, productID).
		Str(log.KeyVariantID, variantID).
		Str(log.KeyProcess, direction+" quantity").
		Logger()

	logger.Info().Msgf("%s quantity", direction)
	cart := response.Cart{}
	path := fmt.Sprintf("/api/carts/%s/%s/%s/%s", s.current.ID, direction, productID, variantID)
	err := s.client.Put(c, path, nil, nil, &cart)
	if err != nil {
		err = fmt.Errorf("failed %s quantity with error=%w", direction, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("%sd quantity", direction)

	s.current = cart
	return cart, nil
}

func (s *CartService) RemoveItem(
	c context.Context,
	productID string,
	variantID string,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeyCartID, s.current.ID).
		Str(log.KeyProductID, productID).
		Str(log.KeyVariantID, variantID).
		Str(log.KeyProcess, "removing cart item").
		Logger()

	logger.Info().Msg("removing cart item")
	cart := response.Cart{}
	path := fmt.Sprintf("/api/carts/%s/items/%s/%s", s.current.ID, productID, variantID)
	err := s.client.Delete(c, path, nil, &cart)
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("removed cart item")

	s.current = cart
	return cart, nil
}

func (s *CartService) AddItem(c context.Context, cartID string, param request.AddCartItem) error {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeyCartID, cartID).
		Str(log.KeyProductID, param.ProductID).
		Str(log.KeyVariantID, param.VariantID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating cart item").Logger()
	logger.Info().Msg("validating cart item")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}
	logger.Info().Msg("validated cart item")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	err := s.client.Post(c, "/api/carts/"+cartID+"/items", nil, param, nil)
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("added cart item")

	return nil
}

// Checkout validates the form, posts the order with a full item snapshot
// and then clears the cart best-effort. A failed order post leaves the
// cart untouched; failed per-item deletes are reported but the mirrored
// cart is emptied regardless.
func (s *CartService) Checkout(
	c context.Context,
	param request.Checkout,
) (orderResponse.Order, ClearReport, error) {
	c, span := otel.Tracer.Start(c, "CartService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService Checkout").
		Str(log.KeyCartID, s.current.ID).
		Logger()

	if s.current.IsEmpty() {
		valErr := &inErrors.ValidationError{Err: inErrors.ErrEmptyCart}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return orderResponse.Order{}, ClearReport{}, valErr
	}

	logger = logger.With().Str(log.KeyProcess, "validating checkout form").Logger()
	logger.Info().Msg("validating checkout form")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return orderResponse.Order{}, ClearReport{}, valErr
	}
	logger.Info().Msg("validated checkout form")

	logger = logger.With().Str(log.KeyProcess, "reading session").Logger()
	logger.Info().Msg("reading session")
	sess, err := s.session.Current(c)
	if err != nil {
		err = fmt.Errorf("failed reading session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return orderResponse.Order{}, ClearReport{}, err
	}
	logger = logger.With().Str(log.KeyUserID, sess.UserID).Logger()
	logger.Info().Msg("read session")

	discountAmount := DiscountAmount(param.DiscountCode, s.current.TotalPrice)
	finalPrice := FinalPrice(s.current.TotalPrice, discountAmount)
	logger = logger.With().
		Str(log.KeyTotalPrice, s.current.TotalPrice.String()).
		Str(log.KeyDiscount, discountAmount.String()).
		Str(log.KeyFinalPrice, finalPrice.String()).
		Logger()

	items := make([]orderRequest.OrderItem, len(s.current.Items))
	for i, item := range s.current.Items {
		items[i] = orderRequest.OrderItem{
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			BrandID:       item.BrandID,
			CategoryID:    item.CategoryID,
			DiscountPrice: item.DiscountPrice,
			OriginalPrice: item.OriginalPrice,
			Quantity:      item.Quantity,
			TotalPrice:    item.TotalPrice,
			ProductName:   item.ProductName,
			Color:         item.Color,
			HexCode:       item.HexCode,
			Size:          item.Size,
			Ram:           item.Ram,
			Storage:       item.Storage,
			Condition:     item.Condition,
			ProductImage:  item.ProductImage,
		}
	}
	orderData := orderRequest.CreateOrder{
		UserID:          sess.UserID,
		DiscountCode:    param.DiscountCode,
		ShippingAddress: param.ShippingAddress(),
		PhoneNumber:     param.PhoneNumber,
		OrderNotes:      param.OrderNotes,
		CartID:          s.current.ID,
		Items:           items,
		TotalItems:      s.current.TotalItems,
		TotalPrice:      s.current.TotalPrice,
		DiscountAmount:  discountAmount,
		FinalPrice:      finalPrice,
		ShippingPrice:   ShippingFee,
		PaymentMethod:   orderRequest.PaymentMethodCOD,
		ShippingMethod:  orderRequest.ShippingMethodGHTK,
	}

	logger = logger.With().Str(log.KeyProcess, "submitting order").Logger()
	logger.Info().Msg("submitting order")
	placed := orderResponse.Order{}
	err = s.client.Post(c, "/api/orders", nil, orderData, &placed)
	if err != nil {
		err = fmt.Errorf("failed submitting order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return orderResponse.Order{}, ClearReport{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, placed.ID).Logger()
	logger.Info().Msg("submitted order")

	report := s.clearItems(c, s.current)

	emptied := s.current
	emptied.Items = nil
	emptied.TotalItems = 0
	emptied.TotalPrice = decimal.Zero
	emptied.UpdatedAt = time.Now()
	s.current = emptied

	return placed, report, nil
}

// clearItems issues one concurrent delete per item with no ordering
// guarantee and no rollback; failures are logged and reported, not
// retried.
func (s *CartService) clearItems(c context.Context, cart response.Cart) ClearReport {
	c, span := otel.Tracer.Start(c, "CartService clearItems")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService clearItems").
		Str(log.KeyCartID, cart.ID).
		Str(log.KeyProcess, "clearing cart items").
		Logger()

	logger.Info().Msgf("clearing %d cart items", len(cart.Items))
	var wg sync.WaitGroup
	var mu sync.Mutex
	report := ClearReport{}
	for _, item := range cart.Items {
		wg.Add(1)
		go func(item response.CartItem) {
			defer wg.Done()
			path := fmt.Sprintf("/api/carts/%s/items/%s/%s", cart.ID, item.ProductID, item.VariantID)
			if err := s.client.Delete(c, path, nil, nil); err != nil {
				err = fmt.Errorf("failed clearing cart item with error=%w", err)
				logger.Error().
					Str(log.KeyProductID, item.ProductID).
					Str(log.KeyVariantID, item.VariantID).
					Err(err).
					Msg(err.Error())
				mu.Lock()
				report.Failures = append(report.Failures, ClearFailure{
					ProductID: item.ProductID,
					VariantID: item.VariantID,
					Err:       err,
				})
				mu.Unlock()
			}
		}(item)
	}
	wg.Wait()
	logger.Info().Msgf("cleared cart items with %d failures", len(report.Failures))

	return report
}
