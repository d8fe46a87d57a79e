package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	"github.com/pttech/storefront/order/pkg/response"
)

// StatusSummary is the per-bucket order count and finalPrice sum shown
// on the order history header.
type StatusSummary struct {
	Count int
	Total decimal.Decimal
}

type Summary struct {
	Waiting     StatusSummary
	Delivering  StatusSummary
	Delivered   StatusSummary
	TotalOrders int
}

type OrderService struct {
	client  *rest.Client
	session *session.Store
}

func NewOrderService(client *rest.Client, store *session.Store) OrderService {
	return OrderService{client: client, session: store}
}

// FindOrders fetches the user's full order list in one call and sorts it
// client-side, strictly descending by creation timestamp.
func (s OrderService) FindOrders(c context.Context) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "reading session").Logger()
	logger.Info().Msg("reading session")
	sess, err := s.session.Current(c)
	if err != nil {
		err = fmt.Errorf("failed reading session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger = logger.With().Str(log.KeyUserID, sess.UserID).Logger()
	logger.Info().Msg("read session")

	logger = logger.With().Str(log.KeyProcess, "finding orders").Logger()
	logger.Info().Msg("finding orders")
	orders := []response.Order{}
	err = s.client.Get(c, "/api/orders/user/"+sess.UserID, nil, &orders)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d orders", len(orders))

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// Summarize partitions orders into the fixed status buckets and sums
// finalPrice per bucket. Pure and recomputed on demand.
func Summarize(orders []response.Order) Summary {
	summary := Summary{
		Waiting:     StatusSummary{Total: decimal.Zero},
		Delivering:  StatusSummary{Total: decimal.Zero},
		Delivered:   StatusSummary{Total: decimal.Zero},
		TotalOrders: len(orders),
	}
	for _, order := range orders {
		switch order.OrderStatus {
		case response.StatusPending:
			summary.Waiting.Count++
			summary.Waiting.Total = summary.Waiting.Total.Add(order.FinalPrice)
		case response.StatusShipping:
			summary.Delivering.Count++
			summary.Delivering.Total = summary.Delivering.Total.Add(order.FinalPrice)
		case response.StatusDelivered:
			summary.Delivered.Count++
			summary.Delivered.Total = summary.Delivered.Total.Add(order.FinalPrice)
		}
	}
	return summary
}

// FilterByStatus keeps orders whose status equals the given value, in
// their original order. An empty status means all.
func FilterByStatus(orders []response.Order, status string) []response.Order {
	if status == "" {
		return orders
	}
	filtered := []response.Order{}
	for _, order := range orders {
		if order.OrderStatus == status {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// Paginate slices the filtered list by offset. Pages are 1-based.
func Paginate(orders []response.Order, page int, pageSize int) []response.Order {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(orders) {
		return nil
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

func TotalPages(total int, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// CancelOrder posts a cancellation request. The reason is required and
// checked before any network call; the caller re-fetches afterwards, no
// optimistic update happens here.
func (s OrderService) CancelOrder(c context.Context, orderID string, reason string) error {
	return s.requestTransition(c, orderID, "cancel", reason)
}

func (s OrderService) RequestReturn(c context.Context, orderID string, reason string) error {
	return s.requestTransition(c, orderID, "return", reason)
}

func (s OrderService) requestTransition(
	c context.Context,
	orderID string,
	action string,
	reason string,
) error {
	c, span := otel.Tracer.Start(c, "OrderService requestTransition "+action)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService requestTransition").
		Str(log.KeyOrderID, orderID).
		Str(log.KeyProcess, "requesting "+action).
		Logger()

	if strings.TrimSpace(reason) == "" || orderID == "" {
		valErr := &inErrors.ValidationError{Err: inErrors.ErrEmptyReason}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}

	var path string
	query := url.Values{}
	switch action {
	case "cancel":
		path = "/api/orders/cancel/" + orderID
		query.Set("cancellationReason", reason)
	case "return":
		path = "/api/orders/" + orderID + "/request-return"
		query.Set("returnReason", reason)
	default:
		err := fmt.Errorf("unknown order transition action=%s", action)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	logger.Info().Msgf("requesting %s", action)
	err := s.client.Post(c, path, query, nil, nil)
	if err != nil {
		err = fmt.Errorf("failed requesting %s with error=%w", action, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msgf("requested %s", action)

	return nil
}
