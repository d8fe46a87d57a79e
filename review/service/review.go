package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	"github.com/pttech/storefront/internal/validate"
	orderResponse "github.com/pttech/storefront/order/pkg/response"
	"github.com/pttech/storefront/review/pkg/request"
	"github.com/pttech/storefront/review/pkg/response"
)

// ReviewedVariants maps an order id to the set of variant ids that
// already carry a non-deleted review, used to suppress duplicate review
// actions in the delivered bucket.
type ReviewedVariants map[string]map[string]struct{}

func (rv ReviewedVariants) Contains(orderID string, variantID string) bool {
	variants, ok := rv[orderID]
	if !ok {
		return false
	}
	_, ok = variants[variantID]
	return ok
}

type ReviewService struct {
	client   *rest.Client
	session  *session.Store
	validate *validator.Validate
}

func NewReviewService(client *rest.Client, store *session.Store) ReviewService {
	return ReviewService{client: client, session: store, validate: validate.New()}
}

// Submit validates the review client-side and posts it. A zero rating or
// empty text never reaches the network.
func (s ReviewService) Submit(c context.Context, param request.Review) error {
	c, span := otel.Tracer.Start(c, "ReviewService Submit")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ReviewService Submit").
		Str(log.KeyOrderID, param.OrderID).
		Str(log.KeyProductID, param.ProductID).
		Str(log.KeyVariantID, param.ProductVariantID).
		Logger()

	if param.UserID == "" {
		sess, err := s.session.Current(c)
		if err != nil {
			err = fmt.Errorf("failed reading session with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		param.UserID = sess.UserID
	}
	param.ApplyDefaults()

	logger = logger.With().Str(log.KeyProcess, "validating review").Logger()
	logger.Info().Msg("validating review")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}
	logger.Info().Msg("validated review")

	logger = logger.With().Str(log.KeyProcess, "submitting review").Logger()
	logger.Info().Msg("submitting review")
	err := s.client.Post(c, "/api/reviews", nil, param, nil)
	if err != nil {
		err = fmt.Errorf("failed submitting review with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("submitted review")

	return nil
}

// FindReviewedVariants fetches the reviews of every delivered order, one
// request per order, and collects the already-reviewed variant ids.
func (s ReviewService) FindReviewedVariants(
	c context.Context,
	orders []orderResponse.Order,
) (ReviewedVariants, error) {
	c, span := otel.Tracer.Start(c, "ReviewService FindReviewedVariants")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ReviewService FindReviewedVariants").
		Str(log.KeyProcess, "finding reviewed variants").
		Logger()

	reviewed := ReviewedVariants{}
	for _, order := range orders {
		if order.OrderStatus != orderResponse.StatusDelivered {
			continue
		}

		logger.Info().Str(log.KeyOrderID, order.ID).Msg("finding reviews for order")
		reviews := []response.Review{}
		err := s.client.Get(c, "/api/reviews/order/"+order.ID, nil, &reviews)
		if err != nil {
			err = fmt.Errorf("failed finding reviews for orderId=%s with error=%w", order.ID, err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}

		variants := map[string]struct{}{}
		for _, review := range reviews {
			if review.IsDeleted {
				continue
			}
			variants[review.ProductVariantID] = struct{}{}
		}
		reviewed[order.ID] = variants
	}
	logger.Info().Msgf("found reviewed variants for %d delivered orders", len(reviewed))

	return reviewed, nil
}
