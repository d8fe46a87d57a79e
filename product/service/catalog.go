package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/product/pkg/response"
)

// CatalogService wraps the public browsing endpoints. None of them need
// a session.
type CatalogService struct {
	client *rest.Client
}

func NewCatalogService(client *rest.Client) CatalogService {
	return CatalogService{client: client}
}

func (s CatalogService) FindProducts(c context.Context) ([]response.Product, error) {
	products := []response.Product{}
	err := s.get(c, "/api/products", nil, &products, "finding products")
	return products, err
}

func (s CatalogService) SearchProducts(
	c context.Context,
	keyword string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService SearchProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService SearchProducts").
		Str(log.KeyKeyword, keyword).
		Logger()
	c = logger.WithContext(c)

	query := url.Values{}
	query.Set("keyword", keyword)
	products := []response.Product{}
	err := s.get(c, "/api/products/search", query, &products, "searching products")
	return products, err
}

func (s CatalogService) FindProductById(
	c context.Context,
	productID string,
) (response.Product, error) {
	product := response.Product{}
	err := s.get(c, "/api/products/"+productID, nil, &product, "finding product by id")
	return product, err
}

func (s CatalogService) FindBrands(c context.Context) ([]response.Brand, error) {
	brands := []response.Brand{}
	err := s.get(c, "/api/brands", nil, &brands, "finding brands")
	return brands, err
}

func (s CatalogService) FindBrandById(c context.Context, brandID string) (response.Brand, error) {
	brand := response.Brand{}
	err := s.get(c, "/api/brands/"+brandID, nil, &brand, "finding brand by id")
	return brand, err
}

func (s CatalogService) FindCategories(c context.Context) ([]response.Category, error) {
	categories := []response.Category{}
	err := s.get(c, "/api/categories", nil, &categories, "finding categories")
	return categories, err
}

func (s CatalogService) FindDiscountCodes(c context.Context) ([]response.DiscountCode, error) {
	codes := []response.DiscountCode{}
	err := s.get(c, "/api/discount-codes", nil, &codes, "finding discount codes")
	return codes, err
}

// FindDiscountCodesForProduct filters the full code list down to codes
// applicable to one product, the way the product detail flow does.
func (s CatalogService) FindDiscountCodesForProduct(
	c context.Context,
	productID string,
) ([]response.DiscountCode, error) {
	codes, err := s.FindDiscountCodes(c)
	if err != nil {
		return nil, err
	}
	applicable := []response.DiscountCode{}
	for _, code := range codes {
		if code.AppliesTo(productID) {
			applicable = append(applicable, code)
		}
	}
	return applicable, nil
}

func (s CatalogService) FindAdImages(c context.Context) ([]response.AdImage, error) {
	ads := []response.AdImage{}
	err := s.get(c, "/api/ad-images", nil, &ads, "finding ad images")
	return ads, err
}

func (s CatalogService) get(
	c context.Context,
	path string,
	query url.Values,
	out interface{},
	process string,
) error {
	c, span := otel.Tracer.Start(c, "CatalogService "+process)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService").
		Str(log.KeyProcess, process).
		Logger()

	logger.Info().Msg(process)
	err := s.client.Get(c, path, query, out)
	if err != nil {
		err = fmt.Errorf("failed %s with error=%w", process, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msgf("finished %s", process)

	return nil
}
