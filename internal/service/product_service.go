package service

import (
	"context"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products, most recently created first.
func (s *productService) List(ctx context.Context) ([]model.ProductSummary, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// Create validates the request and persists a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	input, err := validate(req)
	if err != nil {
		s.logger.Warn().Str("name", req.Name).Msg("rejected invalid create request")
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, *input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")

	return product, nil
}

// Update validates the request and replaces the product's mutable fields.
func (s *productService) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	input, err := validate(req)
	if err != nil {
		s.logger.Warn().Int64("product_id", id).Msg("rejected invalid update request")
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, *input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product updated")

	return product, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// validate checks required fields and normalises the request into a
// persistence input. Name must be non-empty and quantity present; a
// quantity of 0 is legal. Quantity bounds are not checked, matching the
// permissive contract of the dashboard API.
func validate(req *model.ProductRequest) (*model.ProductInput, error) {
	if req.Name == "" || req.Quantity == nil {
		return nil, model.ErrNameQuantity
	}

	return &model.ProductInput{
		Name:        req.Name,
		Description: nullable(req.Description),
		Quantity:    int(*req.Quantity),
		ImageURL:    nullable(req.ImageURL),
	}, nil
}

// nullable normalises an empty string to an absent value. Empty and
// missing are intentionally conflated, matching the dashboard contract.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
