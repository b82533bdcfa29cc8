package service

import (
	"context"

	"stockroom/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products, most recently created first.
	List(ctx context.Context) ([]model.ProductSummary, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create validates the request and persists a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update validates the request and replaces the product's mutable
	// fields. This is a full replacement, not a partial patch.
	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id int64) error
}
