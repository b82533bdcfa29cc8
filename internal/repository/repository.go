package repository

import (
	"context"

	"stockroom/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves all products ordered by creation time, most recent
	// first. An empty store yields an empty slice, never an error.
	List(ctx context.Context) ([]model.ProductSummary, error)

	// GetByID retrieves a single product by its ID. Returns
	// model.ErrProductNotFound when no record exists.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create persists a new product and returns the stored record
	// including the server-assigned ID and timestamps.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update replaces the mutable fields of the product with the given
	// ID. Returns model.ErrProductNotFound when no record exists.
	Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)

	// Delete removes the product with the given ID. Returns
	// model.ErrProductNotFound when no record exists.
	Delete(ctx context.Context, id int64) error
}
