package repository

import (
	"context"
	"errors"

	"stockroom/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products ordered by creation time, most recent first.
func (r *productRepository) List(ctx context.Context) ([]model.ProductSummary, error) {
	query := `
		SELECT id, name, description, quantity, image_url
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, model.NewDatabaseError("failed to query products", err)
	}
	defer rows.Close()

	// Initialised so an empty store serialises as [] rather than null.
	products := []model.ProductSummary{}
	for rows.Next() {
		var p model.ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.ImageURL); err != nil {
			return nil, model.NewDatabaseError("failed to scan product row", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, model.NewDatabaseError("error iterating product rows", err)
	}

	r.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, description, quantity, image_url, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Quantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		return nil, model.NewDatabaseError("failed to query product", err)
	}

	return &p, nil
}

// Create persists a new product and returns the stored record.
func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	query := `
		INSERT INTO products (name, description, quantity, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, quantity, image_url, created_at, updated_at
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, input.Name, input.Description, input.Quantity, input.ImageURL).Scan(
		&p.ID, &p.Name, &p.Description, &p.Quantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, model.NewDatabaseError("failed to insert product", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("created product")

	return &p, nil
}

// Update replaces the mutable fields of the product with the given ID.
func (r *productRepository) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, quantity = $3, image_url = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, name, description, quantity, image_url, created_at, updated_at
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, input.Name, input.Description, input.Quantity, input.ImageURL, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Quantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for update")
			return nil, model.ErrProductNotFound
		}
		return nil, model.NewDatabaseError("failed to update product", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("updated product")

	return &p, nil
}

// Delete removes the product with the given ID.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return model.NewDatabaseError("failed to delete product", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	r.logger.Debug().Int64("product_id", id).Msg("deleted product")

	return nil
}
