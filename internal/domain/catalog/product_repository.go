package catalog

import (
	"context"

	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindActive(ctx context.Context, filter shared.Filter) ([]*Product, int64, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]*Product, int64, error)
	// FindByIDsForUpdate loads products ordered by ID with row locks held.
	// Must run inside a transaction; the ordering keeps concurrent checkouts
	// from deadlocking each other.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*Product, error)
	CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
