package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines persistence operations for cart lines
type CartRepository interface {
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByUserAndProducts removes only the purchased lines, leaving the
	// rest of the cart untouched after a partial checkout
	DeleteByUserAndProducts(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*CartItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*CartItem, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
