package order

import (
	"context"

	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders.
// Implementations load and save Items together with the order.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*Order, int64, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]*Order, int64, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]*Order, int64, error)
	// FindPendingPaymentVerification lists orders awaiting an admin receipt
	// check, oldest first
	FindPendingPaymentVerification(ctx context.Context, filter shared.Filter) ([]*Order, int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error)
}
