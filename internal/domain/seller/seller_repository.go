package seller

import (
	"context"

	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SellerRepository defines the interface for seller persistence
type SellerRepository interface {
	// Create persists a new seller profile
	Create(ctx context.Context, seller *Seller) error

	// Update updates an existing seller profile. Implementations guard the
	// write with the aggregate version and report a concurrency conflict
	// when the stored row has moved on.
	Update(ctx context.Context, seller *Seller) error

	// FindByID finds a seller by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Seller, error)

	// FindByUserID finds the seller profile owned by a user
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Seller, error)

	// FindByStatus returns sellers in a verification status with pagination
	FindByStatus(ctx context.Context, status VerificationStatus, filter shared.Filter) ([]*Seller, int64, error)

	// CountByStatus returns the number of sellers in a verification status
	CountByStatus(ctx context.Context, status VerificationStatus) (int64, error)
}
