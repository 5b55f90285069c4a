package seller

import (
	"context"

	"github.com/campusmart/backend/internal/domain/identity"
	"github.com/campusmart/backend/internal/domain/seller"
)

// ReviewScope provides transactional access to the repositories an approval
// decision touches. Marking the application approved and promoting the
// applicant's account commit or roll back as one unit.
type ReviewScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos ReviewRepositories) error) error
}

// ReviewRepositories provides access to the review repositories within
// a transaction.
type ReviewRepositories interface {
	SellerRepo() seller.SellerRepository
	UserRepo() identity.UserRepository
}

// NoOpReviewScope runs the function without a real transaction.
// Used in tests.
type NoOpReviewScope struct {
	sellerRepo seller.SellerRepository
	userRepo   identity.UserRepository
}

// NewNoOpReviewScope creates a NoOpReviewScope over the given repositories
func NewNoOpReviewScope(
	sellerRepo seller.SellerRepository,
	userRepo identity.UserRepository,
) *NoOpReviewScope {
	return &NoOpReviewScope{
		sellerRepo: sellerRepo,
		userRepo:   userRepo,
	}
}

func (s *NoOpReviewScope) Execute(_ context.Context, fn func(repos ReviewRepositories) error) error {
	return fn(s)
}

func (s *NoOpReviewScope) SellerRepo() seller.SellerRepository {
	return s.sellerRepo
}

func (s *NoOpReviewScope) UserRepo() identity.UserRepository {
	return s.userRepo
}

var _ ReviewScope = (*NoOpReviewScope)(nil)
var _ ReviewRepositories = (*NoOpReviewScope)(nil)
