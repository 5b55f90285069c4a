package persistence

import (
	"context"

	appseller "github.com/campusmart/backend/internal/application/seller"
	"github.com/campusmart/backend/internal/domain/identity"
	"github.com/campusmart/backend/internal/domain/seller"
	"gorm.io/gorm"
)

// GormSellerReviewScope implements ReviewScope using GORM transactions.
// The seller status change and the applicant's role promotion commit or
// roll back as one unit.
type GormSellerReviewScope struct {
	db *gorm.DB
}

// NewGormSellerReviewScope creates a new GormSellerReviewScope
func NewGormSellerReviewScope(db *gorm.DB) *GormSellerReviewScope {
	return &GormSellerReviewScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSellerReviewScope) Execute(ctx context.Context, fn func(repos appseller.ReviewRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormReviewRepositories{tx: tx})
	})
}

// gormReviewRepositories provides the review repositories scoped to the
// current transaction.
type gormReviewRepositories struct {
	tx *gorm.DB
}

func (r *gormReviewRepositories) SellerRepo() seller.SellerRepository {
	return NewGormSellerRepository(r.tx)
}

func (r *gormReviewRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

var _ appseller.ReviewScope = (*GormSellerReviewScope)(nil)
var _ appseller.ReviewRepositories = (*gormReviewRepositories)(nil)
