package persistence

import (
	"context"

	apporder "github.com/campusmart/backend/internal/application/order"
	"github.com/campusmart/backend/internal/domain/cart"
	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormCheckoutScope implements CheckoutScope using GORM transactions.
// Stock decrements, order creation and cart cleanup commit or roll back
// as one unit.
type GormCheckoutScope struct {
	db *gorm.DB
}

// NewGormCheckoutScope creates a new GormCheckoutScope
func NewGormCheckoutScope(db *gorm.DB) *GormCheckoutScope {
	return &GormCheckoutScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormCheckoutScope) Execute(ctx context.Context, fn func(repos apporder.CheckoutRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCheckoutRepositories{tx: tx})
	})
}

// gormCheckoutRepositories provides the checkout repositories scoped to the
// current transaction.
type gormCheckoutRepositories struct {
	tx *gorm.DB
}

func (r *gormCheckoutRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormCheckoutRepositories) OrderRepo() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormCheckoutRepositories) CartRepo() cart.CartRepository {
	return NewGormCartRepository(r.tx)
}

var _ apporder.CheckoutScope = (*GormCheckoutScope)(nil)
var _ apporder.CheckoutRepositories = (*gormCheckoutRepositories)(nil)
