package order

import (
	"context"

	"github.com/campusmart/backend/internal/domain/cart"
	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/order"
)

// CheckoutScope provides transactional access to the repositories a checkout
// touches. Everything done inside Execute commits or rolls back atomically;
// checkout correctness under concurrent buyers depends on it.
type CheckoutScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos CheckoutRepositories) error) error
}

// CheckoutRepositories provides access to the checkout repositories within
// a transaction. ProductRepo must support FindByIDsForUpdate so stock rows
// stay locked until commit.
type CheckoutRepositories interface {
	ProductRepo() catalog.ProductRepository
	OrderRepo() order.OrderRepository
	CartRepo() cart.CartRepository
}

// NoOpCheckoutScope runs the function without a real transaction.
// Used in tests.
type NoOpCheckoutScope struct {
	productRepo catalog.ProductRepository
	orderRepo   order.OrderRepository
	cartRepo    cart.CartRepository
}

// NewNoOpCheckoutScope creates a NoOpCheckoutScope over the given repositories
func NewNoOpCheckoutScope(
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
	cartRepo cart.CartRepository,
) *NoOpCheckoutScope {
	return &NoOpCheckoutScope{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
	}
}

func (s *NoOpCheckoutScope) Execute(_ context.Context, fn func(repos CheckoutRepositories) error) error {
	return fn(s)
}

func (s *NoOpCheckoutScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

func (s *NoOpCheckoutScope) OrderRepo() order.OrderRepository {
	return s.orderRepo
}

func (s *NoOpCheckoutScope) CartRepo() cart.CartRepository {
	return s.cartRepo
}

var _ CheckoutScope = (*NoOpCheckoutScope)(nil)
var _ CheckoutRepositories = (*NoOpCheckoutScope)(nil)
