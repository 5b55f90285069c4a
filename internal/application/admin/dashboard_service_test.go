package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/identity"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role identity.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) Create(ctx context.Context, record *seller.Seller) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, record *seller.Seller) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByStatus(ctx context.Context, status seller.VerificationStatus, filter shared.Filter) ([]*seller.Seller, int64, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*seller.Seller), args.Get(1).(int64), args.Error(2)
}

func (m *MockSellerRepository) CountByStatus(ctx context.Context, status seller.VerificationStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]*catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]*catalog.Product, int64, error) {
	args := m.Called(ctx, sellerID, filter)
	return args.Get(0).([]*catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*order.Order, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]*order.Order, int64, error) {
	args := m.Called(ctx, sellerID, filter)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status order.Status, filter shared.Filter) ([]*order.Order, int64, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindPendingPaymentVerification(ctx context.Context, filter shared.Filter) ([]*order.Order, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("collects all counters", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sellerRepo := new(MockSellerRepository)
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)

		userRepo.On("CountByRole", ctx, identity.RoleBuyer).Return(int64(120), nil)
		sellerRepo.On("CountByStatus", ctx, seller.VerificationApproved).Return(int64(14), nil)
		sellerRepo.On("CountByStatus", ctx, seller.VerificationPending).Return(int64(3), nil)
		productRepo.On("CountActive", ctx).Return(int64(87), nil)
		orderRepo.On("CountByStatus", ctx, order.StatusPending).Return(int64(5), nil)
		orderRepo.On("CountByStatus", ctx, order.StatusReadyForPickup).Return(int64(2), nil)
		orderRepo.On("CountByStatus", ctx, order.StatusPickedUp).Return(int64(240), nil)

		svc := NewDashboardService(userRepo, sellerRepo, productRepo, orderRepo, zap.NewNop())

		stats, err := svc.GetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(120), stats.TotalBuyers)
		assert.Equal(t, int64(14), stats.TotalSellers)
		assert.Equal(t, int64(3), stats.PendingApplications)
		assert.Equal(t, int64(87), stats.ActiveProducts)
		assert.Equal(t, int64(5), stats.PendingPayments)
		assert.Equal(t, int64(2), stats.OrdersReadyForPickup)
		assert.Equal(t, int64(240), stats.CompletedOrders)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sellerRepo := new(MockSellerRepository)
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)

		userRepo.On("CountByRole", ctx, identity.RoleBuyer).Return(int64(0), errors.New("connection refused"))

		svc := NewDashboardService(userRepo, sellerRepo, productRepo, orderRepo, zap.NewNop())

		_, err := svc.GetStats(ctx)
		assert.Error(t, err)
	})
}
