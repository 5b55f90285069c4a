package order

import (
	"context"
	"testing"

	"github.com/campusmart/backend/internal/domain/cart"
	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory repositories. Checkout touches its repositories several times per
// call, so these fakes are easier to reason about than call-by-call mocks.

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindActive(_ context.Context, _ shared.Filter) ([]*catalog.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) FindBySellerID(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]*catalog.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) FindByIDsForUpdate(_ context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	found := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *fakeProductRepo) CountBySellerID(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeProductRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*order.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) FindByOrderNumber(_ context.Context, number string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]*order.Order, int64, error) {
	matched := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeOrderRepo) FindBySellerID(_ context.Context, sellerID uuid.UUID, _ shared.Filter) ([]*order.Order, int64, error) {
	matched := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			matched = append(matched, o)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeOrderRepo) FindByStatus(_ context.Context, status order.Status, _ shared.Filter) ([]*order.Order, int64, error) {
	matched := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeOrderRepo) FindPendingPaymentVerification(_ context.Context, filter shared.Filter) ([]*order.Order, int64, error) {
	return r.FindByStatus(context.Background(), order.StatusPending, filter)
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context, status order.Status) (int64, error) {
	_, n, _ := r.FindByStatus(context.Background(), status, shared.DefaultFilter())
	return n, nil
}

func (r *fakeOrderRepo) CountBySellerID(_ context.Context, sellerID uuid.UUID) (int64, error) {
	_, n, _ := r.FindBySellerID(context.Background(), sellerID, shared.DefaultFilter())
	return n, nil
}

type fakeCartRepo struct {
	items   map[uuid.UUID]*cart.CartItem
	deleted []uuid.UUID // product ids removed by DeleteByUserAndProducts
}

func newFakeCartRepo(items ...*cart.CartItem) *fakeCartRepo {
	repo := &fakeCartRepo{items: make(map[uuid.UUID]*cart.CartItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeCartRepo) Save(_ context.Context, item *cart.CartItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) DeleteByUserAndProducts(_ context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	for _, productID := range productIDs {
		for id, item := range r.items {
			if item.UserID == userID && item.ProductID == productID {
				delete(r.items, id)
				r.deleted = append(r.deleted, productID)
			}
		}
	}
	return nil
}

func (r *fakeCartRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeCartRepo) FindByID(_ context.Context, id uuid.UUID) (*cart.CartItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (r *fakeCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*cart.CartItem, error) {
	matched := make([]*cart.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *fakeCartRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*cart.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCartRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	items, _ := r.FindByUserID(context.Background(), userID)
	return int64(len(items)), nil
}

func newProduct(t *testing.T, sellerID uuid.UUID, name string, price float64, stock int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(sellerID, name, "", "food", valueobject.NewMoneyPHPFromFloat(price), stock, "")
	require.NoError(t, err)
	return product
}

func TestCheckoutService_SingleSeller(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()

	bananaCue := newProduct(t, sellerID, "Banana Cue", 25, 10)
	turon := newProduct(t, sellerID, "Turon", 20, 5)

	productRepo := newFakeProductRepo(bananaCue, turon)
	orderRepo := newFakeOrderRepo()

	lineA, err := cart.NewCartItem(buyerID, bananaCue.ID, 2)
	require.NoError(t, err)
	lineB, err := cart.NewCartItem(buyerID, turon.ID, 1)
	require.NoError(t, err)
	keeper, err := cart.NewCartItem(buyerID, uuid.New(), 3) // not part of this checkout
	require.NoError(t, err)
	cartRepo := newFakeCartRepo(lineA, lineB, keeper)

	svc := NewCheckoutService(NewNoOpCheckoutScope(productRepo, orderRepo, cartRepo), zap.NewNop())

	result, err := svc.Checkout(ctx, CheckoutInput{
		UserID: buyerID,
		Lines: []CheckoutLine{
			{ProductID: bananaCue.ID, Quantity: 2},
			{ProductID: turon.ID, Quantity: 1},
		},
		PaymentMethod: order.PaymentMethodPickupCash,
	})

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalOrders)

	created := result.Orders[0]
	assert.Equal(t, sellerID, created.SellerID)
	assert.Equal(t, "70", created.TotalAmount)
	assert.Equal(t, created.Subtotal, created.TotalAmount)
	assert.Equal(t, "confirmed", created.Status)
	assert.Len(t, created.Items, 2)

	// Stock moved into sold count
	assert.Equal(t, int64(8), bananaCue.Stock)
	assert.Equal(t, int64(2), bananaCue.SoldCount)
	assert.Equal(t, int64(4), turon.Stock)

	// Only the purchased cart lines were removed
	remaining, err := cartRepo.FindByUserID(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keeper.ProductID, remaining[0].ProductID)
}

func TestCheckoutService_FanOutAcrossSellers(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerA := uuid.New()
	sellerB := uuid.New()

	isaw := newProduct(t, sellerA, "Isaw", 15, 20)
	kape := newProduct(t, sellerB, "Kapeng Barako", 50, 20)
	ensaymada := newProduct(t, sellerA, "Ensaymada", 35, 20)

	productRepo := newFakeProductRepo(isaw, kape, ensaymada)
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()

	svc := NewCheckoutService(NewNoOpCheckoutScope(productRepo, orderRepo, cartRepo), zap.NewNop())

	result, err := svc.Checkout(ctx, CheckoutInput{
		UserID: buyerID,
		Lines: []CheckoutLine{
			{ProductID: isaw.ID, Quantity: 4},
			{ProductID: kape.ID, Quantity: 1},
			{ProductID: ensaymada.ID, Quantity: 2},
		},
		PaymentMethod: order.PaymentMethodGCash,
		ReceiptURL:    "https://cdn.example.com/receipts/gcash-1.jpg",
	})

	require.NoError(t, err)
	require.Equal(t, 2, result.TotalOrders)
	assert.Contains(t, result.Message, "2")

	// First-seen seller order is preserved
	first, second := result.Orders[0], result.Orders[1]
	assert.Equal(t, sellerA, first.SellerID)
	assert.Equal(t, sellerB, second.SellerID)

	// Seller A gets isaw + ensaymada, seller B the coffee
	assert.Len(t, first.Items, 2)
	assert.Equal(t, "130", first.TotalAmount) // 4*15 + 2*35
	assert.Len(t, second.Items, 1)
	assert.Equal(t, "50", second.TotalAmount)

	// Non-cash methods await admin verification
	assert.Equal(t, "pending", first.Status)
	assert.Equal(t, "pending", second.Status)
	assert.Equal(t, "https://cdn.example.com/receipts/gcash-1.jpg", first.PaymentReceiptURL)

	// Each order has a distinct number
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}

func TestCheckoutService_FailsWholeBatch(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()

	plenty := newProduct(t, sellerID, "Banana Cue", 25, 100)
	scarce := newProduct(t, sellerID, "Leche Flan", 60, 1)

	t.Run("insufficient stock on any line fails everything", func(t *testing.T) {
		productRepo := newFakeProductRepo(plenty, scarce)
		orderRepo := newFakeOrderRepo()
		svc := NewCheckoutService(NewNoOpCheckoutScope(productRepo, orderRepo, newFakeCartRepo()), zap.NewNop())

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID: buyerID,
			Lines: []CheckoutLine{
				{ProductID: plenty.ID, Quantity: 2},
				{ProductID: scarce.ID, Quantity: 5},
			},
			PaymentMethod: order.PaymentMethodPickupCash,
		})

		require.Error(t, err)
		assert.Empty(t, orderRepo.orders)
		assert.Equal(t, int64(100), plenty.Stock)
		assert.Equal(t, int64(0), plenty.SoldCount)
	})

	t.Run("unknown product fails everything", func(t *testing.T) {
		productRepo := newFakeProductRepo(plenty)
		orderRepo := newFakeOrderRepo()
		svc := NewCheckoutService(NewNoOpCheckoutScope(productRepo, orderRepo, newFakeCartRepo()), zap.NewNop())

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID: buyerID,
			Lines: []CheckoutLine{
				{ProductID: plenty.ID, Quantity: 1},
				{ProductID: uuid.New(), Quantity: 1},
			},
			PaymentMethod: order.PaymentMethodPickupCash,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("inactive product fails everything", func(t *testing.T) {
		hidden := newProduct(t, sellerID, "Secret Menu", 99, 10)
		hidden.Deactivate()
		productRepo := newFakeProductRepo(plenty, hidden)
		orderRepo := newFakeOrderRepo()
		svc := NewCheckoutService(NewNoOpCheckoutScope(productRepo, orderRepo, newFakeCartRepo()), zap.NewNop())

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID: buyerID,
			Lines: []CheckoutLine{
				{ProductID: plenty.ID, Quantity: 1},
				{ProductID: hidden.ID, Quantity: 1},
			},
			PaymentMethod: order.PaymentMethodPickupCash,
		})

		require.Error(t, err)
		assert.Empty(t, orderRepo.orders)
	})
}

func TestCheckoutService_InputValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCheckoutService(NewNoOpCheckoutScope(newFakeProductRepo(), newFakeOrderRepo(), newFakeCartRepo()), zap.NewNop())

	t.Run("empty selection", func(t *testing.T) {
		_, err := svc.Checkout(ctx, CheckoutInput{UserID: uuid.New(), PaymentMethod: order.PaymentMethodPickupCash})
		assert.Error(t, err)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID:        uuid.New(),
			Lines:         []CheckoutLine{{ProductID: uuid.New(), Quantity: 1}},
			PaymentMethod: order.PaymentMethod("barter"),
		})
		assert.Error(t, err)
	})

	t.Run("non positive quantity", func(t *testing.T) {
		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID:        uuid.New(),
			Lines:         []CheckoutLine{{ProductID: uuid.New(), Quantity: 0}},
			PaymentMethod: order.PaymentMethodPickupCash,
		})
		assert.Error(t, err)
	})
}

func TestCheckoutService_MergesDuplicateLines(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	product := newProduct(t, sellerID, "Taho", 15, 10)

	productRepo := newFakeProductRepo(product)
	orderRepo := newFakeOrderRepo()
	svc := NewCheckoutService(NewNoOpCheckoutScope(productRepo, orderRepo, newFakeCartRepo()), zap.NewNop())

	result, err := svc.Checkout(ctx, CheckoutInput{
		UserID: buyerID,
		Lines: []CheckoutLine{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 3},
		},
		PaymentMethod: order.PaymentMethodPickupCash,
	})

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalOrders)
	require.Len(t, result.Orders[0].Items, 1)
	assert.Equal(t, int64(5), result.Orders[0].Items[0].Quantity)
	assert.Equal(t, int64(5), product.Stock)
}
