package order

import (
	"context"
	"errors"

	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles everything after checkout: queries, the status
// machine, cancellation and admin payment review
type OrderService struct {
	orderRepo  order.OrderRepository
	sellerRepo seller.SellerRepository
	scope      CheckoutScope
	logger     *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo order.OrderRepository,
	sellerRepo seller.SellerRepository,
	scope CheckoutScope,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		scope:      scope,
		logger:     logger,
	}
}

// GetForBuyer returns an order if it belongs to the buyer
func (s *OrderService) GetForBuyer(ctx context.Context, userID, orderID uuid.UUID) (*OrderInfo, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !o.IsOwnedBy(userID) {
		return nil, shared.ErrForbidden
	}
	info := toOrderInfo(o)
	return &info, nil
}

// GetForSeller returns an order if it was sold by the acting user's store
func (s *OrderService) GetForSeller(ctx context.Context, userID, orderID uuid.UUID) (*OrderInfo, error) {
	record, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, shared.ErrForbidden
	}

	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !o.IsSoldBy(record.ID) {
		return nil, shared.ErrForbidden
	}
	info := toOrderInfo(o)
	return &info, nil
}

// ListForBuyer lists the buyer's orders, newest first
func (s *OrderService) ListForBuyer(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderInfo], error) {
	orders, total, err := s.orderRepo.FindByUserID(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list buyer orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}
	return paginate(orders, total, filter), nil
}

// ListForSeller lists orders placed against the acting user's store
func (s *OrderService) ListForSeller(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderInfo], error) {
	record, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, shared.ErrForbidden
	}

	orders, total, err := s.orderRepo.FindBySellerID(ctx, record.ID, filter)
	if err != nil {
		s.logger.Error("Failed to list seller orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}
	return paginate(orders, total, filter), nil
}

// UpdateStatus drives an order forward on behalf of the selling store.
// Legality of the move is decided entirely by the transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*OrderInfo, error) {
	record, err := s.sellerRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, shared.ErrForbidden
	}

	o, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !o.IsSoldBy(record.ID) {
		return nil, shared.ErrForbidden
	}

	if err := o.TransitionTo(input.Status, order.ActorSeller); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		s.logger.Error("Failed to persist status change", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
	}

	s.logger.Info("Order status updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", o.Status.String()))

	info := toOrderInfo(o)
	return &info, nil
}

// Cancel cancels the buyer's own order and returns the reserved stock,
// atomically
func (s *OrderService) Cancel(ctx context.Context, input CancelInput) (*OrderInfo, error) {
	var info OrderInfo

	err := s.scope.Execute(ctx, func(repos CheckoutRepositories) error {
		o, err := repos.OrderRepo().FindByID(ctx, input.OrderID)
		if err != nil {
			return shared.ErrNotFound
		}
		if !o.IsOwnedBy(input.UserID) {
			return shared.ErrForbidden
		}

		if err := o.Cancel(input.Reason); err != nil {
			return err
		}

		if err := s.releaseOrderStock(ctx, repos, o); err != nil {
			return err
		}

		if err := repos.OrderRepo().Update(ctx, o); err != nil {
			s.logger.Error("Failed to persist cancellation", zap.Error(err))
			if errors.Is(err, shared.ErrConcurrencyConflict) {
				return err
			}
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel order")
		}

		info = toOrderInfo(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order cancelled",
		zap.String("order_number", info.OrderNumber),
		zap.String("user_id", input.UserID.String()))

	return &info, nil
}

// ConfirmReceipt records the buyer's acknowledgement after pickup
func (s *OrderService) ConfirmReceipt(ctx context.Context, userID, orderID uuid.UUID) (*OrderInfo, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !o.IsOwnedBy(userID) {
		return nil, shared.ErrForbidden
	}

	if err := o.ConfirmReceipt(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		s.logger.Error("Failed to persist receipt confirmation", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to confirm receipt")
	}

	info := toOrderInfo(o)
	return &info, nil
}

// AttachReceipt stores an uploaded payment receipt URL on the buyer's order
func (s *OrderService) AttachReceipt(ctx context.Context, userID, orderID uuid.UUID, url string) (*OrderInfo, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !o.IsOwnedBy(userID) {
		return nil, shared.ErrForbidden
	}

	if err := o.AttachReceipt(url); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		s.logger.Error("Failed to persist receipt", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to attach receipt")
	}

	info := toOrderInfo(o)
	return &info, nil
}

// ListPendingPayments lists orders whose receipts await admin review
func (s *OrderService) ListPendingPayments(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderInfo], error) {
	orders, total, err := s.orderRepo.FindPendingPaymentVerification(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list pending payments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pending payments")
	}
	return paginate(orders, total, filter), nil
}

// VerifyPayment approves an uploaded receipt
func (s *OrderService) VerifyPayment(ctx context.Context, input ReviewPaymentInput) (*OrderInfo, error) {
	o, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := o.VerifyPayment(input.Notes); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		s.logger.Error("Failed to persist payment verification", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify payment")
	}

	s.logger.Info("Payment verified", zap.String("order_number", o.OrderNumber))

	info := toOrderInfo(o)
	return &info, nil
}

// RejectPayment declines a receipt and returns the reserved stock.
// A rejected order is closed; the buyer must order again after fixing the
// payment.
func (s *OrderService) RejectPayment(ctx context.Context, input ReviewPaymentInput) (*OrderInfo, error) {
	var info OrderInfo

	err := s.scope.Execute(ctx, func(repos CheckoutRepositories) error {
		o, err := repos.OrderRepo().FindByID(ctx, input.OrderID)
		if err != nil {
			return shared.ErrNotFound
		}

		if err := o.RejectPayment(input.Notes); err != nil {
			return err
		}

		if err := s.releaseOrderStock(ctx, repos, o); err != nil {
			return err
		}

		if err := repos.OrderRepo().Update(ctx, o); err != nil {
			s.logger.Error("Failed to persist payment rejection", zap.Error(err))
			if errors.Is(err, shared.ErrConcurrencyConflict) {
				return err
			}
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to reject payment")
		}

		info = toOrderInfo(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment rejected", zap.String("order_number", info.OrderNumber))

	return &info, nil
}

// releaseOrderStock reverses the checkout's stock reservation for every
// item on the order, under row locks
func (s *OrderService) releaseOrderStock(ctx context.Context, repos CheckoutRepositories, o *order.Order) error {
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := repos.ProductRepo().FindByIDsForUpdate(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to lock products for stock release", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to release stock")
	}

	byID := make(map[uuid.UUID]int, len(products))
	for i, product := range products {
		byID[product.ID] = i
	}

	for _, item := range o.Items {
		idx, ok := byID[item.ProductID]
		if !ok {
			// The product was deleted after purchase; nothing to restore
			continue
		}
		product := products[idx]
		if err := product.ReleaseStock(item.Quantity); err != nil {
			return err
		}
		if err := repos.ProductRepo().Update(ctx, product); err != nil {
			s.logger.Error("Failed to persist stock release", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to release stock")
		}
	}

	return nil
}

func paginate(orders []*order.Order, total int64, filter shared.Filter) *shared.Paginated[OrderInfo] {
	items := make([]OrderInfo, len(orders))
	for i, o := range orders {
		items[i] = toOrderInfo(o)
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result
}
