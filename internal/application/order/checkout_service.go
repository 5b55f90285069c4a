package order

import (
	"context"
	"fmt"
	"sort"

	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService turns a validated selection of products into orders,
// one per seller, inside a single transaction
type CheckoutService struct {
	scope  CheckoutScope
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(scope CheckoutScope, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{scope: scope, logger: logger}
}

// sellerGroup collects one seller's share of a checkout
type sellerGroup struct {
	sellerID uuid.UUID
	items    []order.OrderItem
	products map[uuid.UUID]int64 // product -> quantity, for stock reservation
}

// Checkout validates every line, reserves stock and creates one order per
// distinct seller. Either every order is created and every stock decrement
// committed, or nothing is.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CHECKOUT", "Checkout requires at least one item")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD",
			fmt.Sprintf("Unknown payment method: %s", input.PaymentMethod))
	}

	quantities := make(map[uuid.UUID]int64, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		// Duplicate product lines collapse into one
		quantities[line.ProductID] += line.Quantity
	}

	// Deterministic lock order prevents deadlocks between concurrent checkouts
	ids := make([]uuid.UUID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var result *CheckoutResult

	err := s.scope.Execute(ctx, func(repos CheckoutRepositories) error {
		products, err := repos.ProductRepo().FindByIDsForUpdate(ctx, ids)
		if err != nil {
			s.logger.Error("Failed to lock products for checkout", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to process checkout")
		}

		byID := make(map[uuid.UUID]*catalog.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		// Validate every line before any write
		for _, id := range ids {
			product, ok := byID[id]
			if !ok {
				return shared.NewDomainError("PRODUCT_NOT_FOUND",
					fmt.Sprintf("Product %s does not exist", id))
			}
			if err := product.AvailableFor(quantities[id]); err != nil {
				return err
			}
		}

		// Group lines by seller, preserving the order of the request
		groups := make([]*sellerGroup, 0)
		groupBySeller := make(map[uuid.UUID]*sellerGroup)
		for _, line := range input.Lines {
			product := byID[line.ProductID]
			group, ok := groupBySeller[product.SellerID]
			if !ok {
				group = &sellerGroup{
					sellerID: product.SellerID,
					products: make(map[uuid.UUID]int64),
				}
				groupBySeller[product.SellerID] = group
				groups = append(groups, group)
			}
			if _, seen := group.products[product.ID]; seen {
				continue // duplicate lines were already merged into quantities
			}

			item, err := order.NewOrderItem(product.ID, product.Name, product.ImageURL, product.PriceMoney(), quantities[product.ID])
			if err != nil {
				return err
			}
			group.items = append(group.items, item)
			group.products[product.ID] = quantities[product.ID]
		}

		orders := make([]OrderInfo, 0, len(groups))
		for _, group := range groups {
			o, err := order.NewOrder(input.UserID, group.sellerID, group.items, input.PaymentMethod, input.Notes, input.ReceiptURL)
			if err != nil {
				return err
			}
			if err := repos.OrderRepo().Create(ctx, o); err != nil {
				s.logger.Error("Failed to persist order", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to process checkout")
			}

			for productID, quantity := range group.products {
				product := byID[productID]
				if err := product.ReserveStock(quantity); err != nil {
					return err
				}
				if err := repos.ProductRepo().Update(ctx, product); err != nil {
					s.logger.Error("Failed to persist stock reservation", zap.Error(err))
					return shared.NewDomainError("INTERNAL_ERROR", "Failed to process checkout")
				}
			}

			orders = append(orders, toOrderInfo(o))
		}

		// Remove only the purchased lines from the cart
		if err := repos.CartRepo().DeleteByUserAndProducts(ctx, input.UserID, ids); err != nil {
			s.logger.Error("Failed to clear purchased cart lines", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to process checkout")
		}

		message := "Order placed successfully"
		if len(orders) > 1 {
			message = fmt.Sprintf("Your items span %d sellers, so %d separate orders were created", len(orders), len(orders))
		}

		result = &CheckoutResult{
			Orders:      orders,
			TotalOrders: len(orders),
			Message:     message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Checkout completed",
		zap.String("user_id", input.UserID.String()),
		zap.Int("orders", result.TotalOrders),
		zap.String("payment_method", input.PaymentMethod.String()))

	return result, nil
}
