package cart

import (
	"context"

	"github.com/campusmart/backend/internal/domain/cart"
	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService handles the buyer's cart
type CartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo cart.CartRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddItem puts a product in the cart. Adding a product already present
// increases its quantity instead of creating a second line.
// Stock is checked for early feedback only; the authoritative check happens
// at checkout under a row lock.
func (s *CartService) AddItem(ctx context.Context, input AddItemInput) (*CartItemInfo, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !product.IsActive {
		return nil, shared.ErrProductInactive
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, input.UserID, input.ProductID)
	if err == nil && existing != nil {
		if err := existing.IncreaseQuantity(input.Quantity); err != nil {
			return nil, err
		}
		if err := product.AvailableFor(existing.Quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			s.logger.Error("Failed to persist cart line", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
		}
		info := toCartItemInfo(existing, product)
		return &info, nil
	}

	if err := product.AvailableFor(input.Quantity); err != nil {
		return nil, err
	}

	item, err := cart.NewCartItem(input.UserID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to persist cart line", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}

	info := toCartItemInfo(item, product)
	return &info, nil
}

// UpdateItem replaces the quantity on a cart line, addressed by product
func (s *CartService) UpdateItem(ctx context.Context, input UpdateItemInput) (*CartItemInfo, error) {
	item, err := s.cartRepo.FindByUserAndProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if err := product.AvailableFor(input.Quantity); err != nil {
		return nil, err
	}

	if err := item.ChangeQuantity(input.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to persist cart line", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}

	info := toCartItemInfo(item, product)
	return &info, nil
}

// RemoveItem deletes the cart line holding the given product
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	item, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return shared.ErrNotFound
	}

	if err := s.cartRepo.Delete(ctx, item.ID); err != nil {
		s.logger.Error("Failed to delete cart line", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}
	return nil
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to clear cart")
	}
	return nil
}

// Get returns the cart with product details, grouped by seller so the client
// can preview how a checkout would split into orders. Lines whose product has
// disappeared or been deactivated are flagged rather than hidden.
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	items, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	view := &CartView{Items: make([]CartItemInfo, 0, len(items))}
	sellerSeen := make(map[uuid.UUID]bool)

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			view.Items = append(view.Items, CartItemInfo{
				ID:          item.ID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				Unavailable: true,
			})
			continue
		}

		info := toCartItemInfo(item, product)
		view.Items = append(view.Items, info)

		if !info.Unavailable {
			view.Subtotal = view.Subtotal.Add(product.PriceMoney().MultiplyByInt(item.Quantity).Amount())
			if !sellerSeen[product.SellerID] {
				sellerSeen[product.SellerID] = true
				view.SellerCount++
			}
		}
	}

	return view, nil
}
