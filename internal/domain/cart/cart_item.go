package cart

import (
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartItem is one line in a buyer's cart.
// A buyer holds at most one row per product; adding the same product again
// increases the quantity instead of creating a second row.
type CartItem struct {
	shared.BaseEntity
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
}

// NewCartItem creates a cart line for the given buyer and product
func NewCartItem(userID, productID uuid.UUID, quantity int64) (*CartItem, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// ChangeQuantity replaces the quantity on the line
func (c *CartItem) ChangeQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	c.Quantity = quantity
	c.Touch()
	return nil
}

// IncreaseQuantity adds to the existing quantity
func (c *CartItem) IncreaseQuantity(delta int64) error {
	if delta <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	c.Quantity += delta
	c.Touch()
	return nil
}
