package cart

import (
	"github.com/campusmart/backend/internal/domain/cart"
	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput contains the input for adding a product to the cart
type AddItemInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
}

// UpdateItemInput contains the input for changing a cart line's quantity.
// Lines are addressed by product, matching the public API.
type UpdateItemInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
}

// CartItemInfo is one cart line with product details joined in
type CartItemInfo struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	ProductImage string
	SellerID     uuid.UUID
	UnitPrice    string
	Quantity     int64
	LineTotal    string
	Stock        int64
	Unavailable  bool // product deleted or deactivated since it was added
}

// CartView is the full cart with totals and the seller split preview
type CartView struct {
	Items       []CartItemInfo
	Subtotal    decimal.Decimal
	SellerCount int
}

func toCartItemInfo(item *cart.CartItem, product *catalog.Product) CartItemInfo {
	lineTotal := product.PriceMoney().MultiplyByInt(item.Quantity)
	return CartItemInfo{
		ID:           item.ID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.ImageURL,
		SellerID:     product.SellerID,
		UnitPrice:    product.Price.String(),
		Quantity:     item.Quantity,
		LineTotal:    lineTotal.Amount().String(),
		Stock:        product.Stock,
		Unavailable:  !product.IsActive,
	}
}
