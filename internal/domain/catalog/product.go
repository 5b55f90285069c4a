package catalog

import (
	"fmt"
	"strings"

	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a listing owned by exactly one seller
// It is the aggregate root for catalog operations; Stock and SoldCount are
// mutated only through ReserveStock and ReleaseStock
type Product struct {
	shared.BaseAggregateRoot
	SellerID    uuid.UUID
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int64
	SoldCount   int64
	ImageURL    string
	IsActive    bool
}

// NewProduct creates a new active product listing
func NewProduct(sellerID uuid.UUID, name, description, category string, price valueobject.Money, stock int64, imageURL string) (*Product, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	if price.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SellerID:          sellerID,
		Name:              name,
		Description:       strings.TrimSpace(description),
		Category:          strings.TrimSpace(category),
		Price:             price.Amount(),
		Stock:             stock,
		ImageURL:          strings.TrimSpace(imageURL),
		IsActive:          true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the listing details
func (p *Product) Update(name, description, category string, price valueobject.Money, imageURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if price.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.Category = strings.TrimSpace(category)
	p.Price = price.Amount()
	p.ImageURL = strings.TrimSpace(imageURL)
	p.Touch()

	return nil
}

// Restock adds quantity to the available stock
func (p *Product) Restock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Restock quantity must be positive")
	}
	p.Stock += quantity
	p.Touch()
	return nil
}

// AvailableFor reports whether the product can currently fulfil the quantity
func (p *Product) AvailableFor(quantity int64) error {
	if !p.IsActive {
		return shared.ErrProductInactive
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock for %s: %d requested, %d available", p.Name, quantity, p.Stock))
	}
	return nil
}

// ReserveStock decrements stock and increments the sold counter
// Used by order creation; ReleaseStock is the exact inverse
func (p *Product) ReserveStock(quantity int64) error {
	if err := p.AvailableFor(quantity); err != nil {
		return err
	}
	p.Stock -= quantity
	p.SoldCount += quantity
	p.Touch()

	p.AddDomainEvent(NewProductStockReservedEvent(p, quantity))

	return nil
}

// ReleaseStock returns reserved stock, reversing a prior ReserveStock
// Used when an order is cancelled or its payment is rejected
func (p *Product) ReleaseStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.SoldCount < quantity {
		return shared.NewDomainError("INVALID_QUANTITY", "Cannot release more than was sold")
	}
	p.Stock += quantity
	p.SoldCount -= quantity
	p.Touch()

	p.AddDomainEvent(NewProductStockReleasedEvent(p, quantity))

	return nil
}

// Activate makes the listing visible and purchasable
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// Deactivate hides the listing from buyers
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}

// PriceMoney returns the price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(p.Price)
}

// IsOwnedBy returns true if the product belongs to the seller
func (p *Product) IsOwnedBy(sellerID uuid.UUID) bool {
	return p.SellerID == sellerID
}
