package models

import (
	"github.com/campusmart/backend/internal/domain/cart"
	"github.com/google/uuid"
)

// CartItemModel is the persistence model for a cart line. One row per
// (user, product) pair; adding the same product again merges quantities.
type CartItemModel struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:2"`
	Quantity  int64     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem entity.
func (m *CartItemModel) ToDomain() *cart.CartItem {
	return &cart.CartItem{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
	}
}

// FromDomain populates the persistence model from a domain CartItem entity.
func (m *CartItemModel) FromDomain(item *cart.CartItem) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.UserID = item.UserID
	m.ProductID = item.ProductID
	m.Quantity = item.Quantity
}

// CartItemModelFromDomain creates a new persistence model from a domain CartItem entity.
func CartItemModelFromDomain(item *cart.CartItem) *CartItemModel {
	m := &CartItemModel{}
	m.FromDomain(item)
	return m
}
