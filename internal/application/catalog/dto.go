package catalog

import (
	"time"

	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateProductInput contains the input for listing a new product
type CreateProductInput struct {
	UserID      uuid.UUID // acting user, resolved to their seller record
	Name        string
	Description string
	Category    string
	Price       string // decimal string, e.g. "25.00"
	Stock       int64
	ImageURL    string
}

// UpdateProductInput contains the input for editing a listing
type UpdateProductInput struct {
	UserID      uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Description string
	Category    string
	Price       string
	ImageURL    string
}

// RestockInput contains the input for adding stock to a listing
type RestockInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
}

// SetActiveInput toggles a listing's visibility
type SetActiveInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Active    bool
}

// ProductInfo is the product read model returned by the service
type ProductInfo struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Name        string
	Description string
	Category    string
	Price       string
	Stock       int64
	SoldCount   int64
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toProductInfo(product *catalog.Product) ProductInfo {
	return ProductInfo{
		ID:          product.ID,
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price.String(),
		Stock:       product.Stock,
		SoldCount:   product.SoldCount,
		ImageURL:    product.ImageURL,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
