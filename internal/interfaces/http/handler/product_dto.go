package handler

import (
	"time"

	"github.com/campusmart/backend/internal/application/catalog"
	"github.com/google/uuid"
)

// BrowseProductsRequest is the query for the public product listing
type BrowseProductsRequest struct {
	Category string `form:"category"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
}

// CreateProductRequest is the payload for listing a new product
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Stock       int64  `json:"stock" binding:"required,min=1"`
	ImageURL    string `json:"image_url"`
}

// UpdateProductRequest is the payload for editing a listing
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Price       string `json:"price" binding:"required"`
	ImageURL    string `json:"image_url"`
}

// RestockRequest is the payload for adding stock to a listing
type RestockRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// SetActiveRequest toggles a listing's visibility
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ProductResponse is the product representation on the wire
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Stock       int64     `json:"stock"`
	SoldCount   int64     `json:"sold_count"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(info catalog.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:          info.ID,
		SellerID:    info.SellerID,
		Name:        info.Name,
		Description: info.Description,
		Category:    info.Category,
		Price:       info.Price,
		Stock:       info.Stock,
		SoldCount:   info.SoldCount,
		ImageURL:    info.ImageURL,
		IsActive:    info.IsActive,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

func toProductResponses(infos []catalog.ProductInfo) []ProductResponse {
	out := make([]ProductResponse, len(infos))
	for i, info := range infos {
		out[i] = toProductResponse(info)
	}
	return out
}
