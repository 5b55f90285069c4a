package handler

import (
	"time"

	appseller "github.com/campusmart/backend/internal/application/seller"
	"github.com/google/uuid"
)

// SellerApplyRequest is the payload for a seller application
type SellerApplyRequest struct {
	StoreName      string `json:"store_name" binding:"required"`
	Description    string `json:"description"`
	CampusLocation string `json:"campus_location" binding:"required"`
	ContactNumber  string `json:"contact_number" binding:"required"`
}

// SellerProfileRequest is the payload for storefront updates
type SellerProfileRequest struct {
	StoreName      string `json:"store_name" binding:"required"`
	Description    string `json:"description"`
	CampusLocation string `json:"campus_location" binding:"required"`
	ContactNumber  string `json:"contact_number" binding:"required"`
}

// SellerReviewRequest is the payload for admin approval or rejection
type SellerReviewRequest struct {
	Notes string `json:"notes"`
}

// SellerResponse is the seller representation on the wire
type SellerResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	StoreName      string     `json:"store_name"`
	Description    string     `json:"description,omitempty"`
	CampusLocation string     `json:"campus_location"`
	ContactNumber  string     `json:"contact_number"`
	Status         string     `json:"status"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ProductImageUploadResponse is returned after a product photo upload
type ProductImageUploadResponse struct {
	URL string `json:"url"`
}

func toSellerResponse(info appseller.SellerInfo) SellerResponse {
	return SellerResponse{
		ID:             info.ID,
		UserID:         info.UserID,
		StoreName:      info.StoreName,
		Description:    info.Description,
		CampusLocation: info.CampusLocation,
		ContactNumber:  info.ContactNumber,
		Status:         info.Status,
		AdminNotes:     info.AdminNotes,
		ReviewedAt:     info.ReviewedAt,
		CreatedAt:      info.CreatedAt,
	}
}

func toSellerResponses(infos []appseller.SellerInfo) []SellerResponse {
	out := make([]SellerResponse, len(infos))
	for i, info := range infos {
		out[i] = toSellerResponse(info)
	}
	return out
}
