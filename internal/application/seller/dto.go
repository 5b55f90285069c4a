package seller

import (
	"time"

	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/google/uuid"
)

// ApplyInput contains the input for a seller application
type ApplyInput struct {
	UserID         uuid.UUID
	StoreName      string
	Description    string
	CampusLocation string
	ContactNumber  string
}

// UpdateProfileInput contains the input for storefront updates
type UpdateProfileInput struct {
	UserID         uuid.UUID
	StoreName      string
	Description    string
	CampusLocation string
	ContactNumber  string
}

// ReviewInput contains the input for an admin approving or rejecting
// an application
type ReviewInput struct {
	SellerID uuid.UUID
	Notes    string
}

// SellerInfo is the seller read model returned by the service
type SellerInfo struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	StoreName      string
	Description    string
	CampusLocation string
	ContactNumber  string
	Status         string
	AdminNotes     string
	ReviewedAt     *time.Time
	CreatedAt      time.Time
}

func toSellerInfo(record *seller.Seller) SellerInfo {
	return SellerInfo{
		ID:             record.ID,
		UserID:         record.UserID,
		StoreName:      record.StoreName,
		Description:    record.Description,
		CampusLocation: record.CampusLocation,
		ContactNumber:  record.ContactNumber,
		Status:         record.Status.String(),
		AdminNotes:     record.AdminNotes,
		ReviewedAt:     record.ReviewedAt,
		CreatedAt:      record.CreatedAt,
	}
}
