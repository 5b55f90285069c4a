package models

import (
	"time"

	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/google/uuid"
)

// SellerModel is the persistence model for the Seller aggregate.
type SellerModel struct {
	AggregateModel
	UserID         uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex"`
	StoreName      string                    `gorm:"type:varchar(100);not null"`
	Description    string                    `gorm:"type:text"`
	CampusLocation string                    `gorm:"type:varchar(200);not null"`
	ContactNumber  string                    `gorm:"type:varchar(50)"`
	Status         seller.VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes     string                    `gorm:"type:text"`
	ReviewedAt     *time.Time
}

// TableName returns the table name for GORM
func (SellerModel) TableName() string {
	return "sellers"
}

// ToDomain converts the persistence model to a domain Seller aggregate.
func (m *SellerModel) ToDomain() *seller.Seller {
	return &seller.Seller{
		BaseAggregateRoot: m.ToAggregateRoot(),
		UserID:            m.UserID,
		StoreName:         m.StoreName,
		Description:       m.Description,
		CampusLocation:    m.CampusLocation,
		ContactNumber:     m.ContactNumber,
		Status:            m.Status,
		AdminNotes:        m.AdminNotes,
		ReviewedAt:        m.ReviewedAt,
	}
}

// FromDomain populates the persistence model from a domain Seller aggregate.
func (m *SellerModel) FromDomain(s *seller.Seller) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.UserID = s.UserID
	m.StoreName = s.StoreName
	m.Description = s.Description
	m.CampusLocation = s.CampusLocation
	m.ContactNumber = s.ContactNumber
	m.Status = s.Status
	m.AdminNotes = s.AdminNotes
	m.ReviewedAt = s.ReviewedAt
}

// SellerModelFromDomain creates a new persistence model from a domain Seller aggregate.
func SellerModelFromDomain(s *seller.Seller) *SellerModel {
	m := &SellerModel{}
	m.FromDomain(s)
	return m
}
