package seller

import (
	"fmt"
	"strings"
	"time"

	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VerificationStatus represents the review state of a seller application
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// IsValid checks if the status is a known VerificationStatus
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}

// String returns the string representation of VerificationStatus
func (s VerificationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s VerificationStatus) CanTransitionTo(target VerificationStatus) bool {
	switch s {
	case VerificationPending:
		return target == VerificationApproved || target == VerificationRejected
	case VerificationRejected:
		// A rejected applicant may re-apply
		return target == VerificationPending
	case VerificationApproved:
		return false
	}
	return false
}

// Seller represents a seller profile and its verification lifecycle
// It is the aggregate root for the seller-verification workflow
type Seller struct {
	shared.BaseAggregateRoot
	UserID         uuid.UUID
	StoreName      string
	Description    string
	CampusLocation string
	ContactNumber  string
	Status         VerificationStatus
	AdminNotes     string
	ReviewedAt     *time.Time
}

// NewSeller creates a new seller application awaiting admin review
func NewSeller(userID uuid.UUID, storeName, description, campusLocation, contactNumber string) (*Seller, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	storeName = strings.TrimSpace(storeName)
	if storeName == "" {
		return nil, shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}
	if len(storeName) > 100 {
		return nil, shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot exceed 100 characters")
	}
	if strings.TrimSpace(campusLocation) == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Campus location cannot be empty")
	}

	sel := &Seller{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		StoreName:         storeName,
		Description:       strings.TrimSpace(description),
		CampusLocation:    strings.TrimSpace(campusLocation),
		ContactNumber:     strings.TrimSpace(contactNumber),
		Status:            VerificationPending,
	}

	sel.AddDomainEvent(NewSellerAppliedEvent(sel))

	return sel, nil
}

// Approve marks the application as approved
// The caller is responsible for promoting the owning user to the seller role
func (s *Seller) Approve(notes string) error {
	if !s.Status.CanTransitionTo(VerificationApproved) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot approve application in %s status", s.Status))
	}

	now := time.Now()
	s.Status = VerificationApproved
	s.AdminNotes = strings.TrimSpace(notes)
	s.ReviewedAt = &now
	s.UpdatedAt = now

	s.AddDomainEvent(NewSellerApprovedEvent(s))

	return nil
}

// Reject marks the application as rejected with a mandatory reason
func (s *Seller) Reject(reason string) error {
	if !s.Status.CanTransitionTo(VerificationRejected) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot reject application in %s status", s.Status))
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_REASON", "A reason is required when rejecting an application")
	}

	now := time.Now()
	s.Status = VerificationRejected
	s.AdminNotes = strings.TrimSpace(reason)
	s.ReviewedAt = &now
	s.UpdatedAt = now

	s.AddDomainEvent(NewSellerRejectedEvent(s))

	return nil
}

// Reapply resets a rejected application back to pending with updated details
func (s *Seller) Reapply(storeName, description, campusLocation, contactNumber string) error {
	if !s.Status.CanTransitionTo(VerificationPending) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot re-apply from %s status", s.Status))
	}
	storeName = strings.TrimSpace(storeName)
	if storeName == "" {
		return shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}

	s.StoreName = storeName
	s.Description = strings.TrimSpace(description)
	s.CampusLocation = strings.TrimSpace(campusLocation)
	s.ContactNumber = strings.TrimSpace(contactNumber)
	s.Status = VerificationPending
	s.AdminNotes = ""
	s.ReviewedAt = nil
	s.Touch()

	s.AddDomainEvent(NewSellerAppliedEvent(s))

	return nil
}

// UpdateProfile updates the mutable profile fields of an approved seller
func (s *Seller) UpdateProfile(storeName, description, campusLocation, contactNumber string) error {
	if s.Status != VerificationApproved {
		return shared.NewDomainError("INVALID_STATE", "Only approved sellers can update their profile")
	}
	storeName = strings.TrimSpace(storeName)
	if storeName == "" {
		return shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}

	s.StoreName = storeName
	s.Description = strings.TrimSpace(description)
	s.CampusLocation = strings.TrimSpace(campusLocation)
	s.ContactNumber = strings.TrimSpace(contactNumber)
	s.Touch()

	return nil
}

// IsApproved returns true if the seller may list products and receive orders
func (s *Seller) IsApproved() bool {
	return s.Status == VerificationApproved
}

// IsPending returns true if the application awaits review
func (s *Seller) IsPending() bool {
	return s.Status == VerificationPending
}
