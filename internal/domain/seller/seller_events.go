package seller

import (
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Seller
const AggregateTypeSeller = "Seller"

// Seller domain event types
const (
	EventTypeSellerApplied  = "SellerApplied"
	EventTypeSellerApproved = "SellerApproved"
	EventTypeSellerRejected = "SellerRejected"
)

// SellerAppliedEvent is published when a seller application is submitted
type SellerAppliedEvent struct {
	shared.BaseDomainEvent
	UserID    uuid.UUID `json:"user_id"`
	StoreName string    `json:"store_name"`
}

// NewSellerAppliedEvent creates a new SellerAppliedEvent
func NewSellerAppliedEvent(s *Seller) *SellerAppliedEvent {
	return &SellerAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSellerApplied, AggregateTypeSeller, s.ID),
		UserID:          s.UserID,
		StoreName:       s.StoreName,
	}
}

// SellerApprovedEvent is published when an admin approves an application
type SellerApprovedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewSellerApprovedEvent creates a new SellerApprovedEvent
func NewSellerApprovedEvent(s *Seller) *SellerApprovedEvent {
	return &SellerApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSellerApproved, AggregateTypeSeller, s.ID),
		UserID:          s.UserID,
	}
}

// SellerRejectedEvent is published when an admin rejects an application
type SellerRejectedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

// NewSellerRejectedEvent creates a new SellerRejectedEvent
func NewSellerRejectedEvent(s *Seller) *SellerRejectedEvent {
	return &SellerRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSellerRejected, AggregateTypeSeller, s.ID),
		UserID:          s.UserID,
		Reason:          s.AdminNotes,
	}
}
