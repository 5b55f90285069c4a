package identity

import (
	"github.com/campusmart/backend/internal/domain/shared"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

// User domain event types
const (
	EventTypeUserRegistered       = "UserRegistered"
	EventTypeUserPromotedToSeller = "UserPromotedToSeller"
)

// UserRegisteredEvent is published when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		Email:           user.Email,
		Name:            user.Name,
		Role:            user.Role,
	}
}

// UserPromotedToSellerEvent is published when a user gains the seller role
type UserPromotedToSellerEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserPromotedToSellerEvent creates a new UserPromotedToSellerEvent
func NewUserPromotedToSellerEvent(user *User) *UserPromotedToSellerEvent {
	return &UserPromotedToSellerEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPromotedToSeller, AggregateTypeUser, user.ID),
		Email:           user.Email,
	}
}
