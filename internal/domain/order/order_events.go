package order

import (
	"github.com/campusmart/backend/internal/domain/shared"
)

const AggregateTypeOrder = "Order"

const (
	EventTypeOrderCreated       = "order.created"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// OrderCreatedEvent is raised once per seller group at checkout
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber   string `json:"order_number"`
	UserID        string `json:"user_id"`
	SellerID      string `json:"seller_id"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	ItemCount     int    `json:"item_count"`
}

func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID.String(),
		SellerID:        o.SellerID.String(),
		TotalAmount:     o.TotalAmount.String(),
		PaymentMethod:   o.PaymentMethod.String(),
		ItemCount:       len(o.Items),
	}
}

// OrderStatusChangedEvent records every transition through the state machine
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
	Actor       string `json:"actor"`
}

func NewOrderStatusChangedEvent(o *Order, from, to Status, actor Actor) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		FromStatus:      from.String(),
		ToStatus:        to.String(),
		Actor:           string(actor),
	}
}
