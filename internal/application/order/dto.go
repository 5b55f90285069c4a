package order

import (
	"time"

	"github.com/campusmart/backend/internal/domain/order"
	"github.com/google/uuid"
)

// CheckoutLine is one {product, quantity} pair in a checkout request
type CheckoutLine struct {
	ProductID uuid.UUID
	Quantity  int64
}

// CheckoutInput contains the input for a checkout
type CheckoutInput struct {
	UserID        uuid.UUID
	Lines         []CheckoutLine
	PaymentMethod order.PaymentMethod
	Notes         string
	ReceiptURL    string
}

// CheckoutResult is everything created by one checkout
type CheckoutResult struct {
	Orders      []OrderInfo
	TotalOrders int
	Message     string
}

// OrderItemInfo is one snapshot line on an order
type OrderItemInfo struct {
	ProductID    uuid.UUID
	ProductName  string
	ProductImage string
	UnitPrice    string
	Quantity     int64
	TotalPrice   string
}

// OrderInfo is the order read model returned by the services
type OrderInfo struct {
	ID                uuid.UUID
	OrderNumber       string
	UserID            uuid.UUID
	SellerID          uuid.UUID
	Items             []OrderItemInfo
	Subtotal          string
	TotalAmount       string
	Status            string
	PaymentMethod     string
	PaymentStatus     string
	PaymentReceiptURL string
	Notes             string
	AdminNotes        string
	CancelReason      string
	DeliveryConfirmed bool
	CreatedAt         time.Time
	PaymentVerifiedAt *time.Time
	ConfirmedAt       *time.Time
	ReadyAt           *time.Time
	PickedUpAt        *time.Time
	CancelledAt       *time.Time
	RejectedAt        *time.Time
}

// UpdateStatusInput contains the input for a status transition
type UpdateStatusInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID // acting user
	Status  order.Status
}

// CancelInput contains the input for a buyer cancellation
type CancelInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Reason  string
}

// ReviewPaymentInput contains the input for admin payment verification
type ReviewPaymentInput struct {
	OrderID uuid.UUID
	Notes   string
}

func toOrderInfo(o *order.Order) OrderInfo {
	items := make([]OrderItemInfo, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemInfo{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice.String(),
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice.String(),
		}
	}

	return OrderInfo{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		UserID:            o.UserID,
		SellerID:          o.SellerID,
		Items:             items,
		Subtotal:          o.Subtotal.String(),
		TotalAmount:       o.TotalAmount.String(),
		Status:            o.Status.String(),
		PaymentMethod:     o.PaymentMethod.String(),
		PaymentStatus:     o.PaymentStatus.String(),
		PaymentReceiptURL: o.PaymentReceiptURL,
		Notes:             o.Notes,
		AdminNotes:        o.AdminNotes,
		CancelReason:      o.CancelReason,
		DeliveryConfirmed: o.DeliveryConfirmed,
		CreatedAt:         o.CreatedAt,
		PaymentVerifiedAt: o.PaymentVerifiedAt,
		ConfirmedAt:       o.ConfirmedAt,
		ReadyAt:           o.ReadyAt,
		PickedUpAt:        o.PickedUpAt,
		CancelledAt:       o.CancelledAt,
		RejectedAt:        o.RejectedAt,
	}
}
