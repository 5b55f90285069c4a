package handler

import (
	"time"

	apporder "github.com/campusmart/backend/internal/application/order"
	"github.com/google/uuid"
)

// CheckoutLineRequest is one purchased line in a checkout
type CheckoutLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest is the payload for checking out the cart selection
type CheckoutRequest struct {
	Items         []CheckoutLineRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"payment_method" binding:"required"`
	Notes         string                `json:"notes"`
	ReceiptURL    string                `json:"receipt_url"`
}

// CancelOrderRequest is the payload for a buyer cancellation
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// UpdateOrderStatusRequest is the payload for a seller status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReviewPaymentRequest is the payload for admin payment review
type ReviewPaymentRequest struct {
	Notes string `json:"notes"`
}

// OrderItemResponse is one snapshot line on an order
type OrderItemResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image,omitempty"`
	UnitPrice    string    `json:"unit_price"`
	Quantity     int64     `json:"quantity"`
	TotalPrice   string    `json:"total_price"`
}

// OrderResponse is the order representation on the wire
type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	OrderNumber       string              `json:"order_number"`
	UserID            uuid.UUID           `json:"user_id"`
	SellerID          uuid.UUID           `json:"seller_id"`
	Items             []OrderItemResponse `json:"items"`
	Subtotal          string              `json:"subtotal"`
	TotalAmount       string              `json:"total_amount"`
	Status            string              `json:"status"`
	PaymentMethod     string              `json:"payment_method"`
	PaymentStatus     string              `json:"payment_status"`
	PaymentReceiptURL string              `json:"payment_receipt_url,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	AdminNotes        string              `json:"admin_notes,omitempty"`
	CancelReason      string              `json:"cancel_reason,omitempty"`
	DeliveryConfirmed bool                `json:"delivery_confirmed"`
	CreatedAt         time.Time           `json:"created_at"`
	PaymentVerifiedAt *time.Time          `json:"payment_verified_at,omitempty"`
	ConfirmedAt       *time.Time          `json:"confirmed_at,omitempty"`
	ReadyAt           *time.Time          `json:"ready_at,omitempty"`
	PickedUpAt        *time.Time          `json:"picked_up_at,omitempty"`
	CancelledAt       *time.Time          `json:"cancelled_at,omitempty"`
	RejectedAt        *time.Time          `json:"rejected_at,omitempty"`
}

// CheckoutResponse is returned by a successful checkout
type CheckoutResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalOrders int             `json:"total_orders"`
	Message     string          `json:"message"`
}

// ReceiptUploadResponse is returned after a receipt image upload
type ReceiptUploadResponse struct {
	URL string `json:"url"`
}

func toOrderResponse(info apporder.OrderInfo) OrderResponse {
	items := make([]OrderItemResponse, len(info.Items))
	for i, item := range info.Items {
		items[i] = OrderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		}
	}
	return OrderResponse{
		ID:                info.ID,
		OrderNumber:       info.OrderNumber,
		UserID:            info.UserID,
		SellerID:          info.SellerID,
		Items:             items,
		Subtotal:          info.Subtotal,
		TotalAmount:       info.TotalAmount,
		Status:            info.Status,
		PaymentMethod:     info.PaymentMethod,
		PaymentStatus:     info.PaymentStatus,
		PaymentReceiptURL: info.PaymentReceiptURL,
		Notes:             info.Notes,
		AdminNotes:        info.AdminNotes,
		CancelReason:      info.CancelReason,
		DeliveryConfirmed: info.DeliveryConfirmed,
		CreatedAt:         info.CreatedAt,
		PaymentVerifiedAt: info.PaymentVerifiedAt,
		ConfirmedAt:       info.ConfirmedAt,
		ReadyAt:           info.ReadyAt,
		PickedUpAt:        info.PickedUpAt,
		CancelledAt:       info.CancelledAt,
		RejectedAt:        info.RejectedAt,
	}
}

func toOrderResponses(infos []apporder.OrderInfo) []OrderResponse {
	out := make([]OrderResponse, len(infos))
	for i, info := range infos {
		out[i] = toOrderResponse(info)
	}
	return out
}
