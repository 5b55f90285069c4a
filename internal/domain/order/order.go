package order

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a line on an order. Name, image and price are snapshots taken
// at checkout so later product edits do not rewrite order history.
type OrderItem struct {
	shared.BaseEntity
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	ProductImage string
	UnitPrice    decimal.Decimal
	Quantity     int64
	TotalPrice   decimal.Decimal
}

// NewOrderItem snapshots a product line at the given unit price
func NewOrderItem(productID uuid.UUID, name, image string, unitPrice valueobject.Money, quantity int64) (OrderItem, error) {
	if productID == uuid.Nil {
		return OrderItem{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return OrderItem{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return OrderItem{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    productID,
		ProductName:  name,
		ProductImage: image,
		UnitPrice:    unitPrice.Amount(),
		Quantity:     quantity,
		TotalPrice:   unitPrice.MultiplyByInt(quantity).Amount(),
	}, nil
}

// Order is a purchase from exactly one seller. A checkout spanning multiple
// sellers produces one Order per seller.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber       string
	UserID            uuid.UUID
	SellerID          uuid.UUID
	Items             []OrderItem
	Subtotal          decimal.Decimal
	TotalAmount       decimal.Decimal
	Status            Status
	PaymentMethod     PaymentMethod
	PaymentStatus     PaymentStatus
	PaymentReceiptURL string
	Notes             string
	AdminNotes        string
	CancelReason      string
	DeliveryConfirmed bool
	PaymentVerifiedAt *time.Time
	ConfirmedAt       *time.Time
	ReadyAt           *time.Time
	PickedUpAt        *time.Time
	CancelledAt       *time.Time
	RejectedAt        *time.Time
}

const orderNumberCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateOrderNumber builds a unique, unguessable order reference.
// The timestamp keeps numbers roughly sortable; the random suffix keeps
// them unguessable.
func GenerateOrderNumber() string {
	suffix := make([]byte, 6)
	random := make([]byte, 6)
	if _, err := rand.Read(random); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// nanoseconds rather than panic in a request path
		return fmt.Sprintf("ORD-%s-%06d", time.Now().UTC().Format("20060102150405"), time.Now().Nanosecond()%1000000)
	}
	for i, b := range random {
		suffix[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}

// NewOrder creates an order for a single seller from snapshot items.
// Pickup-cash orders start confirmed; all other methods await admin payment
// verification.
func NewOrder(userID, sellerID uuid.UUID, items []OrderItem, method PaymentMethod, notes, receiptURL string) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method: %s", method))
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}

	status := StatusConfirmed
	if method.RequiresVerification() {
		status = StatusPending
	}

	now := time.Now()
	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       GenerateOrderNumber(),
		UserID:            userID,
		SellerID:          sellerID,
		Items:             items,
		Subtotal:          subtotal,
		TotalAmount:       subtotal,
		Status:            status,
		PaymentMethod:     method,
		PaymentStatus:     PaymentStatusPending,
		PaymentReceiptURL: strings.TrimSpace(receiptURL),
		Notes:             strings.TrimSpace(notes),
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	if status == StatusConfirmed {
		o.ConfirmedAt = &now
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))

	return o, nil
}

// TotalMoney returns the order total as a Money value object
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(o.TotalAmount)
}

// TransitionTo moves the order to a new status on behalf of the actor.
// It is the only way status changes; callers never assign Status directly.
func (o *Order) TransitionTo(to Status, actor Actor) error {
	if !to.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown status: %s", to))
	}
	if !CanTransition(o.Status, to, actor) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot move order from %s to %s as %s", o.Status, to, actor))
	}

	from := o.Status
	o.Status = to
	now := time.Now()
	o.UpdatedAt = now

	switch to {
	case StatusPaymentVerified:
		o.PaymentStatus = PaymentStatusVerified
		o.PaymentVerifiedAt = &now
	case StatusConfirmed:
		o.ConfirmedAt = &now
	case StatusReadyForPickup:
		o.ReadyAt = &now
	case StatusPickedUp:
		o.PickedUpAt = &now
		if o.PaymentMethod == PaymentMethodPickupCash {
			o.PaymentStatus = PaymentStatusPaid
		}
	case StatusCancelled:
		o.CancelledAt = &now
	case StatusRejected:
		o.RejectedAt = &now
		o.PaymentStatus = PaymentStatusRejected
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, to, actor))

	return nil
}

// Cancel cancels the order on the buyer's behalf with a mandatory reason
func (o *Order) Cancel(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancellation reason is required")
	}
	if err := o.TransitionTo(StatusCancelled, ActorBuyer); err != nil {
		return err
	}
	o.CancelReason = reason
	return nil
}

// VerifyPayment is the admin approving an uploaded receipt
func (o *Order) VerifyPayment(notes string) error {
	if err := o.TransitionTo(StatusPaymentVerified, ActorAdmin); err != nil {
		return err
	}
	o.AdminNotes = strings.TrimSpace(notes)
	return nil
}

// RejectPayment is the admin rejecting an uploaded receipt with a mandatory
// reason; the caller is responsible for releasing the reserved stock
func (o *Order) RejectPayment(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}
	if err := o.TransitionTo(StatusRejected, ActorAdmin); err != nil {
		return err
	}
	o.AdminNotes = reason
	return nil
}

// AttachReceipt stores the uploaded payment receipt URL
func (o *Order) AttachReceipt(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return shared.NewDomainError("INVALID_RECEIPT", "Receipt URL cannot be empty")
	}
	if o.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot attach a receipt to a closed order")
	}
	o.PaymentReceiptURL = url
	o.Touch()
	return nil
}

// ConfirmReceipt is the buyer acknowledging they collected the order
func (o *Order) ConfirmReceipt() error {
	if o.Status != StatusPickedUp {
		return shared.NewDomainError("INVALID_STATE", "Order has not been picked up yet")
	}
	o.DeliveryConfirmed = true
	o.Touch()
	return nil
}

// IsOwnedBy returns true if the order belongs to the buyer
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// IsSoldBy returns true if the order belongs to the seller
func (o *Order) IsSoldBy(sellerID uuid.UUID) bool {
	return o.SellerID == sellerID
}
