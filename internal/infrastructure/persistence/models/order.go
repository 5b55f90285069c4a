package models

import (
	"time"

	"github.com/campusmart/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	AggregateModel
	OrderNumber       string              `gorm:"type:varchar(30);not null;uniqueIndex"`
	UserID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	SellerID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	Items             []OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal          decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	TotalAmount       decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	Status            order.Status        `gorm:"type:varchar(30);not null;index"`
	PaymentMethod     order.PaymentMethod `gorm:"type:varchar(30);not null"`
	PaymentStatus     order.PaymentStatus `gorm:"type:varchar(20);not null"`
	PaymentReceiptURL string              `gorm:"type:varchar(500)"`
	Notes             string              `gorm:"type:text"`
	AdminNotes        string              `gorm:"type:text"`
	CancelReason      string              `gorm:"type:text"`
	DeliveryConfirmed bool                `gorm:"not null;default:false"`
	PaymentVerifiedAt *time.Time
	ConfirmedAt       *time.Time
	ReadyAt           *time.Time
	PickedUpAt        *time.Time
	CancelledAt       *time.Time
	RejectedAt        *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order line snapshot.
type OrderItemModel struct {
	BaseModel
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	ProductImage string          `gorm:"type:varchar(500)"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity     int64           `gorm:"not null"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = order.OrderItem{
			BaseEntity:   item.BaseModel.ToDomain(),
			OrderID:      item.OrderID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		}
	}

	return &order.Order{
		BaseAggregateRoot: m.ToAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		UserID:            m.UserID,
		SellerID:          m.SellerID,
		Items:             items,
		Subtotal:          m.Subtotal,
		TotalAmount:       m.TotalAmount,
		Status:            m.Status,
		PaymentMethod:     m.PaymentMethod,
		PaymentStatus:     m.PaymentStatus,
		PaymentReceiptURL: m.PaymentReceiptURL,
		Notes:             m.Notes,
		AdminNotes:        m.AdminNotes,
		CancelReason:      m.CancelReason,
		DeliveryConfirmed: m.DeliveryConfirmed,
		PaymentVerifiedAt: m.PaymentVerifiedAt,
		ConfirmedAt:       m.ConfirmedAt,
		ReadyAt:           m.ReadyAt,
		PickedUpAt:        m.PickedUpAt,
		CancelledAt:       m.CancelledAt,
		RejectedAt:        m.RejectedAt,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.UserID = o.UserID
	m.SellerID = o.SellerID
	m.Subtotal = o.Subtotal
	m.TotalAmount = o.TotalAmount
	m.Status = o.Status
	m.PaymentMethod = o.PaymentMethod
	m.PaymentStatus = o.PaymentStatus
	m.PaymentReceiptURL = o.PaymentReceiptURL
	m.Notes = o.Notes
	m.AdminNotes = o.AdminNotes
	m.CancelReason = o.CancelReason
	m.DeliveryConfirmed = o.DeliveryConfirmed
	m.PaymentVerifiedAt = o.PaymentVerifiedAt
	m.ConfirmedAt = o.ConfirmedAt
	m.ReadyAt = o.ReadyAt
	m.PickedUpAt = o.PickedUpAt
	m.CancelledAt = o.CancelledAt
	m.RejectedAt = o.RejectedAt

	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		itemModel := OrderItemModel{
			OrderID:      item.OrderID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		}
		itemModel.FromDomainBaseEntity(item.BaseEntity)
		m.Items[i] = itemModel
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
