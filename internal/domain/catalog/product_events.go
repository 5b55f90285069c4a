package catalog

import (
	"github.com/campusmart/backend/internal/domain/shared"
)

const AggregateTypeProduct = "Product"

const (
	EventTypeProductCreated       = "product.created"
	EventTypeProductStockReserved = "product.stock_reserved"
	EventTypeProductStockReleased = "product.stock_released"
)

// ProductCreatedEvent is raised when a seller lists a new product
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	SellerID string `json:"seller_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		SellerID:        product.SellerID.String(),
		Name:            product.Name,
		Price:           product.Price.String(),
	}
}

// ProductStockReservedEvent is raised when stock is decremented for an order
type ProductStockReservedEvent struct {
	shared.BaseDomainEvent
	Quantity       int64 `json:"quantity"`
	RemainingStock int64 `json:"remaining_stock"`
}

func NewProductStockReservedEvent(product *Product, quantity int64) *ProductStockReservedEvent {
	return &ProductStockReservedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStockReserved, AggregateTypeProduct, product.ID),
		Quantity:        quantity,
		RemainingStock:  product.Stock,
	}
}

// ProductStockReleasedEvent is raised when reserved stock is returned
type ProductStockReleasedEvent struct {
	shared.BaseDomainEvent
	Quantity       int64 `json:"quantity"`
	RemainingStock int64 `json:"remaining_stock"`
}

func NewProductStockReleasedEvent(product *Product, quantity int64) *ProductStockReleasedEvent {
	return &ProductStockReleasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStockReleased, AggregateTypeProduct, product.ID),
		Quantity:        quantity,
		RemainingStock:  product.Stock,
	}
}
