package persistence

import (
	"context"
	"errors"

	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create creates an order together with its item snapshots
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an order guarded by its version. Item snapshots are
// immutable after creation, so only the order row is written. A stale
// in-memory copy fails with ErrConcurrencyConflict instead of overwriting
// a newer state.
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":              model.Status,
			"payment_status":      model.PaymentStatus,
			"payment_receipt_url": model.PaymentReceiptURL,
			"admin_notes":         model.AdminNotes,
			"cancel_reason":       model.CancelReason,
			"delivery_confirmed":  model.DeliveryConfirmed,
			"payment_verified_at": model.PaymentVerifiedAt,
			"confirmed_at":        model.ConfirmedAt,
			"ready_at":            model.ReadyAt,
			"picked_up_at":        model.PickedUpAt,
			"cancelled_at":        model.CancelledAt,
			"rejected_at":         model.RejectedAt,
			"version":             model.Version + 1,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	o.IncrementVersion()
	return nil
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderNumber finds an order by its public reference
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, number string) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "order_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID returns a buyer's orders with pagination
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*order.Order, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("user_id = ?", userID), filter)
}

// FindBySellerID returns a seller's orders with pagination
func (r *GormOrderRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]*order.Order, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("seller_id = ?", sellerID), filter)
}

// FindByStatus returns orders in a status with pagination
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.Status, filter shared.Filter) ([]*order.Order, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("status = ?", status), filter)
}

// FindPendingPaymentVerification returns orders awaiting admin receipt review,
// oldest first so the queue is worked in submission order.
func (r *GormOrderRepository) FindPendingPaymentVerification(ctx context.Context, filter shared.Filter) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status = ? AND payment_status = ?", order.StatusPending, order.PaymentStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.OrderModel
	if err := query.
		Preload("Items").
		Order("created_at ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return toDomainOrders(records), total, nil
}

// CountByStatus returns the number of orders in a status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySellerID returns the number of orders placed with a seller
func (r *GormOrderRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) list(query *gorm.DB, filter shared.Filter) ([]*order.Order, int64, error) {
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	var records []models.OrderModel
	if err := query.
		Preload("Items").
		Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return toDomainOrders(records), total, nil
}

func toDomainOrders(records []models.OrderModel) []*order.Order {
	orders := make([]*order.Order, len(records))
	for i := range records {
		orders[i] = records[i].ToDomain()
	}
	return orders
}

var _ order.OrderRepository = (*GormOrderRepository)(nil)
