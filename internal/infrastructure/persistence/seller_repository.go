package persistence

import (
	"context"
	"errors"

	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSellerRepository implements SellerRepository using GORM
type GormSellerRepository struct {
	db *gorm.DB
}

// NewGormSellerRepository creates a new GormSellerRepository
func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// Create persists a new seller profile
func (r *GormSellerRepository) Create(ctx context.Context, record *seller.Seller) error {
	model := models.SellerModelFromDomain(record)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates a seller profile guarded by its version. Review decisions
// race with profile edits, so a stale copy fails with ErrConcurrencyConflict.
func (r *GormSellerRepository) Update(ctx context.Context, record *seller.Seller) error {
	model := models.SellerModelFromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&models.SellerModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"store_name":      model.StoreName,
			"description":     model.Description,
			"campus_location": model.CampusLocation,
			"contact_number":  model.ContactNumber,
			"status":          model.Status,
			"admin_notes":     model.AdminNotes,
			"reviewed_at":     model.ReviewedAt,
			"version":         model.Version + 1,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	record.IncrementVersion()
	return nil
}

// FindByID finds a seller by ID
func (r *GormSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*seller.Seller, error) {
	var model models.SellerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID finds the seller profile owned by a user
func (r *GormSellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*seller.Seller, error) {
	var model models.SellerModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStatus returns sellers in a verification status with pagination
func (r *GormSellerRepository) FindByStatus(ctx context.Context, status seller.VerificationStatus, filter shared.Filter) ([]*seller.Seller, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.SellerModel{}).
		Where("status = ?", status)
	if filter.Search != "" {
		query = query.Where("store_name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, SellerSortFields, "created_at")
	var records []models.SellerModel
	if err := query.
		Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	sellers := make([]*seller.Seller, len(records))
	for i := range records {
		sellers[i] = records[i].ToDomain()
	}
	return sellers, total, nil
}

// CountByStatus returns the number of sellers in a verification status
func (r *GormSellerRepository) CountByStatus(ctx context.Context, status seller.VerificationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SellerModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ seller.SellerRepository = (*GormSellerRepository)(nil)
