package persistence

import (
	"context"
	"errors"

	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing product guarded by its version. Stock and
// sold_count move concurrently under checkout, so a write from a stale copy
// fails with ErrConcurrencyConflict.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"category":    model.Category,
			"price":       model.Price,
			"stock":       model.Stock,
			"sold_count":  model.SoldCount,
			"image_url":   model.ImageURL,
			"is_active":   model.IsActive,
			"version":     model.Version + 1,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	product.IncrementVersion()
	return nil
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive returns active products with pagination
func (r *GormProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]*catalog.Product, int64, error) {
	query := r.applyListFilters(
		r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("is_active = ?", true),
		filter,
	)
	return r.list(query, filter)
}

// FindBySellerID returns a seller's products with pagination
func (r *GormProductRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]*catalog.Product, int64, error) {
	query := r.applyListFilters(
		r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("seller_id = ?", sellerID),
		filter,
	)
	return r.list(query, filter)
}

// FindByIDsForUpdate loads products ordered by ID with SELECT ... FOR UPDATE
// row locks. Must run inside a transaction; the fixed ordering keeps
// concurrent checkouts touching overlapping products from deadlocking.
func (r *GormProductRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}

	var records []models.ProductModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, len(records))
	for i := range records {
		products[i] = records[i].ToDomain()
	}
	return products, nil
}

// CountBySellerID returns the number of products owned by a seller
func (r *GormProductRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive returns the number of active products
func (r *GormProductRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProductRepository) applyListFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if minPrice, ok := filter.Filters["min_price"]; ok {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice, ok := filter.Filters["max_price"]; ok {
		query = query.Where("price <= ?", maxPrice)
	}
	return query
}

func (r *GormProductRepository) list(query *gorm.DB, filter shared.Filter) ([]*catalog.Product, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, ProductSortFields, "created_at")
	var records []models.ProductModel
	if err := query.
		Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*catalog.Product, len(records))
	for i := range records {
		products[i] = records[i].ToDomain()
	}
	return products, total, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
