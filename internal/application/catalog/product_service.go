package catalog

import (
	"context"
	"errors"

	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService handles listing management for sellers and browsing
// for buyers
type ProductService struct {
	productRepo catalog.ProductRepository
	sellerRepo  seller.SellerRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo catalog.ProductRepository,
	sellerRepo seller.SellerRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

// resolveApprovedSeller maps an acting user to their approved seller record
func (s *ProductService) resolveApprovedSeller(ctx context.Context, userID uuid.UUID) (*seller.Seller, error) {
	record, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_A_SELLER", "No seller profile for this account")
	}
	if !record.IsApproved() {
		return nil, shared.NewDomainError("SELLER_NOT_APPROVED", "Seller application has not been approved")
	}
	return record, nil
}

// Create lists a new product under the acting user's store
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductInfo, error) {
	record, err := s.resolveApprovedSeller(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	price, err := valueobject.NewMoneyPHPFromString(input.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a valid decimal amount")
	}

	product, err := catalog.NewProduct(record.ID, input.Name, input.Description, input.Category, price, input.Stock, input.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to persist product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}

	s.logger.Info("Product listed",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", record.ID.String()),
		zap.String("name", product.Name))

	info := toProductInfo(product)
	return &info, nil
}

// Update edits a listing owned by the acting user
func (s *ProductService) Update(ctx context.Context, input UpdateProductInput) (*ProductInfo, error) {
	_, product, err := s.loadOwned(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	price, err := valueobject.NewMoneyPHPFromString(input.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a valid decimal amount")
	}

	if err := product.Update(input.Name, input.Description, input.Category, price, input.ImageURL); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to persist product update", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	info := toProductInfo(product)
	return &info, nil
}

// Restock adds stock to a listing owned by the acting user
func (s *ProductService) Restock(ctx context.Context, input RestockInput) (*ProductInfo, error) {
	_, product, err := s.loadOwned(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if err := product.Restock(input.Quantity); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to persist restock", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to restock product")
	}

	info := toProductInfo(product)
	return &info, nil
}

// SetActive shows or hides a listing owned by the acting user
func (s *ProductService) SetActive(ctx context.Context, input SetActiveInput) (*ProductInfo, error) {
	_, product, err := s.loadOwned(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Active {
		product.Activate()
	} else {
		product.Deactivate()
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to persist visibility change", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	info := toProductInfo(product)
	return &info, nil
}

// Delete removes a listing owned by the acting user
func (s *ProductService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	_, product, err := s.loadOwned(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		s.logger.Error("Failed to delete product", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete product")
	}

	s.logger.Info("Product deleted", zap.String("product_id", product.ID.String()))
	return nil
}

// GetByID returns a single product. Inactive listings are visible only to
// their owner.
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID, actingUserID *uuid.UUID) (*ProductInfo, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if !product.IsActive {
		owned := false
		if actingUserID != nil {
			if record, err := s.sellerRepo.FindByUserID(ctx, *actingUserID); err == nil {
				owned = product.IsOwnedBy(record.ID)
			}
		}
		if !owned {
			return nil, shared.ErrNotFound
		}
	}

	info := toProductInfo(product)
	return &info, nil
}

// Browse lists active products for buyers with search and pagination
func (s *ProductService) Browse(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductInfo], error) {
	products, total, err := s.productRepo.FindActive(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to browse products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list products")
	}
	return paginate(products, total, filter), nil
}

// ListBySeller lists a seller's products, including inactive ones when the
// seller is viewing their own store
func (s *ProductService) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductInfo], error) {
	products, total, err := s.productRepo.FindBySellerID(ctx, sellerID, filter)
	if err != nil {
		s.logger.Error("Failed to list seller products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list products")
	}
	return paginate(products, total, filter), nil
}

// ListOwn lists the acting user's own products
func (s *ProductService) ListOwn(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductInfo], error) {
	record, err := s.resolveApprovedSeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ListBySeller(ctx, record.ID, filter)
}

func (s *ProductService) loadOwned(ctx context.Context, userID, productID uuid.UUID) (*seller.Seller, *catalog.Product, error) {
	record, err := s.resolveApprovedSeller(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, shared.ErrNotFound
	}
	if !product.IsOwnedBy(record.ID) {
		return nil, nil, shared.ErrForbidden
	}

	return record, product, nil
}

func paginate(products []*catalog.Product, total int64, filter shared.Filter) *shared.Paginated[ProductInfo] {
	items := make([]ProductInfo, len(products))
	for i, product := range products {
		items[i] = toProductInfo(product)
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result
}
