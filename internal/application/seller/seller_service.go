package seller

import (
	"context"
	"errors"

	"github.com/campusmart/backend/internal/domain/identity"
	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SellerService handles seller applications, profiles and admin verification
type SellerService struct {
	sellerRepo  seller.SellerRepository
	userRepo    identity.UserRepository
	reviewScope ReviewScope
	logger      *zap.Logger
}

// NewSellerService creates a new seller service
func NewSellerService(
	sellerRepo seller.SellerRepository,
	userRepo identity.UserRepository,
	reviewScope ReviewScope,
	logger *zap.Logger,
) *SellerService {
	return &SellerService{
		sellerRepo:  sellerRepo,
		userRepo:    userRepo,
		reviewScope: reviewScope,
		logger:      logger,
	}
}

// Apply submits a seller application for the user. A rejected applicant may
// apply again; pending and approved applicants may not.
func (s *SellerService) Apply(ctx context.Context, input ApplyInput) (*SellerInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if user.IsAdmin() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Admins cannot apply as sellers")
	}

	existing, err := s.sellerRepo.FindByUserID(ctx, input.UserID)
	if err == nil && existing != nil {
		switch existing.Status {
		case seller.VerificationPending:
			return nil, shared.NewDomainError("APPLICATION_PENDING", "A seller application is already under review")
		case seller.VerificationApproved:
			return nil, shared.NewDomainError("ALREADY_SELLER", "This account is already an approved seller")
		case seller.VerificationRejected:
			if err := existing.Reapply(input.StoreName, input.Description, input.CampusLocation, input.ContactNumber); err != nil {
				return nil, err
			}
			if err := s.sellerRepo.Update(ctx, existing); err != nil {
				s.logger.Error("Failed to persist re-application", zap.Error(err))
				if errors.Is(err, shared.ErrConcurrencyConflict) {
					return nil, err
				}
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit application")
			}
			s.logger.Info("Seller re-applied",
				zap.String("user_id", input.UserID.String()),
				zap.String("store_name", existing.StoreName))
			info := toSellerInfo(existing)
			return &info, nil
		}
	}

	application, err := seller.NewSeller(input.UserID, input.StoreName, input.Description, input.CampusLocation, input.ContactNumber)
	if err != nil {
		return nil, err
	}

	if err := s.sellerRepo.Create(ctx, application); err != nil {
		s.logger.Error("Failed to persist seller application", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit application")
	}

	s.logger.Info("Seller application submitted",
		zap.String("user_id", input.UserID.String()),
		zap.String("store_name", application.StoreName))

	info := toSellerInfo(application)
	return &info, nil
}

// GetProfile returns the seller record belonging to the user
func (s *SellerService) GetProfile(ctx context.Context, userID uuid.UUID) (*SellerInfo, error) {
	record, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info := toSellerInfo(record)
	return &info, nil
}

// GetByID returns a seller record, used for public storefront pages
func (s *SellerService) GetByID(ctx context.Context, id uuid.UUID) (*SellerInfo, error) {
	record, err := s.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !record.IsApproved() {
		return nil, shared.ErrNotFound
	}
	info := toSellerInfo(record)
	return &info, nil
}

// UpdateProfile updates an approved seller's storefront details
func (s *SellerService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*SellerInfo, error) {
	record, err := s.sellerRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := record.UpdateProfile(input.StoreName, input.Description, input.CampusLocation, input.ContactNumber); err != nil {
		return nil, err
	}

	if err := s.sellerRepo.Update(ctx, record); err != nil {
		s.logger.Error("Failed to persist seller profile", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	info := toSellerInfo(record)
	return &info, nil
}

// List returns seller applications filtered by verification status, for admins
func (s *SellerService) List(ctx context.Context, status seller.VerificationStatus, filter shared.Filter) (*shared.Paginated[SellerInfo], error) {
	records, total, err := s.sellerRepo.FindByStatus(ctx, status, filter)
	if err != nil {
		s.logger.Error("Failed to list sellers", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list sellers")
	}

	items := make([]SellerInfo, len(records))
	for i, record := range records {
		items[i] = toSellerInfo(record)
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Approve marks the application approved and promotes the user to seller.
// Both writes run in one transaction; a failed promotion rolls the
// approval back so the application stays pending.
func (s *SellerService) Approve(ctx context.Context, input ReviewInput) (*SellerInfo, error) {
	var record *seller.Seller

	err := s.reviewScope.Execute(ctx, func(repos ReviewRepositories) error {
		var err error
		record, err = repos.SellerRepo().FindByID(ctx, input.SellerID)
		if err != nil {
			return shared.ErrNotFound
		}

		user, err := repos.UserRepo().FindByID(ctx, record.UserID)
		if err != nil {
			return shared.NewDomainError("INTERNAL_ERROR", "Applicant account no longer exists")
		}

		if err := record.Approve(input.Notes); err != nil {
			return err
		}
		if err := user.PromoteToSeller(); err != nil {
			return err
		}

		if err := repos.SellerRepo().Update(ctx, record); err != nil {
			s.logger.Error("Failed to persist seller approval", zap.Error(err))
			if errors.Is(err, shared.ErrConcurrencyConflict) {
				return err
			}
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to approve seller")
		}
		if err := repos.UserRepo().Update(ctx, user); err != nil {
			s.logger.Error("Failed to promote user to seller", zap.Error(err))
			if errors.Is(err, shared.ErrConcurrencyConflict) {
				return err
			}
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to approve seller")
		}

		s.logger.Info("Seller approved",
			zap.String("seller_id", record.ID.String()),
			zap.String("user_id", user.ID.String()))
		return nil
	})
	if err != nil {
		return nil, err
	}

	info := toSellerInfo(record)
	return &info, nil
}

// Reject declines the application with a mandatory reason
func (s *SellerService) Reject(ctx context.Context, input ReviewInput) (*SellerInfo, error) {
	record, err := s.sellerRepo.FindByID(ctx, input.SellerID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := record.Reject(input.Notes); err != nil {
		return nil, err
	}

	if err := s.sellerRepo.Update(ctx, record); err != nil {
		s.logger.Error("Failed to persist seller rejection", zap.Error(err))
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reject seller")
	}

	s.logger.Info("Seller application rejected", zap.String("seller_id", record.ID.String()))

	info := toSellerInfo(record)
	return &info, nil
}
