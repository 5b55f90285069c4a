package admin

import (
	"context"

	"github.com/campusmart/backend/internal/domain/catalog"
	"github.com/campusmart/backend/internal/domain/identity"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/seller"
	"go.uber.org/zap"
)

// DashboardStats holds the counters shown on the admin landing page.
type DashboardStats struct {
	TotalBuyers          int64 `json:"total_buyers"`
	TotalSellers         int64 `json:"total_sellers"`
	PendingApplications  int64 `json:"pending_applications"`
	ActiveProducts       int64 `json:"active_products"`
	PendingPayments      int64 `json:"pending_payments"`
	OrdersReadyForPickup int64 `json:"orders_ready_for_pickup"`
	CompletedOrders      int64 `json:"completed_orders"`
}

// DashboardService aggregates counts for the admin overview
type DashboardService struct {
	userRepo    identity.UserRepository
	sellerRepo  seller.SellerRepository
	productRepo catalog.ProductRepository
	orderRepo   order.OrderRepository
	logger      *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo identity.UserRepository,
	sellerRepo seller.SellerRepository,
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// GetStats collects the dashboard counters. Counts are read without a shared
// snapshot, so numbers taken while traffic is flowing may be off by a little.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalBuyers, err = s.userRepo.CountByRole(ctx, identity.RoleBuyer); err != nil {
		return nil, err
	}
	if stats.TotalSellers, err = s.sellerRepo.CountByStatus(ctx, seller.VerificationApproved); err != nil {
		return nil, err
	}
	if stats.PendingApplications, err = s.sellerRepo.CountByStatus(ctx, seller.VerificationPending); err != nil {
		return nil, err
	}
	if stats.ActiveProducts, err = s.productRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.PendingPayments, err = s.orderRepo.CountByStatus(ctx, order.StatusPending); err != nil {
		return nil, err
	}
	if stats.OrdersReadyForPickup, err = s.orderRepo.CountByStatus(ctx, order.StatusReadyForPickup); err != nil {
		return nil, err
	}
	if stats.CompletedOrders, err = s.orderRepo.CountByStatus(ctx, order.StatusPickedUp); err != nil {
		return nil, err
	}

	return stats, nil
}
