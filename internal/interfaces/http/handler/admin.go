package handler

import (
	"github.com/campusmart/backend/internal/application/admin"
	apporder "github.com/campusmart/backend/internal/application/order"
	appseller "github.com/campusmart/backend/internal/application/seller"
	"github.com/campusmart/backend/internal/domain/seller"
	"github.com/campusmart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the admin surface: the dashboard, seller
// verification and payment receipt review
type AdminHandler struct {
	BaseHandler
	dashboardService *admin.DashboardService
	sellerService    *appseller.SellerService
	orderService     *apporder.OrderService
	authMW           gin.HandlerFunc
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	dashboardService *admin.DashboardService,
	sellerService *appseller.SellerService,
	orderService *apporder.OrderService,
	authMW gin.HandlerFunc,
) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		sellerService:    sellerService,
		orderService:     orderService,
		authMW:           authMW,
	}
}

// RegisterRoutes registers admin routes on the API group
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	adminGroup.Use(h.authMW, middleware.RequireRole("admin"))

	adminGroup.GET("/dashboard", h.Dashboard)
	adminGroup.GET("/sellers", h.ListSellers)
	adminGroup.GET("/sellers/:id", h.GetSeller)
	adminGroup.POST("/sellers/:id/approve", h.ApproveSeller)
	adminGroup.POST("/sellers/:id/reject", h.RejectSeller)
	adminGroup.GET("/payments/pending", h.ListPendingPayments)
	adminGroup.POST("/orders/:id/verify-payment", h.VerifyPayment)
	adminGroup.POST("/orders/:id/reject-payment", h.RejectPayment)
}

// Dashboard returns the marketplace counters for the admin landing page
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ListSellers lists seller applications, optionally filtered by status
func (h *AdminHandler) ListSellers(c *gin.Context) {
	listReq, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}

	status := seller.VerificationStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		h.BadRequest(c, "Unknown verification status")
		return
	}

	page, err := h.sellerService.List(c.Request.Context(), status, toFilter(listReq))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toSellerResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// GetSeller returns one seller application
func (h *AdminHandler) GetSeller(c *gin.Context) {
	sellerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	info, err := h.sellerService.GetByID(c.Request.Context(), sellerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSellerResponse(*info))
}

// ApproveSeller approves a pending seller application
func (h *AdminHandler) ApproveSeller(c *gin.Context) {
	sellerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	var req SellerReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.sellerService.Approve(c.Request.Context(), appseller.ReviewInput{
		SellerID: sellerID,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSellerResponse(*info))
}

// RejectSeller rejects a pending seller application
func (h *AdminHandler) RejectSeller(c *gin.Context) {
	sellerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	var req SellerReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.sellerService.Reject(c.Request.Context(), appseller.ReviewInput{
		SellerID: sellerID,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSellerResponse(*info))
}

// ListPendingPayments lists orders whose receipts await review
func (h *AdminHandler) ListPendingPayments(c *gin.Context) {
	listReq, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}

	page, err := h.orderService.ListPendingPayments(c.Request.Context(), toFilter(listReq))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toOrderResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// VerifyPayment accepts an order's payment receipt
func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req ReviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.orderService.VerifyPayment(c.Request.Context(), apporder.ReviewPaymentInput{
		OrderID: orderID,
		Notes:   req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}

// RejectPayment rejects an order's payment receipt and releases its stock
func (h *AdminHandler) RejectPayment(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req ReviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.orderService.RejectPayment(c.Request.Context(), apporder.ReviewPaymentInput{
		OrderID: orderID,
		Notes:   req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}
