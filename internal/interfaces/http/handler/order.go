package handler

import (
	apporder "github.com/campusmart/backend/internal/application/order"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles buyer-side order operations
type OrderHandler struct {
	BaseHandler
	orderService    *apporder.OrderService
	checkoutService *apporder.CheckoutService
	fileStorage     storage.FileStorage
	maxUploadSize   int64
	authMW          gin.HandlerFunc
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService *apporder.OrderService,
	checkoutService *apporder.CheckoutService,
	fileStorage storage.FileStorage,
	maxUploadSize int64,
	authMW gin.HandlerFunc,
) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
		fileStorage:     fileStorage,
		maxUploadSize:   maxUploadSize,
		authMW:          authMW,
	}
}

// RegisterRoutes registers buyer order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(h.authMW)
	orders.POST("", h.Checkout)
	orders.GET("", h.List)
	orders.GET("/:id", h.Get)
	orders.POST("/:id/cancel", h.Cancel)
	orders.POST("/:id/confirm-receipt", h.ConfirmReceipt)
	orders.POST("/:id/receipt", h.AttachReceipt)

	uploads := rg.Group("/uploads")
	uploads.Use(h.authMW)
	uploads.POST("/receipts", h.UploadReceipt)
}

// Checkout creates one order per distinct seller from the submitted lines
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	method := order.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		h.BadRequest(c, "Unknown payment method")
		return
	}
	if method.RequiresVerification() && req.ReceiptURL == "" {
		h.BadRequest(c, "A payment receipt is required for "+method.String())
		return
	}

	lines := make([]apporder.CheckoutLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = apporder.CheckoutLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), apporder.CheckoutInput{
		UserID:        userID,
		Lines:         lines,
		PaymentMethod: method,
		Notes:         req.Notes,
		ReceiptURL:    req.ReceiptURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CheckoutResponse{
		Orders:      toOrderResponses(result.Orders),
		TotalOrders: result.TotalOrders,
		Message:     result.Message,
	})
}

// List returns the buyer's orders, optionally filtered by status
func (h *OrderHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listReq, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := toFilter(listReq)
	if status := c.Query("status"); status != "" {
		if !order.Status(status).IsValid() {
			h.BadRequest(c, "Unknown order status")
			return
		}
		filter.Filters["status"] = status
	}

	page, err := h.orderService.ListForBuyer(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toOrderResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// Get returns one of the buyer's orders
func (h *OrderHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	info, err := h.orderService.GetForBuyer(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}

// Cancel cancels a pending or confirmed order and restores its stock
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "A cancellation reason is required")
		return
	}

	info, err := h.orderService.Cancel(c.Request.Context(), apporder.CancelInput{
		OrderID: orderID,
		UserID:  userID,
		Reason:  req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}

// ConfirmReceipt marks a ready order as picked up by the buyer
func (h *OrderHandler) ConfirmReceipt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	info, err := h.orderService.ConfirmReceipt(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}

// UploadReceipt stores a payment receipt image and returns its URL,
// for use in a subsequent checkout
func (h *OrderHandler) UploadReceipt(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	url, ok := h.storeReceiptFile(c)
	if !ok {
		return
	}

	h.Created(c, ReceiptUploadResponse{URL: url})
}

// AttachReceipt uploads a receipt image and attaches it to an existing order
func (h *OrderHandler) AttachReceipt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	url, ok := h.storeReceiptFile(c)
	if !ok {
		return
	}

	info, err := h.orderService.AttachReceipt(c.Request.Context(), userID, orderID, url)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}

// storeReceiptFile reads the multipart "file" field, validates it and writes
// it to storage. It writes the error response itself when ok is false.
func (h *OrderHandler) storeReceiptFile(c *gin.Context) (url string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A receipt image file is required")
		return "", false
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		h.BadRequest(c, "Receipt image exceeds the upload size limit")
		return "", false
	}

	contentType, ok := storage.ImageContentType(fileHeader.Filename)
	if !ok {
		h.BadRequest(c, "Unsupported image type, use jpg, png or webp")
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return "", false
	}
	defer file.Close()

	key := storage.ReceiptKey(fileHeader.Filename)
	url, err = h.fileStorage.Store(c.Request.Context(), key, file, contentType)
	if err != nil {
		h.InternalError(c, "Failed to store receipt image")
		return "", false
	}

	return url, true
}
