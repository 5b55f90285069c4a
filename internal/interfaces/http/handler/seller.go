package handler

import (
	"github.com/campusmart/backend/internal/application/catalog"
	apporder "github.com/campusmart/backend/internal/application/order"
	appseller "github.com/campusmart/backend/internal/application/seller"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

// SellerHandler handles the seller-facing surface: the application and
// storefront profile, listing management, and incoming orders.
// Seller status checks live in the services, so a buyer whose application
// was just approved does not need a fresh token.
type SellerHandler struct {
	BaseHandler
	sellerService  *appseller.SellerService
	productService *catalog.ProductService
	orderService   *apporder.OrderService
	fileStorage    storage.FileStorage
	maxUploadSize  int64
	authMW         gin.HandlerFunc
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(
	sellerService *appseller.SellerService,
	productService *catalog.ProductService,
	orderService *apporder.OrderService,
	fileStorage storage.FileStorage,
	maxUploadSize int64,
	authMW gin.HandlerFunc,
) *SellerHandler {
	return &SellerHandler{
		sellerService:  sellerService,
		productService: productService,
		orderService:   orderService,
		fileStorage:    fileStorage,
		maxUploadSize:  maxUploadSize,
		authMW:         authMW,
	}
}

// RegisterRoutes registers seller routes on the API group
func (h *SellerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	seller := rg.Group("/seller")
	seller.Use(h.authMW)

	seller.POST("/apply", h.Apply)
	seller.GET("/profile", h.GetProfile)
	seller.PUT("/profile", h.UpdateProfile)

	seller.GET("/products", h.ListProducts)
	seller.POST("/products", h.CreateProduct)
	seller.POST("/products/image", h.UploadProductImage)
	seller.PUT("/products/:id", h.UpdateProduct)
	seller.DELETE("/products/:id", h.DeleteProduct)
	seller.POST("/products/:id/restock", h.RestockProduct)
	seller.PATCH("/products/:id/active", h.SetProductActive)

	seller.GET("/orders", h.ListOrders)
	seller.GET("/orders/:id", h.GetOrder)
	seller.PATCH("/orders/:id/status", h.UpdateOrderStatus)
}

// Apply submits a seller application for the current user
func (h *SellerHandler) Apply(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SellerApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.sellerService.Apply(c.Request.Context(), appseller.ApplyInput{
		UserID:         userID,
		StoreName:      req.StoreName,
		Description:    req.Description,
		CampusLocation: req.CampusLocation,
		ContactNumber:  req.ContactNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toSellerResponse(*info))
}

// GetProfile returns the current user's seller record
func (h *SellerHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.sellerService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSellerResponse(*info))
}

// UpdateProfile updates the current user's storefront
func (h *SellerHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SellerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.sellerService.UpdateProfile(c.Request.Context(), appseller.UpdateProfileInput{
		UserID:         userID,
		StoreName:      req.StoreName,
		Description:    req.Description,
		CampusLocation: req.CampusLocation,
		ContactNumber:  req.ContactNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSellerResponse(*info))
}

// ListProducts returns the current seller's own listings, active or not
func (h *SellerHandler) ListProducts(c *gin.Context) {
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

	page, err := h.productService.ListOwn(c.Request.Context(), userID, toFilter(listReq))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toProductResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// CreateProduct lists a new product for the current seller
func (h *SellerHandler) CreateProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.productService.Create(c.Request.Context(), catalog.CreateProductInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toProductResponse(*info))
}

// UpdateProduct edits one of the current seller's listings
func (h *SellerHandler) UpdateProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.productService.Update(c.Request.Context(), catalog.UpdateProductInput{
		UserID:      userID,
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(*info))
}

// DeleteProduct removes one of the current seller's listings
func (h *SellerHandler) DeleteProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RestockProduct adds stock to one of the current seller's listings
func (h *SellerHandler) RestockProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.productService.Restock(c.Request.Context(), catalog.RestockInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(*info))
}

// SetProductActive shows or hides one of the current seller's listings
func (h *SellerHandler) SetProductActive(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.productService.SetActive(c.Request.Context(), catalog.SetActiveInput{
		UserID:    userID,
		ProductID: productID,
		Active:    *req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(*info))
}

// UploadProductImage stores a product photo and returns its URL,
// for use in a create or update request
func (h *SellerHandler) UploadProductImage(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A product image file is required")
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		h.BadRequest(c, "Product image exceeds the upload size limit")
		return
	}

	contentType, ok := storage.ImageContentType(fileHeader.Filename)
	if !ok {
		h.BadRequest(c, "Unsupported image type, use jpg, png or webp")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	key := storage.ProductImageKey(fileHeader.Filename)
	url, err := h.fileStorage.Store(c.Request.Context(), key, file, contentType)
	if err != nil {
		h.InternalError(c, "Failed to store product image")
		return
	}

	h.Created(c, ProductImageUploadResponse{URL: url})
}

// ListOrders returns orders placed with the current seller
func (h *SellerHandler) ListOrders(c *gin.Context) {
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

	page, err := h.orderService.ListForSeller(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toOrderResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// GetOrder returns one order placed with the current seller
func (h *SellerHandler) GetOrder(c *gin.Context) {
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

	info, err := h.orderService.GetForSeller(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}

// UpdateOrderStatus moves one of the seller's orders through the
// fulfilment lifecycle
func (h *SellerHandler) UpdateOrderStatus(c *gin.Context) {
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

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	status := order.Status(req.Status)
	if !status.IsValid() {
		h.BadRequest(c, "Unknown order status")
		return
	}

	info, err := h.orderService.UpdateStatus(c.Request.Context(), apporder.UpdateStatusInput{
		OrderID: orderID,
		UserID:  userID,
		Status:  status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(*info))
}
