package handler

import (
	appcart "github.com/campusmart/backend/internal/application/cart"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles the buyer's cart
type CartHandler struct {
	BaseHandler
	cartService *appcart.CartService
	authMW      gin.HandlerFunc
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *appcart.CartService, authMW gin.HandlerFunc) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		authMW:      authMW,
	}
}

// RegisterRoutes registers cart routes on the API group
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(h.authMW)
	cart.GET("", h.Get)
	cart.POST("/items", h.AddItem)
	cart.PUT("/items/:productID", h.UpdateItem)
	cart.DELETE("/items/:productID", h.RemoveItem)
	cart.DELETE("", h.Clear)
}

// AddItemRequest is the payload for adding a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest is the payload for changing a line's quantity
type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse is one cart line on the wire
type CartItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image,omitempty"`
	SellerID     uuid.UUID `json:"seller_id"`
	UnitPrice    string    `json:"unit_price"`
	Quantity     int64     `json:"quantity"`
	LineTotal    string    `json:"line_total"`
	Stock        int64     `json:"stock"`
	Unavailable  bool      `json:"unavailable"`
}

// CartResponse is the full cart with totals and the seller split preview
type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	Subtotal    string             `json:"subtotal"`
	SellerCount int                `json:"seller_count"`
}

func toCartItemResponse(info appcart.CartItemInfo) CartItemResponse {
	return CartItemResponse{
		ID:           info.ID,
		ProductID:    info.ProductID,
		ProductName:  info.ProductName,
		ProductImage: info.ProductImage,
		SellerID:     info.SellerID,
		UnitPrice:    info.UnitPrice,
		Quantity:     info.Quantity,
		LineTotal:    info.LineTotal,
		Stock:        info.Stock,
		Unavailable:  info.Unavailable,
	}
}

func toCartResponse(view *appcart.CartView) CartResponse {
	items := make([]CartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = toCartItemResponse(item)
	}
	return CartResponse{
		Items:       items,
		Subtotal:    view.Subtotal.String(),
		SellerCount: view.SellerCount,
	}
}

// Get returns the current cart with totals
func (h *CartHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	view, err := h.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCartResponse(view))
}

// AddItem puts a product in the cart, merging with an existing line
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.cartService.AddItem(c.Request.Context(), appcart.AddItemInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCartItemResponse(*info))
}

// UpdateItem replaces the quantity on a cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseUUIDParam(c, "productID")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.cartService.UpdateItem(c.Request.Context(), appcart.UpdateItemInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCartItemResponse(*info))
}

// RemoveItem deletes the cart line holding the given product
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseUUIDParam(c, "productID")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
