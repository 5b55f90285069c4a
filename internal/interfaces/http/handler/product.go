package handler

import (
	"github.com/campusmart/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles the public product catalog
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
	optionalAuthMW gin.HandlerFunc
}

// NewProductHandler creates a new product handler. optionalAuthMW extracts
// claims when present so sellers can preview their own inactive listings.
func NewProductHandler(productService *catalog.ProductService, optionalAuthMW gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		optionalAuthMW: optionalAuthMW,
	}
}

// RegisterRoutes registers public catalog routes on the API group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	if h.optionalAuthMW != nil {
		products.Use(h.optionalAuthMW)
	}
	products.GET("", h.Browse)
	products.GET("/:id", h.Get)
}

// Browse lists active products with pagination, search and category filters
func (h *ProductHandler) Browse(c *gin.Context) {
	listReq, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}

	var browseReq BrowseProductsRequest
	if err := c.ShouldBindQuery(&browseReq); err != nil {
		h.BadRequest(c, "Invalid filter parameters")
		return
	}

	filter := toFilter(listReq)
	if browseReq.Category != "" {
		filter.Filters["category"] = browseReq.Category
	}
	if browseReq.MinPrice != "" {
		filter.Filters["min_price"] = browseReq.MinPrice
	}
	if browseReq.MaxPrice != "" {
		filter.Filters["max_price"] = browseReq.MaxPrice
	}

	page, err := h.productService.Browse(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toProductResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// Get returns a single product. Inactive products are only visible to
// their own seller.
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var actingUserID *uuid.UUID
	if userID, err := getUserID(c); err == nil {
		actingUserID = &userID
	}

	info, err := h.productService.GetByID(c.Request.Context(), productID, actingUserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(*info))
}
