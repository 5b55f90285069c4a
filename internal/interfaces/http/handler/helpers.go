package handler

import (
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindListRequest parses pagination query parameters, applying defaults
// for anything the client omitted
func bindListRequest(c *gin.Context) (dto.ListRequest, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	defaults := dto.DefaultListRequest()
	if req.Page == 0 {
		req.Page = defaults.Page
	}
	if req.PageSize == 0 {
		req.PageSize = defaults.PageSize
	}
	if req.OrderBy == "" {
		req.OrderBy = defaults.OrderBy
	}
	if req.OrderDir == "" {
		req.OrderDir = defaults.OrderDir
	}
	return req, nil
}

// toFilter converts a list request to the repository filter
func toFilter(req dto.ListRequest) shared.Filter {
	filter := shared.DefaultFilter()
	filter.Page = req.Page
	filter.PageSize = req.PageSize
	filter.OrderBy = req.OrderBy
	filter.OrderDir = req.OrderDir
	filter.Search = req.Search
	return filter
}

// parseUUIDParam parses a UUID path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
