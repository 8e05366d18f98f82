package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/pkg/pagination"
)

// parsePagination reads page/per_page query params with defaults applied
func parsePagination(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}
