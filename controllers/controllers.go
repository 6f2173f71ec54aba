package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination is the window handed to list templates.
type Pagination struct {
	Page    int
	Total   int64
	HasNext bool
	HasPrev bool
	Next    int
	Prev    int
}

func paginate(c *gin.Context, total int64, pageSize int) Pagination {
	page := parsePage(c)
	return Pagination{
		Page:    page,
		Total:   total,
		HasNext: int64(page*pageSize) < total,
		HasPrev: page > 1,
		Next:    page + 1,
		Prev:    page - 1,
	}
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
	c.Abort()
}

func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
	c.Abort()
}
