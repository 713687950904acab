package handler

import (
	"Shotshelf/pkg/response"
	"Shotshelf/types"

	"github.com/gin-gonic/gin"
)

type Category struct{}

func (h *Category) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/categories", h.ListCategories)
}

// ListCategories 返回完整分类体系
func (h *Category) ListCategories(c *gin.Context) {
	response.Success(c, types.Taxonomy())
}
