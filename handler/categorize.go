package handler

import (
	"Shotshelf/pkg/context"
	"Shotshelf/pkg/response"
	"Shotshelf/service"
	"Shotshelf/types"

	"github.com/gin-gonic/gin"
)

type Categorize struct {
	CategorizeService service.ICategorizeService
}

func (h *Categorize) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/categorize-images", context.Wrap(h.CategorizeImages)) //给分组内未分类图片打标签
}

func (h *Categorize) CategorizeImages(c *gin.Context) error {
	var req types.CategorizeRequest
	if err := bindError(c.ShouldBindJSON(&req)); err != nil {
		return err
	}

	outcome, err := h.CategorizeService.Categorize(c.Request.Context(), req.GroupId)
	if err != nil {
		return bizError(err)
	}
	if outcome.Pending == 0 {
		response.Success(c, types.CategorizeMessageResp{Message: "No uncategorized images found"})
		return nil
	}

	response.Success(c, types.CategorizeResultResp{
		Message: "Categorization complete",
		Results: outcome.Results,
	})
	return nil
}
