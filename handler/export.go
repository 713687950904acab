package handler

import (
	"Shotshelf/pkg/context"
	"Shotshelf/pkg/response"
	"Shotshelf/service"
	"Shotshelf/types"

	"github.com/gin-gonic/gin"
)

type Export struct {
	ExportService service.IExportService
}

func (h *Export) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/export-to-figma", context.Wrap(h.ExportToFigma))         //导出到 Figma
	r.GET("/v1/exports/:fileKey/manifest", context.Wrap(h.GetManifest)) //导出清单
}

func (h *Export) ExportToFigma(c *gin.Context) error {
	var req types.ExportRequest
	if err := bindError(c.ShouldBindJSON(&req)); err != nil {
		return err
	}

	result, err := h.ExportService.Export(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.ExportResp{
		Success:      true,
		Message:      "Export to Figma completed",
		FigmaFileKey: result.FileKey,
		FigmaUrl:     result.FileUrl,
		Manifest:     result.Manifest,
	})
	return nil
}

func (h *Export) GetManifest(c *gin.Context) error {
	manifest, err := h.ExportService.GetManifest(c.Request.Context(), c.Param("fileKey"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, manifest)
	return nil
}
