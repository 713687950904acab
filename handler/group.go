package handler

import (
	"Shotshelf/models"
	"Shotshelf/pkg/context"
	"Shotshelf/pkg/log"
	"Shotshelf/pkg/response"
	"Shotshelf/service"
	"Shotshelf/types"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupHandler struct {
	GroupService      service.IGroupService
	ImageService      service.IImageService
	CategorizeService service.ICategorizeService
}

func (h *GroupHandler) RegisterRouter(r gin.IRouter) {
	group := r.Group("/v1/groups")
	group.POST("", context.Wrap(h.CreateGroup))                  //创建分组
	group.GET("", context.Wrap(h.ListGroups))                    //分组列表
	group.GET("/:id", context.Wrap(h.GetGroup))                  //分组详情
	group.POST("/:id/images", context.Wrap(h.UploadImages))      //上传截图
	group.GET("/:id/images", context.Wrap(h.ListImages))         //分组内截图
	group.GET("/:id/categories", context.Wrap(h.ListCategories)) //分组内已有分类
}

// 创建分组
func (h *GroupHandler) CreateGroup(c *gin.Context) error {
	var req types.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	group, err := h.GroupService.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, toGroupResponse(group))
	return nil
}

func (h *GroupHandler) ListGroups(c *gin.Context) error {
	groups, err := h.GroupService.ListGroups(c.Request.Context())
	if err != nil {
		return err
	}

	resp := make([]types.GroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, toGroupResponse(&groups[i]))
	}
	response.Success(c, resp)
	return nil
}

func (h *GroupHandler) GetGroup(c *gin.Context) error {
	group, err := h.GroupService.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, toGroupResponse(group))
	return nil
}

// UploadImages 表单字段 files 可重复，categorize=true 时上传后立即分类
func (h *GroupHandler) UploadImages(c *gin.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest("multipart form with files is required")
	}
	defer func() { _ = form.RemoveAll() }()

	groupId := c.Param("id")
	resp, err := h.ImageService.UploadImages(c.Request.Context(), groupId, form.File["files"])
	if err != nil {
		return bizError(err)
	}

	if c.Query("categorize") == "true" && len(resp.Images) > 0 {
		outcome, err := h.CategorizeService.Categorize(c.Request.Context(), groupId)
		if err != nil {
			// 上传已经成功，分类失败只记日志
			log.L.Error("categorize after upload", zap.String("group_id", groupId), zap.Error(err))
		} else {
			resp.Categorize = outcome
		}
	}

	response.Success(c, resp)
	return nil
}

func (h *GroupHandler) ListImages(c *gin.Context) error {
	var req types.ListImagesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	images, err := h.ImageService.ListImages(c.Request.Context(), c.Param("id"), req.Category)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, images)
	return nil
}

func (h *GroupHandler) ListCategories(c *gin.Context) error {
	categories, err := h.ImageService.ListCategories(c.Request.Context(), c.Param("id"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, categories)
	return nil
}

func toGroupResponse(group *models.Group) types.GroupResponse {
	return types.GroupResponse{
		Id:          group.Id,
		Name:        group.Name,
		Description: group.Description,
		CreatedAt:   group.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   group.UpdatedAt.Format(time.RFC3339),
	}
}
