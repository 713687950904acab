package service

import (
	"Shotshelf/config"
	"Shotshelf/models"
	"Shotshelf/pkg/log"
	"Shotshelf/pkg/snowflake"
	"Shotshelf/pkg/utils"
	"Shotshelf/types"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	// UploadImages 逐个上传，单个失败不影响其他文件
	UploadImages(ctx context.Context, groupId string, headers []*multipart.FileHeader) (*types.UploadImagesResp, error)

	ListImages(ctx context.Context, groupId, category string) ([]types.ImageItem, error)

	ListCategories(ctx context.Context, groupId string) ([]string, error)
}

type ImageService struct {
	Config    *config.Config
	GroupRepo GroupRepository
	ImageRepo ImageRepository
	Storage   IStorageService
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (s *ImageService) UploadImages(ctx context.Context, groupId string, headers []*multipart.FileHeader) (*types.UploadImagesResp, error) {
	if groupId == "" {
		return nil, invalidArgument("groupId is required")
	}
	if len(headers) == 0 {
		return nil, invalidArgument("no files uploaded")
	}
	ok, err := s.GroupRepo.Exists(ctx, groupId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("Group not found")
	}

	resp := &types.UploadImagesResp{
		Images: make([]types.ImageItem, 0, len(headers)),
		Failed: make([]types.UploadFailure, 0),
	}
	for _, header := range headers {
		img, err := s.uploadOne(ctx, groupId, header)
		if err != nil {
			log.L.Warn("upload screenshot failed",
				zap.String("group_id", groupId),
				zap.String("file_name", header.Filename),
				zap.Error(err),
			)
			resp.Failed = append(resp.Failed, types.UploadFailure{FileName: header.Filename, Error: err.Error()})
			continue
		}
		resp.Images = append(resp.Images, s.toItem(img))
	}
	return resp, nil
}

func (s *ImageService) uploadOne(ctx context.Context, groupId string, header *multipart.FileHeader) (*models.Image, error) {
	maxSize := s.Config.App.MaxUploadBytes()

	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 1) MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := f.Read(head)
	contentType := http.DetectContentType(head[:n])
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// 2) 读取格式（不解码全图）
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// 3) 先存对象，再写 images 表
	objectKey := utils.ObjectKey(groupId, s.Config.App.HashSalt, snowflake.GenID(), strings.ToLower(format))
	if err := s.Storage.Upload(ctx, objectKey, io.LimitReader(f, maxSize+1), contentType); err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	img := &models.Image{
		GroupId:   groupId,
		FilePath:  objectKey,
		FileName:  header.Filename,
		CreatedAt: time.Now(),
	}
	if err := s.ImageRepo.CreateImage(ctx, img); err != nil {
		// 对象和记录没有事务，尽力删掉已上传的对象
		if delErr := s.Storage.Delete(ctx, objectKey); delErr != nil {
			log.L.Error("orphaned object left in storage", zap.String("object_key", objectKey), zap.Error(delErr))
		}
		return nil, fmt.Errorf("record image: %w", err)
	}
	return img, nil
}

// ListImages category 为空或 all 时返回全部
func (s *ImageService) ListImages(ctx context.Context, groupId, category string) ([]types.ImageItem, error) {
	if category == "all" {
		category = ""
	}
	images, err := s.ImageRepo.ListByGroup(ctx, groupId, category)
	if err != nil {
		return nil, err
	}

	items := make([]types.ImageItem, 0, len(images))
	for i := range images {
		items = append(items, s.toItem(&images[i]))
	}
	return items, nil
}

func (s *ImageService) ListCategories(ctx context.Context, groupId string) ([]string, error) {
	return s.ImageRepo.Categories(ctx, groupId)
}

func (s *ImageService) toItem(img *models.Image) types.ImageItem {
	url, err := s.Storage.PublicURL(img.FilePath)
	if err != nil {
		log.L.Warn("resolve public url", zap.String("image_id", img.Id), zap.Error(err))
	}
	return types.ImageItem{
		Id:        img.Id,
		GroupId:   img.GroupId,
		FilePath:  img.FilePath,
		FileName:  img.FileName,
		Category:  img.Category,
		Url:       url,
		CreatedAt: img.CreatedAt.Format(time.RFC3339),
	}
}
