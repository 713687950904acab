package service

import (
	"Shotshelf/dao/cache"
	"Shotshelf/models"
	"Shotshelf/pkg/log"
	"Shotshelf/pkg/snowflake"
	"Shotshelf/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IExportService = (*ExportService)(nil)

type IExportService interface {
	// Export 在 Figma 新建文件并生成按分类整理的图片清单
	Export(ctx context.Context, req *types.ExportRequest) (*types.ExportResult, error)

	// GetManifest 先查 redis，再查 exports 表
	GetManifest(ctx context.Context, fileKey string) (*types.ExportManifest, error)
}

type ExportService struct {
	ImageRepo  ImageRepository
	ExportRepo ExportRepository
	Manifests  ManifestCache
	Storage    IStorageService
	Figma      DesignFileCreator
}

// CategoryBucket 同一分类下的图片，保持查询返回的顺序
type CategoryBucket struct {
	Category string
	Images   []models.Image
}

func (s *ExportService) Export(ctx context.Context, req *types.ExportRequest) (*types.ExportResult, error) {
	if req.GroupId == "" || req.GroupName == "" || req.FigmaAccessToken == "" {
		return nil, invalidArgument("groupId, groupName, and figmaAccessToken are required")
	}

	images, err := s.ImageRepo.ListByGroupOrderByCategory(ctx, req.GroupId)
	if err != nil {
		return nil, fmt.Errorf("fetch images: %w", err)
	}
	if len(images) == 0 {
		return nil, notFound("No images found in this group")
	}

	fileKey, err := s.Figma.CreateFile(ctx, req.FigmaAccessToken, req.GroupName)
	if err != nil {
		return nil, err
	}

	manifest, err := s.buildManifest(fileKey, GroupByCategory(images))
	if err != nil {
		return nil, err
	}

	result := &types.ExportResult{
		FileKey:  fileKey,
		FileUrl:  s.Figma.FileURL(fileKey),
		Manifest: manifest,
	}
	s.saveManifest(ctx, req.GroupId, result)
	return result, nil
}

// GroupByCategory category 为空的归入 Uncategorized
func GroupByCategory(images []models.Image) []CategoryBucket {
	buckets := make([]CategoryBucket, 0)
	index := make(map[string]int)

	for _, img := range images {
		category := types.CategoryUncategorized
		if img.Category != nil && *img.Category != "" {
			category = *img.Category
		}
		i, ok := index[category]
		if !ok {
			i = len(buckets)
			index[category] = i
			buckets = append(buckets, CategoryBucket{Category: category})
		}
		buckets[i].Images = append(buckets[i].Images, img)
	}
	return buckets
}

func (s *ExportService) buildManifest(fileKey string, buckets []CategoryBucket) (*types.ExportManifest, error) {
	manifest := &types.ExportManifest{
		FileKey:    fileKey,
		Categories: make([]types.ManifestCategory, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		category := types.ManifestCategory{
			Category: bucket.Category,
			Images:   make([]types.ManifestImage, 0, len(bucket.Images)),
		}
		for _, img := range bucket.Images {
			url, err := s.Storage.PublicURL(img.FilePath)
			if err != nil {
				return nil, fmt.Errorf("resolve public url for %s: %w", img.Id, err)
			}
			category.Images = append(category.Images, types.ManifestImage{Name: img.FileName, Url: url})
		}
		manifest.Categories = append(manifest.Categories, category)
	}
	return manifest, nil
}

// saveManifest 落库和缓存都是尽力而为，文件已经建好不能因此报错
func (s *ExportService) saveManifest(ctx context.Context, groupId string, result *types.ExportResult) {
	raw, err := json.Marshal(result.Manifest)
	if err != nil {
		log.L.Error("marshal manifest", zap.Error(err))
		return
	}

	export := &models.Export{
		ID:        snowflake.GenID(),
		GroupId:   groupId,
		FileKey:   result.FileKey,
		FileUrl:   result.FileUrl,
		Manifest:  raw,
		CreatedAt: time.Now(),
	}
	if err := s.ExportRepo.CreateExport(ctx, export); err != nil {
		log.L.Error("persist export", zap.String("file_key", result.FileKey), zap.Error(err))
	}
	if err := s.Manifests.Set(ctx, result.Manifest); err != nil {
		log.L.Warn("cache manifest", zap.String("file_key", result.FileKey), zap.Error(err))
	}
}

func (s *ExportService) GetManifest(ctx context.Context, fileKey string) (*types.ExportManifest, error) {
	if fileKey == "" {
		return nil, invalidArgument("fileKey is required")
	}

	manifest, err := s.Manifests.Get(ctx, fileKey)
	if err == nil {
		return manifest, nil
	}
	if !errors.Is(err, cache.ErrManifestMiss) {
		log.L.Warn("read cached manifest", zap.String("file_key", fileKey), zap.Error(err))
	}

	export, err := s.ExportRepo.FindLatestByFileKey(ctx, fileKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Manifest not found")
	}
	if err != nil {
		return nil, err
	}

	manifest = &types.ExportManifest{}
	if err := json.Unmarshal(export.Manifest, manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := s.Manifests.Set(ctx, manifest); err != nil {
		log.L.Warn("cache manifest", zap.String("file_key", fileKey), zap.Error(err))
	}
	return manifest, nil
}
