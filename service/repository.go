package service

import (
	"Shotshelf/models"
	"Shotshelf/types"
	"context"
)

// 以下接口由 dao / dao/cache / pkg 中的实现满足，见 wire.go

type GroupRepository interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, gid string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	Exists(ctx context.Context, gid string) (bool, error)
}

type ImageRepository interface {
	CreateImage(ctx context.Context, image *models.Image) error
	ListUncategorized(ctx context.Context, groupId string) ([]models.Image, error)
	ListByGroupOrderByCategory(ctx context.Context, groupId string) ([]models.Image, error)
	ListByGroup(ctx context.Context, groupId, category string) ([]models.Image, error)
	UpdateCategory(ctx context.Context, id, category string) error
	Categories(ctx context.Context, groupId string) ([]string, error)
}

type ExportRepository interface {
	CreateExport(ctx context.Context, export *models.Export) error
	FindLatestByFileKey(ctx context.Context, fileKey string) (*models.Export, error)
}

type ManifestCache interface {
	Set(ctx context.Context, manifest *types.ExportManifest) error
	Get(ctx context.Context, fileKey string) (*types.ExportManifest, error)
}

// ImageClassifier 必须总是返回一个分类
type ImageClassifier interface {
	Classify(ctx context.Context, imageURL string) string
}

type DesignFileCreator interface {
	CreateFile(ctx context.Context, accessToken, name string) (string, error)
	FileURL(fileKey string) string
}
