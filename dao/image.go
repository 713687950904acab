package dao

import (
	"Shotshelf/models"
	"context"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

func (u *Image) CreateImage(ctx context.Context, image *models.Image) error {
	return u.Repo.Db.WithContext(ctx).Create(image).Error
}

// ListUncategorized 分组下 category 为 NULL 的图片
func (u *Image) ListUncategorized(ctx context.Context, groupId string) ([]models.Image, error) {
	return u.FindAll(ctx, Filter{"group_id": groupId, "category": nil})
}

// ListByGroupOrderByCategory 导出用，按分类排序
func (u *Image) ListByGroupOrderByCategory(ctx context.Context, groupId string) ([]models.Image, error) {
	return u.FindAll(ctx, Filter{"group_id": groupId}, Asc("category"), Asc("created_at"))
}

// ListByGroup category 为空时不过滤，按创建时间倒序
func (u *Image) ListByGroup(ctx context.Context, groupId, category string) ([]models.Image, error) {
	filter := Filter{"group_id": groupId}
	if category != "" {
		filter["category"] = category
	}
	return u.FindAll(ctx, filter, Desc("created_at"))
}

// UpdateCategory 记录不存在时返回 gorm.ErrRecordNotFound
func (u *Image) UpdateCategory(ctx context.Context, id, category string) error {
	rows, err := u.UpdateColumns(ctx, Filter{"id": id}, map[string]any{"category": category})
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Categories 分组内已出现的分类，去重排序
func (u *Image) Categories(ctx context.Context, groupId string) ([]string, error) {
	categories := make([]string, 0)
	err := u.Model(ctx).
		Where("group_id = ? AND category IS NOT NULL", groupId).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
