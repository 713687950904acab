package dao

import (
	"Shotshelf/models"
	"context"

	"gorm.io/gorm"
)

type Group struct {
	Repo[models.Group]
}

func NewGroup(db *gorm.DB) *Group {
	return &Group{Repo: NewRepo[models.Group](db)}
}

func (g *Group) CreateGroup(ctx context.Context, group *models.Group) error {
	return g.Create(ctx, group)
}

// FindByID 不存在时返回 gorm.ErrRecordNotFound
func (g *Group) FindByID(ctx context.Context, gid string) (*models.Group, error) {
	return g.FindById(ctx, gid)
}

// ListGroups 按创建时间倒序
func (g *Group) ListGroups(ctx context.Context) ([]models.Group, error) {
	return g.FindAll(ctx, nil, Desc("created_at"))
}

func (g *Group) Exists(ctx context.Context, gid string) (bool, error) {
	var count int64
	if err := g.Model(ctx).Where("id = ?", gid).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
