package dao

import (
	"Shotshelf/models"
	"context"

	"gorm.io/gorm"
)

type Export struct {
	Repo[models.Export]
}

func NewExport(db *gorm.DB) *Export {
	return &Export{Repo: NewRepo[models.Export](db)}
}

func (e *Export) CreateExport(ctx context.Context, export *models.Export) error {
	return e.Create(ctx, export)
}

// FindLatestByFileKey 同一个 file key 理论上只有一条，取最新的
func (e *Export) FindLatestByFileKey(ctx context.Context, fileKey string) (*models.Export, error) {
	var export models.Export
	err := e.Db.WithContext(ctx).
		Where("file_key = ?", fileKey).
		Order("created_at DESC").
		First(&export).Error
	if err != nil {
		return nil, err
	}
	return &export, nil
}
