package models

import (
	"time"

	"gorm.io/datatypes"
)

// Export 一次成功的 Figma 导出，Manifest 保存按分类整理的图片清单
type Export struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	GroupId   string         `gorm:"column:group_id;type:varchar(36);not null;index:idx_export_group" json:"group_id"`
	FileKey   string         `gorm:"column:file_key;type:varchar(128);not null;index:idx_export_file_key" json:"file_key"`
	FileUrl   string         `gorm:"column:file_url;type:varchar(255);not null" json:"file_url"`
	Manifest  datatypes.JSON `gorm:"column:manifest" json:"manifest"`
	CreatedAt time.Time      `gorm:"column:created_at;not null" json:"created_at"`
}

func (Export) TableName() string {
	return "exports"
}
