package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image 一张截图对应一个存储对象，Category 在分类前为 NULL
type Image struct {
	Id        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	GroupId   string    `gorm:"column:group_id;type:varchar(36);not null;index:idx_group_category,priority:1" json:"group_id"`
	FilePath  string    `gorm:"column:file_path;type:varchar(255);not null;uniqueIndex:uk_file_path" json:"file_path"`
	FileName  string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	Category  *string   `gorm:"column:category;type:varchar(64);index:idx_group_category,priority:2" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_image_created_at" json:"created_at"`
}

// TableName 显式指定表名（推荐）
func (Image) TableName() string {
	return "images"
}

func (i *Image) BeforeCreate(*gorm.DB) error {
	if i.Id == "" {
		i.Id = uuid.NewString()
	}
	return nil
}
