package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	Id          string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`   // uuid
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"` // 分组名称
	Description *string   `gorm:"column:description;type:varchar(500)" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_group_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Group) TableName() string {
	return "groups"
}

func (g *Group) BeforeCreate(*gorm.DB) error {
	if g.Id == "" {
		g.Id = uuid.NewString()
	}
	return nil
}
