package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter 列名 -> 值，值为 nil 时生成 IS NULL
type Filter map[string]any

type Order struct {
	Field string
	Desc  bool
}

func Asc(field string) Order  { return Order{Field: field} }
func Desc(field string) Order { return Order{Field: field, Desc: true} }

// Repo 通用的单表 CRUD
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

func (r *Repo[T]) Create(ctx context.Context, v *T) error {
	return r.Db.WithContext(ctx).Create(v).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var v T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, filter Filter, orders ...Order) ([]T, error) {
	tx := r.Model(ctx)
	if len(filter) > 0 {
		tx = tx.Where(map[string]any(filter))
	}
	for _, o := range orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Desc})
	}

	items := make([]T, 0)
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateColumns 按条件更新，返回影响行数
func (r *Repo[T]) UpdateColumns(ctx context.Context, filter Filter, values map[string]any) (int64, error) {
	res := r.Model(ctx).Where(map[string]any(filter)).Updates(values)
	return res.RowsAffected, res.Error
}
