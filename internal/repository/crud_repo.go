package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
)

// CRUDRepository 以整数主键标识的实体的通用数据访问接口
//
// 约定：
//   - GetByID 未找到时返回 (nil, nil)，不视为错误
//   - Update 需传入已合并完成的完整实体，所有列都会被写回
//   - Delete 对不存在的 ID 静默返回 nil
//   - 每次调用独立执行，无缓存、无批处理、不跨调用共享事务
type CRUDRepository[T model.Entity] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int) error
}

// gormRepo CRUDRepository 的 GORM 实现
type gormRepo[T model.Entity] struct {
	db *gorm.DB
}

// NewGormRepo 创建指定实体类型的 CRUDRepository 实例
func NewGormRepo[T model.Entity](db *gorm.DB) CRUDRepository[T] {
	return &gormRepo[T]{db: db}
}

func (r *gormRepo[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *gormRepo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Take(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// 写操作忽略关联字段，只作用于实体自身所在的表

func (r *gormRepo[T]) Add(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

func (r *gormRepo[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *gormRepo[T]) Delete(ctx context.Context, id int) error {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	return r.db.WithContext(ctx).Delete(item).Error
}
