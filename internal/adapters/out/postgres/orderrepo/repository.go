package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items and returns the number the database
// assigned to it.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.Number, nil
}

// GetByNumber retrieves an order by its number, items included.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an order with the given number is persisted.
func (r *GormOrderRepository) Exists(ctx context.Context, number int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Update applies a partial patch to an existing order. Absent scalar fields
// stay untouched; patch items are merged into the stored ones by id, and ids
// the order does not own are ignored.
func (r *GormOrderRepository) Update(ctx context.Context, number int, patch order.Patch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		columns := make(map[string]any)
		if patch.Name != nil {
			columns["name"] = *patch.Name
		}
		if patch.Description != nil {
			columns["description"] = *patch.Description
		}
		if patch.Status != nil {
			columns["status"] = patch.Status.String()
		}

		if len(columns) > 0 {
			err := tx.Model(&OrderDTO{}).
				Where("number = ?", number).
				Updates(columns).Error
			if err != nil {
				return err
			}
		}

		for _, item := range patch.Items {
			err := tx.Model(&OrderItemDTO{}).
				Where("order_number = ? AND id = ?", number, item.ID()).
				Updates(map[string]any{
					"name":     item.Name(),
					"quantity": item.Quantity(),
				}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes an order together with its items. Items go first so the
// order row never outlives them.
func (r *GormOrderRepository) Delete(ctx context.Context, number int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_number = ?", number).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}

		return tx.Where("number = ?", number).Delete(&OrderDTO{}).Error
	})
}
