package repository

import (
	"errors"

	"go-cozypos/internal/model"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindAll() ([]model.Item, error)
	FindByID(id uint) (*model.Item, error)
	FindByUUID(uuid string) (*model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByUUID resolves a natural key to a persisted row. Duplicate uuids are
// not rejected at insert time, so the tie-break here is arbitrary.
func (r *itemRepo) FindByUUID(uuid string) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
