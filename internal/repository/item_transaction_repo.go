package repository

import (
	"go-cozypos/internal/model"

	"gorm.io/gorm"
)

type ItemTransactionRepository interface {
	Create(itemTx *model.ItemTransaction) error
	FindAll() ([]model.ItemTransaction, error)
	FindByTransactionID(transactionID uint) ([]model.ItemTransaction, error)
}

type itemTransactionRepo struct {
	db *gorm.DB
}

func NewItemTransactionRepo(db *gorm.DB) ItemTransactionRepository {
	return &itemTransactionRepo{db}
}

func (r *itemTransactionRepo) Create(itemTx *model.ItemTransaction) error {
	return r.db.Create(itemTx).Error
}

func (r *itemTransactionRepo) FindAll() ([]model.ItemTransaction, error) {
	var itemTxs []model.ItemTransaction
	err := r.db.Find(&itemTxs).Error
	return itemTxs, err
}

func (r *itemTransactionRepo) FindByTransactionID(transactionID uint) ([]model.ItemTransaction, error) {
	var itemTxs []model.ItemTransaction
	err := r.db.Find(&itemTxs, "transaction_id = ?", transactionID).Error
	return itemTxs, err
}
