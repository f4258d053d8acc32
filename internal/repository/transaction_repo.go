package repository

import (
	"errors"

	"go-cozypos/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByUUID(uuid string) (*model.Transaction, error)
	FindByProjectID(projectID uint) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByUUID(uuid string) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.db.First(&tx, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindByProjectID returns the project's transactions in whatever order the
// store yields them; the report layer owns the final ordering.
func (r *transactionRepo) FindByProjectID(projectID uint) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Find(&transactions, "project_id = ?", projectID).Error
	return transactions, err
}
