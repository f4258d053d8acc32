package model

// ItemTransaction joins an item to a transaction with a quantity. Both
// foreign keys are nullable: a failed natural-key resolution stores null
// rather than rejecting the row.
type ItemTransaction struct {
	BaseModel
	ItemID        *uint `gorm:"index" json:"item_id"`
	TransactionID *uint `gorm:"index" json:"transaction_id"`
	Qty           int   `gorm:"default:0" json:"qty"`
}
