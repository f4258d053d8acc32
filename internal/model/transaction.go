package model

// Transaction is one sale inside a project. Its line items live in
// ItemTransaction rows keyed by TransactionID.
type Transaction struct {
	BaseModel
	CustomPrice *float64 `json:"custom_price"`
	Cashier     string   `gorm:"type:varchar(100)" json:"cashier"`
	ProjectID   *uint    `gorm:"index" json:"project_id"`
}
