package model

// Project is one sales event. Transactions attach to it through their
// ProjectID foreign key; the relation is resolved in application code, not
// declared to the storage layer.
type Project struct {
	BaseModel
	Name string `gorm:"type:varchar(255)" json:"name"`
	Date Date   `gorm:"type:date" json:"date"`
}
