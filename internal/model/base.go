package model

import "time"

// BaseModel carries the columns shared by every entity: the store-assigned
// primary key plus the caller-assigned natural key (uuid). The natural key
// is the only identifier known before a row is persisted, so ingestion joins
// rows through it. No uniqueness is enforced on it.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID      string    `gorm:"type:varchar(100);index" json:"uuid"`
	Hidden    bool      `gorm:"default:false" json:"hidden"`
	Ordering  int       `gorm:"default:0" json:"ordering"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
