package model

type Item struct {
	BaseModel
	Name  string  `gorm:"type:varchar(255)" json:"name"`
	Desc  string  `json:"desc"`
	Price float64 `gorm:"default:0" json:"price"`
	// ManufacturingPrice stays null when the source value is unparsable.
	ManufacturingPrice *float64 `json:"manufacturing_price"`
}
