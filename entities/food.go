package entities

type Food struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:30;not null" json:"name"`
	Proteins int    `gorm:"not null" json:"proteins"` // grams
	Carbs    int    `gorm:"not null" json:"carbs"`    // grams
	Fats     int    `gorm:"not null" json:"fats"`     // grams

	Timestamp
}
