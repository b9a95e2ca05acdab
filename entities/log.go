package entities

import "time"

type Log struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"type:date;not null;index" json:"date"`

	Timestamp
}

// LogFood is the log <-> food join row. The composite primary key keeps a
// food from appearing twice in the same log.
type LogFood struct {
	LogID  uint `gorm:"primaryKey;autoIncrement:false" json:"log_id"`
	FoodID uint `gorm:"primaryKey;autoIncrement:false" json:"food_id"`

	Log  *Log  `gorm:"foreignKey:LogID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Food *Food `gorm:"foreignKey:FoodID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
