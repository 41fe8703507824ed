package model

type BaseModel struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
}
