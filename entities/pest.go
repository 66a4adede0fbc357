package entities

import "time"

type PestReport struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserPhone string    `gorm:"index" json:"user_phone"`
	CropName  string    `json:"crop_name"`
	Diagnosis string    `json:"diagnosis"`
	Image     string    `json:"image"` // base64
	CreatedAt time.Time `json:"created_at"`
}
