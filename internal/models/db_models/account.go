package db_models

import "time"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	WeddingDate  *time.Time
}
