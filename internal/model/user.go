package model

import "time"

// User — учётная запись хранилища. Email уникален и регистрозависим.
// Пароль храним только как bcrypt-хеш (осознанное отступление от исходной
// схемы с открытым текстом).
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	FullName string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`

	PasswordHash string `gorm:"not null"`

	// Связи
	Entries []VaultEntry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
