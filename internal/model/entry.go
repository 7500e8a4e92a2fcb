package model

import "time"

// VaultEntry — запись хранилища: пара (website, username) уникальна в рамках
// одного пользователя, это естественный составной ключ для upsert.
type VaultEntry struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;uniqueIndex:idx_entry_key"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Website  string `gorm:"not null;uniqueIndex:idx_entry_key"`
	Username string `gorm:"not null;uniqueIndex:idx_entry_key"`

	// Секрет лежит в БД только в зашифрованном виде (AES-GCM).
	SecretCipher []byte `gorm:"not null"`
	SecretNonce  []byte `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
