package service

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/model"
	"passvault/internal/repo"
	"passvault/internal/secrets"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry — расшифрованное представление записи для вызывающего.
type Entry struct {
	ID       string
	Website  string
	Username string
	Secret   string
}

// VaultService — upsert/чтение/удаление записей хранилища.
// Секреты записей шифруются ключом сервера перед сохранением.
type VaultService struct {
	users   repo.UserRepository
	entries repo.EntryRepository
	key     []byte
}

func NewVaultService(users repo.UserRepository, entries repo.EntryRepository, key []byte) *VaultService {
	return &VaultService{users: users, entries: entries, key: key}
}

// Upsert вставляет запись или перезаписывает секрет существующей с тем же
// ключом (website, username) в рамках учётной записи. Сравнение ключа
// точное, с учётом регистра; побеждает последняя запись.
func (s *VaultService) Upsert(ctx context.Context, email, website, username, secret string) (*Entry, bool, error) {
	if website == "" || username == "" || secret == "" {
		return nil, false, ErrEmptyField
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, err
	}

	cipher, nonce, err := secrets.Seal([]byte(secret), s.key)
	if err != nil {
		return nil, false, fmt.Errorf("sealing secret: %w", err)
	}

	entry := &model.VaultEntry{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Website:      website,
		Username:     username,
		SecretCipher: cipher,
		SecretNonce:  nonce,
	}
	created, err := s.entries.Upsert(ctx, entry)
	if err != nil {
		return nil, false, err
	}

	return &Entry{ID: entry.ID, Website: entry.Website, Username: entry.Username, Secret: secret}, created, nil
}

// List возвращает все записи учётной записи с расшифрованными секретами.
func (s *VaultService) List(ctx context.Context, email string) ([]Entry, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	stored, err := s.entries.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(stored))
	for _, e := range stored {
		plain, err := secrets.Open(e.SecretCipher, e.SecretNonce, s.key)
		if err != nil {
			return nil, fmt.Errorf("opening secret of entry %s: %w", e.ID, err)
		}
		out = append(out, Entry{ID: e.ID, Website: e.Website, Username: e.Username, Secret: string(plain)})
	}
	return out, nil
}

// Delete удаляет запись по идентификатору.
func (s *VaultService) Delete(ctx context.Context, id string) error {
	err := s.entries.DeleteByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntryNotFound
	}
	return err
}
