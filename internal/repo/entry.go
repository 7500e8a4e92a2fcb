package repo

import (
	"context"

	"passvault/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository — контракт доступа к записям хранилища.
type EntryRepository interface {
	// ListByUser возвращает все записи пользователя в порядке создания.
	ListByUser(ctx context.Context, userID int64) ([]model.VaultEntry, error)

	// GetByID возвращает запись по идентификатору или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.VaultEntry, error)

	// Upsert атомарно вставляет запись или перезаписывает секрет существующей
	// с тем же составным ключом (user_id, website, username).
	// Возвращает created=true, если запись была создана в этой операции.
	Upsert(ctx context.Context, entry *model.VaultEntry) (created bool, err error)

	// DeleteByID удаляет запись. Если её нет — gorm.ErrRecordNotFound.
	DeleteByID(ctx context.Context, id string) error
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepository создаёт реализацию репозитория для VaultEntry.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) ListByUser(ctx context.Context, userID int64) ([]model.VaultEntry, error) {
	var entries []model.VaultEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) GetByID(ctx context.Context, id string) (*model.VaultEntry, error) {
	var e model.VaultEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Upsert полагается на ON CONFLICT по составному ключу, а не на
// read-modify-write: одновременные записи одного ключа не плодят дублей,
// побеждает последняя.
func (r *entryRepo) Upsert(ctx context.Context, entry *model.VaultEntry) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "website"}, {Name: "username"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"secret_cipher", "secret_nonce", "updated_at"}),
	}).Create(entry)
	if tx.Error != nil {
		return false, tx.Error
	}

	// При конфликте вставки действует старый ID строки — перечитываем,
	// чтобы вернуть вызывающему настоящий идентификатор.
	var stored model.VaultEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND website = ? AND username = ?", entry.UserID, entry.Website, entry.Username).
		First(&stored).Error
	if err != nil {
		return false, err
	}
	created := stored.ID == entry.ID
	*entry = stored
	return created, nil
}

func (r *entryRepo) DeleteByID(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VaultEntry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
