package repo

import (
	"context"
	"testing"

	"passvault/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{FullName: "Test User", Email: email, PasswordHash: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func TestEntryRepository_UpsertCreatesThenOverwrites(t *testing.T) {
	db := newTestDB(t)
	r := NewEntryRepository(db)
	ctx := context.Background()
	u := newTestUser(t, db, "a@x.com")

	first := &model.VaultEntry{
		ID: uuid.NewString(), UserID: u.ID,
		Website: "gmail.com", Username: "alice",
		SecretCipher: []byte("c1"), SecretNonce: []byte("n1"),
	}
	created, err := r.Upsert(ctx, first)
	assert.NoError(t, err)
	assert.True(t, created)

	// повторный upsert того же ключа: записей по-прежнему одна,
	// секрет — от последней записи, ID сохраняется
	second := &model.VaultEntry{
		ID: uuid.NewString(), UserID: u.ID,
		Website: "gmail.com", Username: "alice",
		SecretCipher: []byte("c2"), SecretNonce: []byte("n2"),
	}
	created, err = r.Upsert(ctx, second)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	entries, err := r.ListByUser(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, []byte("c2"), entries[0].SecretCipher)

	// ключ регистрозависим: другой регистр сайта — новая запись
	third := &model.VaultEntry{
		ID: uuid.NewString(), UserID: u.ID,
		Website: "Gmail.com", Username: "alice",
		SecretCipher: []byte("c3"), SecretNonce: []byte("n3"),
	}
	created, err = r.Upsert(ctx, third)
	assert.NoError(t, err)
	assert.True(t, created)

	entries, err = r.ListByUser(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEntryRepository_KeyScopedToUser(t *testing.T) {
	db := newTestDB(t)
	r := NewEntryRepository(db)
	ctx := context.Background()
	u1 := newTestUser(t, db, "a@x.com")
	u2 := newTestUser(t, db, "b@x.com")

	// одинаковый (website, username) у разных пользователей — разные записи
	for _, u := range []*model.User{u1, u2} {
		e := &model.VaultEntry{
			ID: uuid.NewString(), UserID: u.ID,
			Website: "gmail.com", Username: "alice",
			SecretCipher: []byte("c"), SecretNonce: []byte("n"),
		}
		created, err := r.Upsert(ctx, e)
		assert.NoError(t, err)
		assert.True(t, created)
	}

	e1, err := r.ListByUser(ctx, u1.ID)
	assert.NoError(t, err)
	e2, err2 := r.ListByUser(ctx, u2.ID)
	assert.NoError(t, err2)
	assert.Len(t, e1, 1)
	assert.Len(t, e2, 1)
	assert.NotEqual(t, e1[0].ID, e2[0].ID)
}

func TestEntryRepository_DeleteByID(t *testing.T) {
	db := newTestDB(t)
	r := NewEntryRepository(db)
	ctx := context.Background()
	u := newTestUser(t, db, "a@x.com")

	e := &model.VaultEntry{
		ID: uuid.NewString(), UserID: u.ID,
		Website: "gmail.com", Username: "alice",
		SecretCipher: []byte("c"), SecretNonce: []byte("n"),
	}
	_, err := r.Upsert(ctx, e)
	assert.NoError(t, err)

	// удаление несуществующего ID не трогает хранилище
	err = r.DeleteByID(ctx, uuid.NewString())
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	entries, err := r.ListByUser(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	// удаление существующего
	err = r.DeleteByID(ctx, e.ID)
	assert.NoError(t, err)

	entries, err = r.ListByUser(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 0)

	// повторное удаление — not found
	err = r.DeleteByID(ctx, e.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// GetByID после удаления
	got, err := r.GetByID(ctx, e.ID)
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
