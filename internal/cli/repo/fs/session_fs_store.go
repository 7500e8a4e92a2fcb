package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// SessionFSStore — файловое хранилище активного email для CLI.
// Сервер не выдаёт токенов: единственная «сессия» — email, который клиент
// сам передаёт в каждом запросе к хранилищу.
type SessionFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "passvault")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func emailPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "active_email"), nil
}

// SaveEmail сохраняет email активной учётной записи.
func (SessionFSStore) SaveEmail(email string) error {
	if email == "" {
		return errors.New("empty email")
	}
	p, err := emailPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(email), 0o600)
}

// LoadEmail читает email активной учётной записи.
func (SessionFSStore) LoadEmail() (string, error) {
	p, err := emailPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("no active account, login first")
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}

// Clear удаляет сохранённый email.
func (SessionFSStore) Clear() error {
	p, err := emailPath()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
