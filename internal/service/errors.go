package service

import "errors"

// Ошибки бизнес-уровня. Хендлеры переводят их в HTTP-статусы,
// всё остальное считается отказом хранилища и даёт 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEntryNotFound      = errors.New("vault entry not found")
	ErrEmptyField         = errors.New("empty field")
)
