package passgen

import (
	"crypto/rand"
	"errors"
)

// Alphabet — 94 символа: латиница в обоих регистрах, цифры и фиксированный
// набор пунктуации.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()_+-=[]{}|;:,.<>?"

// DefaultLength — длина пароля по умолчанию.
const DefaultLength = 16

// Generate возвращает случайную строку указанной длины из Alphabet.
// Каждый символ выбирается независимо и равномерно; чтобы не перекашивать
// распределение, байты вне кратного len(Alphabet) диапазона отбрасываются.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("password length must be positive")
	}

	// наибольшее значение байта, при котором остаток от деления равномерен
	limit := byte(256 - 256%len(Alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// Default генерирует пароль длины DefaultLength.
func Default() (string, error) {
	return Generate(DefaultLength)
}
