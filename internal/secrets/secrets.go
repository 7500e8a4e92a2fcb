package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
)

// keyLen — длина ключа для AES-256 (в байтах).
const keyLen = 32

// ParseKey приводит строку конфигурации к 32-байтовому ключу.
// 64 hex-символа трактуются как готовый ключ, любая другая строка
// превращается в ключ через SHA-256.
func ParseKey(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty vault key")
	}
	if len(s) == keyLen*2 {
		if b, err := hex.DecodeString(s); err == nil {
			return b, nil
		}
	}
	sum := sha256.Sum256([]byte(s))
	return sum[:], nil
}

// Seal шифрует секрет с помощью AES-GCM и заданного ключа.
// Возвращает шифртекст и nonce.
func Seal(plain []byte, key []byte) ([]byte, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}
	out := gcm.Seal(nil, nonce, plain, nil)
	return out, nonce, nil
}

// Open расшифровывает шифртекст с использованием AES-GCM, ключа и nonce.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, errors.New("invalid nonce size")
	}
	return gcm.Open(nil, nonce, ciphertext, nil)
}
