package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateSaltBase64 генерирует соль и возвращает ее в Base64
func GenerateSaltBase64() (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveAuthKey derives the key a user proves their password with. The
// password itself never leaves the client.
func DeriveAuthKey(password, username string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	input := []byte(password + username + "auth")
	return argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen), nil
}

// DeriveAuthKeyFromBase64Salt генерирует auth key из Base64-кодированной соли
func DeriveAuthKeyFromBase64Salt(password, username, saltBase64 string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	return DeriveAuthKey(password, username, salt)
}
