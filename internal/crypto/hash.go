package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// HashAuthKey хеширует auth_key с использованием SHA256 (hex-encoded)
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	hash := sha256.Sum256(authKey)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyAuthKeyHash сравнивает присланный хеш с сохраненным за постоянное время
func VerifyAuthKeyHash(presented, stored string) error {
	if presented == "" || stored == "" {
		return fmt.Errorf("auth key hash cannot be empty")
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) != 1 {
		return fmt.Errorf("invalid auth key")
	}
	return nil
}
