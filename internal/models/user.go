package models

import "time"

// User представляет пользователя в системе
type User struct {
	LastLogin   *time.Time `json:"last_login,omitempty"` // время последнего входа
	CreatedAt   time.Time  `json:"created_at"`           // время создания
	UpdatedAt   time.Time  `json:"updated_at"`           // время последнего обновления
	ID          string     `json:"id"`                   // UUID пользователя
	Username    string     `json:"username"`             // уникальный username
	AuthKeyHash string     `json:"auth_key_hash"`        // SHA256 хеш auth_key
	PublicSalt  string     `json:"public_salt"`          // base64 encoded salt (32 bytes)
}
