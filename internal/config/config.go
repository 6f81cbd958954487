// Package config loads client and server settings from a YAML file,
// CLINICSYNC_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/clinicsync/internal/conflict"
)

const (
	// EnvPrefix префикс переменных окружения: CLINICSYNC_SERVER, CLINICSYNC_SYNC_INTERVAL
	EnvPrefix = "CLINICSYNC"
	// FileName имя файла конфигурации в домашнем каталоге
	FileName = ".clinicsync.yaml"
)

// Log описывает настройки журналирования
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // text или json
	File       string `mapstructure:"file"`   // пусто = stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Sync описывает настройки синхронизации клиента
type Sync struct {
	Policy   string        `mapstructure:"policy"`
	Interval time.Duration `mapstructure:"interval"`
	// Metered соединение пригодно только для ручной синхронизации
	Metered bool `mapstructure:"metered"`
}

// HTTP описывает настройки HTTP клиента
type HTTP struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Client is the configuration of the clinicsync CLI
type Client struct {
	Log    Log    `mapstructure:"log"`
	Server string `mapstructure:"server"`
	DB     string `mapstructure:"db"`
	Sync   Sync   `mapstructure:"sync"`
	HTTP   HTTP   `mapstructure:"http"`
}

// JWT описывает настройки токенов сервера
type JWT struct {
	Secret    string        `mapstructure:"secret"`
	AccessTTL time.Duration `mapstructure:"access_ttl"`
}

// RateLimit описывает ограничение запросов на IP
type RateLimit struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Server is the configuration of the reference server
type Server struct {
	Log       Log       `mapstructure:"log"`
	JWT       JWT       `mapstructure:"jwt"`
	Addr      string    `mapstructure:"addr"`
	DB        string    `mapstructure:"db"`
	RateLimit RateLimit `mapstructure:"ratelimit"`
}

// DefaultLog returns logging defaults
func DefaultLog() Log {
	return Log{
		Level:      "info",
		Format:     "text",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// DefaultClient returns client defaults
func DefaultClient() Client {
	return Client{
		Log:    DefaultLog(),
		Server: "http://localhost:8080",
		DB:     "clinicsync-client.db",
		Sync: Sync{
			Policy:   conflict.PolicyMostRecentWins,
			Interval: 5 * time.Minute,
		},
		HTTP: HTTP{Timeout: 30 * time.Second},
	}
}

// DefaultServer returns server defaults
func DefaultServer() Server {
	return Server{
		Log:  DefaultLog(),
		Addr: ":8080",
		DB:   "clinicsync-server.db",
		JWT: JWT{
			AccessTTL: 15 * time.Minute,
		},
		RateLimit: RateLimit{
			Requests: 100,
			Window:   time.Minute,
		},
	}
}

// LoadClient reads client configuration. configFile may be empty, then
// ~/.clinicsync.yaml is used when it exists.
func LoadClient(v *viper.Viper, configFile string) (*Client, error) {
	d := DefaultClient()
	setLogDefaults(v, d.Log)
	v.SetDefault("server", d.Server)
	v.SetDefault("db", d.DB)
	v.SetDefault("sync.policy", d.Sync.Policy)
	v.SetDefault("sync.interval", d.Sync.Interval)
	v.SetDefault("sync.metered", d.Sync.Metered)
	v.SetDefault("http.timeout", d.HTTP.Timeout)

	if err := read(v, configFile); err != nil {
		return nil, err
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks client settings
func (c *Client) Validate() error {
	if c.Server == "" {
		return errors.New("server url cannot be empty")
	}
	if c.DB == "" {
		return errors.New("db path cannot be empty")
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("sync.interval must be positive, got %s", c.Sync.Interval)
	}
	if _, err := conflict.ByName(c.Sync.Policy); err != nil {
		return err
	}
	return validateLog(c.Log)
}

// LoadServer reads server configuration
func LoadServer(v *viper.Viper, configFile string) (*Server, error) {
	d := DefaultServer()
	setLogDefaults(v, d.Log)
	v.SetDefault("addr", d.Addr)
	v.SetDefault("db", d.DB)
	v.SetDefault("jwt.secret", d.JWT.Secret)
	v.SetDefault("jwt.access_ttl", d.JWT.AccessTTL)
	v.SetDefault("ratelimit.requests", d.RateLimit.Requests)
	v.SetDefault("ratelimit.window", d.RateLimit.Window)

	if err := read(v, configFile); err != nil {
		return nil, err
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MinSecretLen минимальная длина секрета для подписи JWT
const MinSecretLen = 32

// Validate checks server settings
func (s *Server) Validate() error {
	if s.Addr == "" {
		return errors.New("addr cannot be empty")
	}
	if len(s.JWT.Secret) < MinSecretLen {
		return fmt.Errorf("jwt.secret must be at least %d bytes (set %s_JWT_SECRET)", MinSecretLen, EnvPrefix)
	}
	if s.JWT.AccessTTL <= 0 {
		return errors.New("jwt.access_ttl must be positive")
	}
	if s.RateLimit.Requests <= 0 || s.RateLimit.Window <= 0 {
		return errors.New("ratelimit.requests and ratelimit.window must be positive")
	}
	return validateLog(s.Log)
}

func setLogDefaults(v *viper.Viper, d Log) {
	v.SetDefault("log.level", d.Level)
	v.SetDefault("log.format", d.Format)
	v.SetDefault("log.file", d.File)
	v.SetDefault("log.max_size_mb", d.MaxSizeMB)
	v.SetDefault("log.max_backups", d.MaxBackups)
	v.SetDefault("log.max_age_days", d.MaxAgeDays)
}

func validateLog(l Log) error {
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q, use text or json", l.Format)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", l.Level)
	}
	return nil
}

// read подключает окружение и файл конфигурации
func read(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// без домашнего каталога остаются env и флаги
		return nil
	}
	v.SetConfigFile(filepath.Join(home, FileName))
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}
