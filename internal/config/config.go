package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Mail         MailConfig         `toml:"mail"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Static       StaticConfig       `toml:"static"`
	Reservations ReservationsConfig `toml:"reservations"`
	CORS         CORSConfig         `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`    // секунды, с запасом на отправку двух писем
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"` // секунды
}

// DatabaseConfig подключение к PostgreSQL.
// Если задан URL, остальные параметры подключения игнорируются.
type DatabaseConfig struct {
	URL             string `toml:"url"`
	Host            string `toml:"host" validate:"required_without=URL"`
	Port            int    `toml:"port" validate:"omitempty,min=1,max=65535"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required_without=URL"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MailConfig SMTP-сервер и адреса писем
type MailConfig struct {
	Host     string `toml:"host" validate:"required"`
	Port     int    `toml:"port" validate:"min=1,max=65535"`
	Secure   bool   `toml:"secure"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from" validate:"required"`
	To       string `toml:"to" validate:"required,email"` // Адрес отеля для уведомлений
	LogoPath string `toml:"logo_path"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

// StaticConfig каталог сайта отеля
type StaticConfig struct {
	Dir string `toml:"dir" validate:"required"`
}

type ReservationsConfig struct {
	TimeZone string `toml:"timezone" validate:"required"`
	// SerializableCheck выполнять проверку занятости и запись в транзакции SERIALIZABLE
	SerializableCheck bool `toml:"serializable_check"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

var validate = validator.New()

// Default значения, используемые при отсутствии config.toml
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        10000,
			ReadTimeout:     15,
			WriteTimeout:    60,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "bucaros",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Mail: MailConfig{
			Port: 587,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "reservation-service",
			Path:        "/metrics",
		},
		Static: StaticConfig{
			Dir: "./public",
		},
		Reservations: ReservationsConfig{
			TimeZone: "America/Bogota",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load читает .env (если есть), затем path (если есть) и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv переопределяет значения из окружения.
// Имена MAIL_* совпадают с переменными, которые использует сайт.
func applyEnv(cfg *Config) error {
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.Mail.Host, "MAIL_HOST")
	setString(&cfg.Mail.User, "MAIL_USER")
	setString(&cfg.Mail.Password, "MAIL_PASS")
	setString(&cfg.Mail.From, "MAIL_FROM")
	setString(&cfg.Mail.To, "MAIL_TO")
	setString(&cfg.Mail.LogoPath, "MAIL_LOGO_PATH")

	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setString(&cfg.Static.Dir, "STATIC_DIR")
	setString(&cfg.Reservations.TimeZone, "HOTEL_TIMEZONE")

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok {
		cfg.CORS.AllowedOrigins = splitList(v)
	}

	if err := setInt(&cfg.Server.HTTPPort, "PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Mail.Port, "MAIL_PORT"); err != nil {
		return err
	}
	if err := setBool(&cfg.Mail.Secure, "MAIL_SECURE"); err != nil {
		return err
	}
	if err := setBool(&cfg.Reservations.SerializableCheck, "RESERVATIONS_SERIALIZABLE_CHECK"); err != nil {
		return err
	}

	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("env %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("env %s: %w", key, err)
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
