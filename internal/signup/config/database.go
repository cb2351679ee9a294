package config

import (
	"fmt"
	"net/url"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `yaml:"host" env:"SIGNUP_POSTGRES_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"SIGNUP_POSTGRES_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"SIGNUP_POSTGRES_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"SIGNUP_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `yaml:"database" env:"SIGNUP_POSTGRES_DB" env-default:"signup"`
	MinConn       int    `yaml:"min_conn" env:"SIGNUP_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int    `yaml:"max_conn" env:"SIGNUP_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `yaml:"migrations_dir" env:"SIGNUP_POSTGRES_MIGRATIONS_DIR" env-default:"migrations/signup"`
}

// GetDSN возвращает строку подключения для pgx.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL для golang-migrate.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
