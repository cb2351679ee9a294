package redis

import (
	"net"
	"strconv"
	"time"
)

// Значения по умолчанию совпадают с env-default в конфигурации сервиса.
const (
	DefaultHost        = "redis"
	DefaultPort        = 6379
	DefaultDB          = 0
	DefaultPoolSize    = 10
	DefaultTimeout     = 5 * time.Second
	DefaultDialTimeout = 5 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	Timeout     time.Duration
	DialTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию Redis по умолчанию.
func DefaultConfig() *Config {
	return &Config{
		Host:        DefaultHost,
		Port:        DefaultPort,
		DB:          DefaultDB,
		PoolSize:    DefaultPoolSize,
		Timeout:     DefaultTimeout,
		DialTimeout: DefaultDialTimeout,
	}
}

// Addr возвращает адрес в формате host:port.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
