package config

import (
	"strconv"
	"time"

	pkgredis "gosignup/pkg/db/redis"
)

// RedisConfig представляет конфигурацию Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"SIGNUP_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"SIGNUP_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"SIGNUP_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"SIGNUP_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"SIGNUP_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	Timeout        time.Duration `yaml:"timeout" env:"SIGNUP_REDIS_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"SIGNUP_REDIS_POOL_SIZE" env-default:"10"`
	AccountTTL     time.Duration `yaml:"account_ttl" env:"SIGNUP_REDIS_ACCOUNT_TTL" env-default:"15m"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ClientConfig переводит настройки в конфигурацию общего клиента Redis.
func (c *RedisConfig) ClientConfig() *pkgredis.Config {
	return &pkgredis.Config{
		Host:        c.Host,
		Port:        c.Port,
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
		Timeout:     c.Timeout,
		DialTimeout: c.ConnectTimeout,
	}
}
