package config

// SecurityConfig содержит настройки хэширования паролей.
type SecurityConfig struct {
	BCryptCost int `yaml:"bcrypt_cost" env:"SIGNUP_BCRYPT_COST" env-default:"10"`
}
