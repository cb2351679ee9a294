package app

import (
	"encoding/json"
	"fmt"

	"gosignup/internal/signup/domain/entities"
)

const accountKeyPrefix = "signup:account:"

// AccountCacheKey возвращает ключ кэша для учетной записи.
func AccountCacheKey(id string) string {
	return accountKeyPrefix + id
}

func encodeAccount(account *entities.Account) (string, error) {
	raw, err := json.Marshal(account)
	if err != nil {
		return "", fmt.Errorf("encode account: %w", err)
	}
	return string(raw), nil
}

func decodeAccount(raw string) (*entities.Account, error) {
	var account entities.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &account, nil
}
