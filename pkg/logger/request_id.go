package logger

import (
	"context"

	"github.com/google/uuid"
)

// HeaderRequestID - HTTP-заголовок, через который передается идентификатор запроса.
const HeaderRequestID = "X-Request-ID"

// MaxRequestIDLength - максимальная длина идентификатора, принятого от клиента.
const MaxRequestIDLength = 64

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// NewRequestIDContext сохраняет идентификатор запроса в контексте.
// Пустой requestID заменяется сгенерированным.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID возвращает идентификатор запроса, если он есть.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GenerateRequestID генерирует новый UUID v4.
func GenerateRequestID() string {
	return uuid.NewString()
}

// IsValidRequestID сообщает, можно ли принять идентификатор от клиента:
// непустой, не длиннее MaxRequestIDLength, только латиница, цифры и "-_.:".
func IsValidRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
