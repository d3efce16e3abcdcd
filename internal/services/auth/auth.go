package auth

import (
	"errors"

	"nathanbeddoewebdev/registrar/internal/util"
)

const ServiceName = "registrar"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

// DefaultStore returns the standard auth store: REGISTRAR_* environment
// variables first, then the OS keychain.
func DefaultStore() Store {
	return NewChain(NewEnvStore(EnvPrefix), NewKeyringStore(ServiceName))
}

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}
