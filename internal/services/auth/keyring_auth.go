package auth

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

var errEmptyToken = errors.New("credential value cannot be empty")

// KeyringStore keeps credentials in the OS keychain (macOS Keychain,
// Secret Service on Linux, Windows Credential Manager) under one service name.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(provider string, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errEmptyToken
	}
	return keyring.Set(k.serviceName, NormalizeProvider(provider), token)
}

// GetToken returns ErrTokenNotFound both for missing entries and for
// entries that hold only whitespace.
func (k *KeyringStore) GetToken(provider string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeProvider(provider))
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	case err != nil:
		return "", err
	case strings.TrimSpace(token) == "":
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (k *KeyringStore) DeleteToken(provider string) error {
	err := keyring.Delete(k.serviceName, NormalizeProvider(provider))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
