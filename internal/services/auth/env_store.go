package auth

import (
	"errors"
	"os"
	"strings"
)

// EnvPrefix is prepended to credential keys to form environment variable names.
const EnvPrefix = "REGISTRAR_"

var errReadOnly = errors.New("environment credentials are read-only")

// EnvStore reads credentials from environment variables. The key
// "porkbun-apikey" maps to REGISTRAR_PORKBUN_APIKEY.
type EnvStore struct {
	prefix string
	lookup func(string) (string, bool)
}

func NewEnvStore(prefix string) *EnvStore {
	return &EnvStore{prefix: prefix, lookup: os.LookupEnv}
}

// EnvVar returns the variable name consulted for key.
func (e *EnvStore) EnvVar(key string) string {
	name := strings.ToUpper(NormalizeProvider(key))
	return e.prefix + strings.NewReplacer("-", "_", ".", "_").Replace(name)
}

func (e *EnvStore) GetToken(provider string) (string, error) {
	v, ok := e.lookup(e.EnvVar(provider))
	if !ok || strings.TrimSpace(v) == "" {
		return "", ErrTokenNotFound
	}
	return strings.TrimSpace(v), nil
}

func (e *EnvStore) SetToken(string, string) error { return errReadOnly }

func (e *EnvStore) DeleteToken(string) error { return errReadOnly }
