package tui

import (
	"errors"
	"strings"

	"nathanbeddoewebdev/registrar/internal/platform/providers"

	"github.com/charmbracelet/huh"
)

// CredentialForm prompts for every credential in spec and returns the
// entered values keyed by keychain key. Secret fields are masked.
func CredentialForm(spec providers.CredentialSpec) (map[string]string, error) {
	values := make([]string, len(spec.Keys))
	fields := make([]huh.Field, 0, len(spec.Keys))

	for i, k := range spec.Keys {
		input := huh.NewInput().
			Title(spec.DisplayName + " " + k.Prompt).
			Value(&values[i]).
			Validate(notBlank(k.Prompt))
		if k.Secret {
			input = input.EchoMode(huh.EchoModePassword)
		}
		fields = append(fields, input)
	}

	if err := runForm(Accessible(), huh.NewGroup(fields...)); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(spec.Keys))
	for i, k := range spec.Keys {
		out[spec.KeychainKey(k)] = strings.TrimSpace(values[i])
	}
	return out, nil
}

func notBlank(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(strings.ToLower(label) + " cannot be empty")
		}
		return nil
	}
}
