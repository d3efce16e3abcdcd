package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// AccountsEnvVar names the environment variable holding the accounts file
// used by live tests.
const AccountsEnvVar = "REGISTRAR_ACCOUNTS"

// Accounts is the YAML accounts file: one test domain and one set of
// credentials per registrar.
//
//	porkbun:
//	  domain: example.com
//	  credentials:
//	    apikey: pk1_...
//	    secretapikey: sk1_...
//	name_com:
//	  domain: example.org
//	  credentials:
//	    username: alice-test
//	    token: ...
type Accounts struct {
	Porkbun PorkbunAccount `yaml:"porkbun"`
	NameCom NameComAccount `yaml:"name_com"`
}

type PorkbunAccount struct {
	Domain      string             `yaml:"domain"`
	Credentials PorkbunCredentials `yaml:"credentials"`
}

type PorkbunCredentials struct {
	APIKey       string `yaml:"apikey"`
	SecretAPIKey string `yaml:"secretapikey"`
}

// Complete reports whether both keys are present.
func (c PorkbunCredentials) Complete() bool {
	return c.APIKey != "" && c.SecretAPIKey != ""
}

type NameComAccount struct {
	Domain      string             `yaml:"domain"`
	Credentials NameComCredentials `yaml:"credentials"`
}

type NameComCredentials struct {
	Username string `yaml:"username"`
	Token    string `yaml:"token"`
}

// Complete reports whether both username and token are present.
func (c NameComCredentials) Complete() bool {
	return c.Username != "" && c.Token != ""
}

// LoadAccounts reads the given YAML files in order. Later files override
// the fields they set, so a git-ignored local file can sit on top of a
// checked-in default. Missing files are skipped; at least one must exist.
func LoadAccounts(paths ...string) (*Accounts, error) {
	var (
		acc   Accounts
		found bool
	)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		// Unmarshal onto the accumulated value so absent keys keep
		// whatever an earlier file set.
		if err := yaml.Unmarshal(data, &acc); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		found = true
	}
	if !found {
		return nil, fmt.Errorf("config: no accounts file found in %v: %w", paths, fs.ErrNotExist)
	}
	return &acc, nil
}
