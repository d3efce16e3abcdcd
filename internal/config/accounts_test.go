package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoadAccounts_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	writeFile(t, path, `
porkbun:
  domain: example.com
  credentials:
    apikey: pk1_abc
    secretapikey: sk1_def
name_com:
  domain: example.org
  credentials:
    username: alice-test
    token: tok
`)

	got, err := LoadAccounts(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Accounts{
		Porkbun: PorkbunAccount{Domain: "example.com", Credentials: PorkbunCredentials{APIKey: "pk1_abc", SecretAPIKey: "sk1_def"}},
		NameCom: NameComAccount{Domain: "example.org", Credentials: NameComCredentials{Username: "alice-test", Token: "tok"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("accounts mismatch (-want +got):\n%s", diff)
	}
	if !got.Porkbun.Credentials.Complete() || !got.NameCom.Credentials.Complete() {
		t.Error("expected both credential sets to be complete")
	}
}

func TestLoadAccounts_LocalOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yaml")
	local := filepath.Join(dir, "local.yaml")
	writeFile(t, def, `
porkbun:
  domain: example.com
name_com:
  domain: example.org
`)
	writeFile(t, local, `
porkbun:
  credentials:
    apikey: real-key
    secretapikey: real-secret
`)

	got, err := LoadAccounts(def, local, filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Porkbun.Domain != "example.com" {
		t.Errorf("Porkbun.Domain = %q, want value from default file", got.Porkbun.Domain)
	}
	if got.Porkbun.Credentials.APIKey != "real-key" {
		t.Errorf("Porkbun APIKey = %q, want value from local file", got.Porkbun.Credentials.APIKey)
	}
	if got.NameCom.Credentials.Complete() {
		t.Error("Name.com credentials should be incomplete")
	}
}

func TestLoadAccounts_NoFiles(t *testing.T) {
	_, err := LoadAccounts(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadAccounts_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "porkbun: [unclosed")

	if _, err := LoadAccounts(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
