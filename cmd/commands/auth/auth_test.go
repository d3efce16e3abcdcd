package auth

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/registrar/internal/config"
	"nathanbeddoewebdev/registrar/internal/platform/providers"
	"nathanbeddoewebdev/registrar/internal/services/auth"
	"nathanbeddoewebdev/registrar/internal/tui"

	"github.com/google/go-cmp/cmp"
)

func TestReadCredentials_PromptsForMissing(t *testing.T) {
	spec := *providers.Lookup("namecom")
	in := strings.NewReader("alice\n  tok-123  \n")
	var out strings.Builder

	got, err := readCredentials(in, &out, spec, map[string]string{
		"namecom-username": "",
		"namecom-token":    "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"namecom-username": "alice", "namecom-token": "tok-123"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("credentials mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "Enter Name.com Username: ") {
		t.Errorf("expected username prompt, got %q", out.String())
	}
}

func TestReadCredentials_KeepsFlagValues(t *testing.T) {
	spec := *providers.Lookup("porkbun")
	var out strings.Builder

	got, err := readCredentials(strings.NewReader("sk1_def"), &out, spec, map[string]string{
		"porkbun-apikey":       "pk1_abc",
		"porkbun-secretapikey": "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["porkbun-apikey"] != "pk1_abc" || got["porkbun-secretapikey"] != "sk1_def" {
		t.Errorf("unexpected values: %v", got)
	}
	if n := strings.Count(out.String(), "Enter "); n != 1 {
		t.Errorf("expected a single prompt, got %d: %q", n, out.String())
	}
}

func TestReadCredentials_EmptyInput(t *testing.T) {
	spec := *providers.Lookup("porkbun")
	var out strings.Builder

	_, err := readCredentials(strings.NewReader("\n"), &out, spec, map[string]string{})
	if err == nil || !strings.Contains(err.Error(), "cannot be empty") {
		t.Fatalf("expected empty value error, got %v", err)
	}
}

func TestKeyStatus(t *testing.T) {
	store := auth.NewMockStore()
	store.SetToken("porkbun-apikey", "pk")

	if got := keyStatus(store, "porkbun"); got != "not authenticated" {
		t.Errorf("partial credentials: status = %q", got)
	}

	store.SetToken("porkbun-secretapikey", "sk")
	if got := keyStatus(store, "porkbun"); got != "authenticated" {
		t.Errorf("full credentials: status = %q", got)
	}

	got := collectStatuses(store, []string{"namecom", "porkbun"})
	want := []tui.ProviderStatus{
		{Name: "namecom", Status: "not authenticated"},
		{Name: "porkbun", Status: "authenticated"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

type brokenStore struct{ *auth.MockStore }

func (brokenStore) GetToken(string) (string, error) { return "", errors.New("keychain locked") }

func TestKeyStatus_StoreError(t *testing.T) {
	got := keyStatus(brokenStore{auth.NewMockStore()}, "namecom")
	if !strings.Contains(got, "keychain locked") {
		t.Errorf("status = %q, want store error", got)
	}
}

func TestImportAccounts(t *testing.T) {
	store := auth.NewMockStore()
	acc := &config.Accounts{
		Porkbun: config.PorkbunAccount{Credentials: config.PorkbunCredentials{APIKey: "pk", SecretAPIKey: "sk"}},
		NameCom: config.NameComAccount{Credentials: config.NameComCredentials{Username: "alice"}},
	}

	n, err := importAccounts(store, acc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("imported %d registrars, want 1", n)
	}
	if v, _ := store.GetToken("porkbun-secretapikey"); v != "sk" {
		t.Errorf("porkbun-secretapikey = %q", v)
	}
	if _, err := store.GetToken("namecom-username"); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Errorf("incomplete Name.com credentials should not be stored, got %v", err)
	}
}
