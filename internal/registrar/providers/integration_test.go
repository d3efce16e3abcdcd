//go:build integration

package providers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nathanbeddoewebdev/registrar/internal/apierr"
	"nathanbeddoewebdev/registrar/internal/config"
	"nathanbeddoewebdev/registrar/internal/namecom"
	"nathanbeddoewebdev/registrar/internal/registrar/domain"
	"nathanbeddoewebdev/registrar/internal/registrar/services"
)

// Live tests run against real accounts:
//
//	go test -tags integration ./internal/registrar/providers/...
//
// Accounts come from $REGISTRAR_ACCOUNTS, or testdata/accounts.default.yaml
// overlaid with testdata/accounts.local.yaml.

func loadAccounts(t *testing.T) *config.Accounts {
	t.Helper()
	paths := []string{
		filepath.Join("testdata", "accounts.default.yaml"),
		filepath.Join("testdata", "accounts.local.yaml"),
	}
	if p := os.Getenv(config.AccountsEnvVar); p != "" {
		paths = []string{p}
	}
	acc, err := config.LoadAccounts(paths...)
	if err != nil {
		t.Fatalf("failed to load accounts: %v", err)
	}
	return acc
}

func livePorkbun(t *testing.T) (*services.Service, string) {
	t.Helper()
	acc := loadAccounts(t)
	if !acc.Porkbun.Credentials.Complete() {
		t.Skip("no Porkbun credentials configured")
	}
	p := NewPorkbunProvider(acc.Porkbun.Credentials.APIKey, acc.Porkbun.Credentials.SecretAPIKey)
	return services.New(p), acc.Porkbun.Domain
}

func liveNameCom(t *testing.T) (*services.Service, string) {
	t.Helper()
	acc := loadAccounts(t)
	if !acc.NameCom.Credentials.Complete() {
		t.Skip("no Name.com credentials configured")
	}
	p := NewNameComProvider(namecom.DevelopmentHost, acc.NameCom.Credentials.Username, acc.NameCom.Credentials.Token)
	return services.New(p), acc.NameCom.Domain
}

func liveContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)
	return ctx
}

// recordLifecycle creates a TXT record, reads it back, updates and deletes it.
func recordLifecycle(t *testing.T, svc *services.Service, domainName string) {
	t.Helper()
	ctx := liveContext(t)
	name := fmt.Sprintf("registrar-test-%d", time.Now().UnixNano())

	rec, err := svc.CreateRecord(ctx, domainName, domain.CreateRecordOpts{
		Name:    name,
		Type:    domain.RecordTypeTXT,
		Content: "created",
	})
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	t.Cleanup(func() { _ = svc.DeleteRecord(context.Background(), domainName, rec.ID) })

	got, err := svc.GetRecord(ctx, domainName, rec.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got.Content != "created" {
		t.Errorf("content = %q, want %q", got.Content, "created")
	}

	err = svc.UpdateRecord(ctx, domainName, rec.ID, domain.UpdateRecordOpts{
		Name:    name,
		Type:    domain.RecordTypeTXT,
		Content: "updated",
	})
	if err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}

	if err := svc.DeleteRecord(ctx, domainName, rec.ID); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if _, err := svc.GetRecord(ctx, domainName, rec.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetRecord after delete: expected ErrNotFound, got %v", err)
	}
}

func TestLive_Porkbun(t *testing.T) {
	svc, domainName := livePorkbun(t)
	ctx := liveContext(t)

	if _, err := svc.Verify(ctx); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	domains, err := svc.ListDomains(ctx)
	if err != nil {
		t.Fatalf("ListDomains: %v", err)
	}
	t.Logf("porkbun: %d domains", len(domains))

	recordLifecycle(t, svc, domainName)
}

func TestLive_NameCom(t *testing.T) {
	svc, domainName := liveNameCom(t)
	ctx := liveContext(t)

	if _, err := svc.Verify(ctx); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	domains, err := svc.ListDomains(ctx)
	if err != nil {
		t.Fatalf("ListDomains: %v", err)
	}
	t.Logf("name.com: %d domains", len(domains))

	recordLifecycle(t, svc, domainName)
}

func TestLive_BadCredentials(t *testing.T) {
	ctx := liveContext(t)

	_, err := NewPorkbunProvider("pk1_invalid", "sk1_invalid").ListDomains(ctx)
	if apierr.KindOf(err) != apierr.KindAPI {
		t.Errorf("porkbun: expected an API error for invalid credentials, got %v", err)
	}

	_, err = NewNameComProvider(namecom.DevelopmentHost, "nobody", "invalid").ListDomains(ctx)
	if apierr.KindOf(err) != apierr.KindAPI {
		t.Errorf("name.com: expected an API error for invalid credentials, got %v", err)
	}
}
