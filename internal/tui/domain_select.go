package tui

import (
	"context"
	"fmt"
	"os"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"

	"github.com/charmbracelet/huh"
)

// DomainLister is the slice of the registrar service the domain picker needs.
type DomainLister interface {
	ListDomains(ctx context.Context) ([]domain.Domain, error)
}

// SelectDomain lets the user pick one of the account's domains.
func SelectDomain(ctx context.Context, svc DomainLister) (string, error) {
	var domains []domain.Domain
	err := Spin(os.Stderr, "Fetching domains...", func(context.Context) error {
		var err error
		domains, err = svc.ListDomains(ctx)
		return err
	})
	if err != nil {
		return "", err
	}
	if len(domains) == 0 {
		return "", fmt.Errorf("no domains found")
	}

	opts := make([]huh.Option[string], 0, len(domains))
	for _, d := range domains {
		opts = append(opts, huh.NewOption(domainOptionLabel(d), d.Name))
	}

	var selected string
	err = runForm(Accessible(), huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select domain").
			Options(opts...).
			Value(&selected).
			Height(min(max(len(opts), 5), 12)),
	))
	if err != nil {
		return "", err
	}
	return selected, nil
}

func domainOptionLabel(d domain.Domain) string {
	label := d.Name
	if d.Status != "" {
		label += " - " + d.Status
	}
	if d.ExpireDate != "" {
		label += " - expires " + d.ExpireDate
	}
	return label
}
