package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"

	"golang.org/x/sync/errgroup"
)

// ListAllDomains lists the domains of every provider concurrently and
// returns them sorted by name. Each domain carries the display name of the
// provider that holds it. The first provider failure cancels the rest.
func ListAllDomains(ctx context.Context, providers ...domain.Provider) ([]domain.Domain, error) {
	results := make([][]domain.Domain, len(providers))
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range providers {
		g.Go(func() error {
			domains, err := p.ListDomains(gctx)
			if err != nil {
				return fmt.Errorf("failed to list %s domains: %w", p.GetDisplayName(), err)
			}
			for j := range domains {
				if domains[j].Provider == "" {
					domains[j].Provider = p.GetDisplayName()
				}
			}
			results[i] = domains
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := slices.Concat(results...)
	slices.SortStableFunc(all, func(a, b domain.Domain) int {
		return strings.Compare(a.Name, b.Name)
	})
	return all, nil
}
