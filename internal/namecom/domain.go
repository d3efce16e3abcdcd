package namecom

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/transport"
)

// DomainsClient exposes account-level domain operations.
type DomainsClient struct {
	t *transport.Client
}

// List returns every domain in the account.
func (c *DomainsClient) List(ctx context.Context) ([]Domain, error) {
	domains, err := collect(ctx, func(ctx context.Context, page int) ([]Domain, int, error) {
		var out struct {
			Domains  []Domain `json:"domains"`
			NextPage int      `json:"nextPage"`
		}
		if err := c.t.Do(ctx, buildListDomains(page), &out); err != nil {
			return nil, 0, err
		}
		return out.Domains, out.NextPage, nil
	})
	if err != nil {
		return nil, fmt.Errorf("namecom: list domains: %w", err)
	}
	return domains, nil
}

// CheckAvailability reports whether each name can be registered.
func (c *DomainsClient) CheckAvailability(ctx context.Context, names ...string) ([]AvailabilityResult, error) {
	r, err := buildCheckAvailability(names)
	if err != nil {
		return nil, err
	}
	var out struct {
		Results []AvailabilityResult `json:"results"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: check availability: %w", err)
	}
	return out.Results, nil
}

// Create registers a domain and charges the account.
func (c *DomainsClient) Create(ctx context.Context, req CreateDomainRequest) (*CreateDomainResponse, error) {
	r, err := buildCreateDomain(req)
	if err != nil {
		return nil, err
	}
	var out CreateDomainResponse
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: create domain %s: %w", req.DomainName, err)
	}
	return &out, nil
}

// DomainClient manages one registered domain.
type DomainClient struct {
	t      *transport.Client
	domain string
}

// Domain returns the domain this client is bound to.
func (c *DomainClient) Domain() string { return c.domain }

// Get returns the domain's registration details.
func (c *DomainClient) Get(ctx context.Context) (*Domain, error) {
	r, err := buildGetDomain(c.domain)
	if err != nil {
		return nil, err
	}
	var out Domain
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: get domain %s: %w", c.domain, err)
	}
	return &out, nil
}

// Update changes autorenew, lock or privacy settings and returns the result.
func (c *DomainClient) Update(ctx context.Context, req UpdateDomainRequest) (*Domain, error) {
	r, err := buildUpdateDomain(c.domain, req)
	if err != nil {
		return nil, err
	}
	var out Domain
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: update domain %s: %w", c.domain, err)
	}
	return &out, nil
}

// AuthCode returns the transfer authorization code.
func (c *DomainClient) AuthCode(ctx context.Context) (string, error) {
	r, err := buildGetAuthCode(c.domain)
	if err != nil {
		return "", err
	}
	var out struct {
		AuthCode string `json:"authCode"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return "", fmt.Errorf("namecom: get auth code for %s: %w", c.domain, err)
	}
	return out.AuthCode, nil
}

// Nameservers returns the nameservers currently set for the domain.
func (c *DomainClient) Nameservers(ctx context.Context) ([]string, error) {
	d, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	return d.Nameservers, nil
}

// SetNameservers replaces the domain's nameservers.
func (c *DomainClient) SetNameservers(ctx context.Context, ns []string) (*Domain, error) {
	r, err := buildSetNameservers(c.domain, ns)
	if err != nil {
		return nil, err
	}
	var out Domain
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: set nameservers for %s: %w", c.domain, err)
	}
	return &out, nil
}
