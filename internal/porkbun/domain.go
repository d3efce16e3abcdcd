package porkbun

import (
	"context"
	"fmt"
	"net/netip"

	"nathanbeddoewebdev/registrar/internal/paginate"
	"nathanbeddoewebdev/registrar/internal/transport"
)

// listAllPageSize is the number of domains Porkbun returns per listAll call.
const listAllPageSize = 1000

// DomainsClient exposes account-level domain operations.
type DomainsClient struct {
	t *transport.Client
}

// ListOptions controls domain listing.
type ListOptions struct {
	IncludeLabels bool
}

// List returns every domain in the account, following listAll's offset
// pagination until a short or empty page.
func (c *DomainsClient) List(ctx context.Context, opts ListOptions) ([]DomainInfo, error) {
	fetch := paginate.Offset(func(ctx context.Context, start int) ([]DomainInfo, error) {
		var out struct {
			Domains []DomainInfo `json:"domains"`
		}
		if err := c.t.Do(ctx, buildListAll(start, opts.IncludeLabels), &out); err != nil {
			return nil, err
		}
		return out.Domains, nil
	})

	domains, err := paginate.CollectAll(ctx, 0, listAllPageSize, fetch)
	if err != nil {
		return nil, fmt.Errorf("porkbun: list domains: %w", err)
	}
	return domains, nil
}

// DomainClient manages registrar settings of one domain.
type DomainClient struct {
	t      *transport.Client
	domain string
}

// Domain returns the domain this client is bound to.
func (c *DomainClient) Domain() string { return c.domain }

// Check reports whether the domain is available to register, along with
// pricing and the remaining check quota.
func (c *DomainClient) Check(ctx context.Context) (*CheckResponse, error) {
	r, err := buildCheckDomain(c.domain)
	if err != nil {
		return nil, err
	}
	var out CheckResponse
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: check %s: %w", c.domain, err)
	}
	return &out, nil
}

// Nameservers returns the authoritative nameservers set at the registry.
func (c *DomainClient) Nameservers(ctx context.Context) ([]string, error) {
	r, err := buildGetNameservers(c.domain)
	if err != nil {
		return nil, err
	}
	var out struct {
		NS []string `json:"ns"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: get nameservers for %s: %w", c.domain, err)
	}
	return out.NS, nil
}

// SetNameservers replaces the authoritative nameservers.
func (c *DomainClient) SetNameservers(ctx context.Context, ns []string) error {
	r, err := buildUpdateNameservers(c.domain, ns)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: update nameservers for %s: %w", c.domain, err)
	}
	return nil
}

// URLForwards returns the URL forwarding rules of the domain.
func (c *DomainClient) URLForwards(ctx context.Context) ([]URLForward, error) {
	r, err := buildGetURLForwarding(c.domain)
	if err != nil {
		return nil, err
	}
	var out struct {
		Forwards []URLForward `json:"forwards"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: get URL forwards for %s: %w", c.domain, err)
	}
	return out.Forwards, nil
}

// AddURLForward creates a URL forwarding rule.
func (c *DomainClient) AddURLForward(ctx context.Context, req AddURLForwardRequest) error {
	r, err := buildAddURLForward(c.domain, req)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: add URL forward for %s: %w", c.domain, err)
	}
	return nil
}

// DeleteURLForward removes the forwarding rule with the given ID.
func (c *DomainClient) DeleteURLForward(ctx context.Context, id string) error {
	r, err := buildDeleteURLForward(c.domain, id)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: delete URL forward %s for %s: %w", id, c.domain, err)
	}
	return nil
}

// Glue returns the glue hosts registered under the domain.
func (c *DomainClient) Glue(ctx context.Context) ([]GlueHost, error) {
	r, err := buildGetGlue(c.domain)
	if err != nil {
		return nil, err
	}
	var out struct {
		Hosts []GlueHost `json:"hosts"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: get glue records for %s: %w", c.domain, err)
	}
	return out.Hosts, nil
}

// CreateGlue registers a glue host for subdomain with the given addresses.
func (c *DomainClient) CreateGlue(ctx context.Context, subdomain string, ips []netip.Addr) error {
	r, err := buildGlue("createGlue", c.domain, subdomain, ips)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: create glue %s.%s: %w", subdomain, c.domain, err)
	}
	return nil
}

// UpdateGlue replaces the addresses of an existing glue host.
func (c *DomainClient) UpdateGlue(ctx context.Context, subdomain string, ips []netip.Addr) error {
	r, err := buildGlue("updateGlue", c.domain, subdomain, ips)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: update glue %s.%s: %w", subdomain, c.domain, err)
	}
	return nil
}

// DeleteGlue removes a glue host.
func (c *DomainClient) DeleteGlue(ctx context.Context, subdomain string) error {
	r, err := buildDeleteGlue(c.domain, subdomain)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: delete glue %s.%s: %w", subdomain, c.domain, err)
	}
	return nil
}
