package namecom

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/transport"
)

// VanityNameserverClient manages nameserver hostnames registered under one
// domain.
type VanityNameserverClient struct {
	t      *transport.Client
	domain string
}

// List returns every vanity nameserver of the domain.
func (c *VanityNameserverClient) List(ctx context.Context) ([]VanityNameserver, error) {
	servers, err := collect(ctx, func(ctx context.Context, page int) ([]VanityNameserver, int, error) {
		r, err := buildListVanity(c.domain, page)
		if err != nil {
			return nil, 0, err
		}
		var out struct {
			Servers  []VanityNameserver `json:"vanityNameservers"`
			NextPage int                `json:"nextPage"`
		}
		if err := c.t.Do(ctx, r, &out); err != nil {
			return nil, 0, err
		}
		return out.Servers, out.NextPage, nil
	})
	if err != nil {
		return nil, fmt.Errorf("namecom: list vanity nameservers on %s: %w", c.domain, err)
	}
	return servers, nil
}

// Get returns one vanity nameserver by full hostname.
func (c *VanityNameserverClient) Get(ctx context.Context, hostname string) (*VanityNameserver, error) {
	r, err := buildGetVanity(c.domain, hostname)
	if err != nil {
		return nil, err
	}
	var out VanityNameserver
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: get vanity nameserver %s: %w", hostname, err)
	}
	return &out, nil
}

// Create registers hostname with the given glue IPs.
func (c *VanityNameserverClient) Create(ctx context.Context, hostname string, ips []string) (*VanityNameserver, error) {
	r, err := buildCreateVanity(c.domain, hostname, ips)
	if err != nil {
		return nil, err
	}
	var out VanityNameserver
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: create vanity nameserver %s: %w", hostname, err)
	}
	return &out, nil
}

// Update replaces the glue IPs of hostname.
func (c *VanityNameserverClient) Update(ctx context.Context, hostname string, ips []string) (*VanityNameserver, error) {
	r, err := buildUpdateVanity(c.domain, hostname, ips)
	if err != nil {
		return nil, err
	}
	var out VanityNameserver
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: update vanity nameserver %s: %w", hostname, err)
	}
	return &out, nil
}

// Delete removes hostname.
func (c *VanityNameserverClient) Delete(ctx context.Context, hostname string) error {
	r, err := buildDeleteVanity(c.domain, hostname)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("namecom: delete vanity nameserver %s: %w", hostname, err)
	}
	return nil
}
