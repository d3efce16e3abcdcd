package porkbun

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/transport"
)

// SSLClient retrieves the free certificate Porkbun issues for one domain.
type SSLClient struct {
	t      *transport.Client
	domain string
}

// Retrieve returns the PEM certificate chain and key pair.
func (c *SSLClient) Retrieve(ctx context.Context) (*SSLBundle, error) {
	r, err := buildRetrieveSSL(c.domain)
	if err != nil {
		return nil, err
	}
	var out SSLBundle
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: retrieve SSL bundle for %s: %w", c.domain, err)
	}
	return &out, nil
}
