// Package namecom is a client for the Name.com Core v1 API.
//
// Requests authenticate with HTTP basic auth (account username and API
// token). Errors come back as non-2xx responses carrying {message, details};
// the transport normalizes them into apierr values.
package namecom

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/paginate"
	"nathanbeddoewebdev/registrar/internal/transport"
)

// API hosts.
const (
	ProductionHost  = "https://api.name.com"
	DevelopmentHost = "https://api.dev.name.com"
)

// Client is the root Name.com client for one account.
type Client struct {
	t *transport.Client
}

// New returns a Client for the production API.
func New(username, token string, opts ...transport.Option) *Client {
	return NewWithHost(ProductionHost, username, token, opts...)
}

// NewDev returns a Client for the Name.com sandbox.
func NewDev(username, token string, opts ...transport.Option) *Client {
	return NewWithHost(DevelopmentHost, username, token, opts...)
}

// NewWithHost returns a Client for an arbitrary API host.
func NewWithHost(host, username, token string, opts ...transport.Option) *Client {
	cred := transport.BasicAuth{Username: username, Token: token}
	return &Client{t: transport.New(host, cred, opts...)}
}

// Hello checks connectivity and credentials.
func (c *Client) Hello(ctx context.Context) (*Hello, error) {
	var out Hello
	if err := c.t.Do(ctx, buildHello(), &out); err != nil {
		return nil, fmt.Errorf("namecom: hello: %w", err)
	}
	return &out, nil
}

// Domains returns the account-level domain client.
func (c *Client) Domains() *DomainsClient {
	return &DomainsClient{t: c.t}
}

// Domain returns a client for one registered domain.
func (c *Client) Domain(domain string) *DomainClient {
	return &DomainClient{t: c.t, domain: domain}
}

// DNS returns a client for the DNS records of domain.
func (c *Client) DNS(domain string) *DNSClient {
	return &DNSClient{t: c.t, domain: domain}
}

// URLForwarding returns a client for the URL forwards of domain.
func (c *Client) URLForwarding(domain string) *URLForwardingClient {
	return &URLForwardingClient{t: c.t, domain: domain}
}

// VanityNameservers returns a client for the vanity nameservers of domain.
func (c *Client) VanityNameservers(domain string) *VanityNameserverClient {
	return &VanityNameserverClient{t: c.t, domain: domain}
}

// collect drains a numbered list endpoint starting at page 1.
func collect[T any](ctx context.Context, fetch func(ctx context.Context, page int) ([]T, int, error)) ([]T, error) {
	return paginate.CollectAll(ctx, 1, perPage, paginate.Numbered(fetch))
}
