// Package porkbun is a client for the Porkbun v3 JSON API.
//
// Every call is a POST with the API key pair embedded in the JSON body.
// Responses carry a "status" field that is "SUCCESS" or "ERROR"; errors are
// normalized by the transport into apierr values.
package porkbun

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/transport"
)

// DefaultBaseURL is the production Porkbun API endpoint.
const DefaultBaseURL = "https://api.porkbun.com/api/json/v3"

// Client is the root Porkbun client for one API key pair. Scoped clients
// obtained from it share its transport.
type Client struct {
	t *transport.Client
}

// New returns a Client authenticated with the given API key and secret key.
func New(apiKey, secretKey string, opts ...transport.Option) *Client {
	cred := transport.BodyKeys{APIKey: apiKey, SecretAPIKey: secretKey}
	return &Client{t: transport.New(DefaultBaseURL, cred, opts...)}
}

// Ping verifies the credentials and returns the caller's public IP.
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	var out PingResponse
	if err := c.t.Do(ctx, buildPing(), &out); err != nil {
		return nil, fmt.Errorf("porkbun: ping: %w", err)
	}
	return &out, nil
}

// Pricing returns default pricing for every supported TLD, keyed by TLD.
// It does not require authentication.
func (c *Client) Pricing(ctx context.Context) (map[string]TLDPricing, error) {
	var out struct {
		Pricing map[string]TLDPricing `json:"pricing"`
	}
	if err := c.t.Do(ctx, buildPricing(), &out); err != nil {
		return nil, fmt.Errorf("porkbun: pricing: %w", err)
	}
	return out.Pricing, nil
}

// DNS returns a client for the DNS records of domain.
func (c *Client) DNS(domain string) *DNSClient {
	return &DNSClient{t: c.t, domain: domain}
}

// Domain returns a client for registrar-level settings of domain.
func (c *Client) Domain(domain string) *DomainClient {
	return &DomainClient{t: c.t, domain: domain}
}

// SSL returns a client for the certificate bundle of domain.
func (c *Client) SSL(domain string) *SSLClient {
	return &SSLClient{t: c.t, domain: domain}
}

// Domains returns the account-level domain client.
func (c *Client) Domains() *DomainsClient {
	return &DomainsClient{t: c.t}
}
