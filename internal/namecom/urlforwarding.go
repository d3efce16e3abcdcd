package namecom

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/transport"
)

// URLForwardingClient manages URL forwards of one domain. Forwards are
// addressed by host.
type URLForwardingClient struct {
	t      *transport.Client
	domain string
}

// List returns every forward on the domain.
func (c *URLForwardingClient) List(ctx context.Context) ([]URLForward, error) {
	forwards, err := collect(ctx, func(ctx context.Context, page int) ([]URLForward, int, error) {
		r, err := buildListURLForwards(c.domain, page)
		if err != nil {
			return nil, 0, err
		}
		var out struct {
			Forwards []URLForward `json:"urlForwarding"`
			NextPage int          `json:"nextPage"`
		}
		if err := c.t.Do(ctx, r, &out); err != nil {
			return nil, 0, err
		}
		return out.Forwards, out.NextPage, nil
	})
	if err != nil {
		return nil, fmt.Errorf("namecom: list URL forwards on %s: %w", c.domain, err)
	}
	return forwards, nil
}

// Get returns the forward for host.
func (c *URLForwardingClient) Get(ctx context.Context, host string) (*URLForward, error) {
	r, err := buildGetURLForward(c.domain, host)
	if err != nil {
		return nil, err
	}
	var out URLForward
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: get URL forward %s on %s: %w", host, c.domain, err)
	}
	return &out, nil
}

// Create adds a forward.
func (c *URLForwardingClient) Create(ctx context.Context, req URLForwardRequest) (*URLForward, error) {
	r, err := buildCreateURLForward(c.domain, req)
	if err != nil {
		return nil, err
	}
	var out URLForward
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: create URL forward on %s: %w", c.domain, err)
	}
	return &out, nil
}

// Update replaces the forward for host.
func (c *URLForwardingClient) Update(ctx context.Context, host string, req URLForwardRequest) (*URLForward, error) {
	r, err := buildUpdateURLForward(c.domain, host, req)
	if err != nil {
		return nil, err
	}
	var out URLForward
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: update URL forward %s on %s: %w", host, c.domain, err)
	}
	return &out, nil
}

// Delete removes the forward for host.
func (c *URLForwardingClient) Delete(ctx context.Context, host string) error {
	r, err := buildDeleteURLForward(c.domain, host)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("namecom: delete URL forward %s on %s: %w", host, c.domain, err)
	}
	return nil
}
