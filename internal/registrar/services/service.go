// Package services provides the registrar service layer.
//
// The Service type wraps a domain.Provider and adds input normalisation,
// validation, and default value application before delegating to the provider.
// CLI commands construct a Service from a resolved provider and call service
// methods rather than calling the provider directly. Optional capabilities
// (nameservers, availability, URL forwarding, verification) are discovered by
// type assertion and report domain.ErrUnsupported when the provider lacks them.
package services

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"
)

// Service is the registrar business logic layer. It sits between CLI commands
// and the provider, applying normalisation and validation to all inputs.
type Service struct {
	provider domain.Provider
}

// New returns a Service backed by the given provider.
func New(provider domain.Provider) *Service {
	return &Service{provider: provider}
}

// Provider returns the provider this service delegates to.
func (s *Service) Provider() domain.Provider {
	return s.provider
}

// ListDomains returns all domains in the provider account.
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	return s.provider.ListDomains(ctx)
}

// ListRecords returns all DNS records for the given domain.
func (s *Service) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	domainName, err := requireDomain(domainName)
	if err != nil {
		return nil, err
	}
	return s.provider.ListRecords(ctx, domainName)
}

// GetRecord returns a single DNS record by domain and ID.
func (s *Service) GetRecord(ctx context.Context, domainName string, id string) (*domain.Record, error) {
	domainName, err := requireDomain(domainName)
	if err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.provider.GetRecord(ctx, domainName, id)
}

// CreateRecord creates a new DNS record after normalising and validating the opts.
func (s *Service) CreateRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	domainName, err := requireDomain(domainName)
	if err != nil {
		return nil, err
	}

	opts.Type = normalizeRecordType(opts.Type)
	if err := validateRecordType(opts.Type); err != nil {
		return nil, err
	}
	opts.Content = normalizeContent(opts.Content)
	if err := validateContent(opts.Type, opts.Content); err != nil {
		return nil, err
	}

	// Apply default TTL if none specified.
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	opts.Name = normalizeSubdomain(opts.Name, domainName)

	return s.provider.CreateRecord(ctx, domainName, opts)
}

// UpdateRecord updates an existing DNS record after normalising and validating opts.
func (s *Service) UpdateRecord(ctx context.Context, domainName string, id string, opts domain.UpdateRecordOpts) error {
	domainName, err := requireDomain(domainName)
	if err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}

	if opts.Type != "" {
		opts.Type = normalizeRecordType(opts.Type)
		if err := validateRecordType(opts.Type); err != nil {
			return err
		}
	}
	opts.Content = normalizeContent(opts.Content)
	if err := validateContent(opts.Type, opts.Content); err != nil {
		return err
	}

	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	if opts.Name != "" {
		opts.Name = normalizeSubdomain(opts.Name, domainName)
	}

	return s.provider.UpdateRecord(ctx, domainName, id, opts)
}

// DeleteRecord deletes a DNS record by domain and ID.
func (s *Service) DeleteRecord(ctx context.Context, domainName string, id string) error {
	domainName, err := requireDomain(domainName)
	if err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.provider.DeleteRecord(ctx, domainName, id)
}

// GetNameservers returns the nameservers registered for the domain.
func (s *Service) GetNameservers(ctx context.Context, domainName string) ([]string, error) {
	nm, err := capability[domain.NameserverManager](s.provider, "nameservers")
	if err != nil {
		return nil, err
	}
	domainName, err = requireDomain(domainName)
	if err != nil {
		return nil, err
	}
	return nm.GetNameservers(ctx, domainName)
}

// SetNameservers replaces the nameservers registered for the domain.
func (s *Service) SetNameservers(ctx context.Context, domainName string, nameservers []string) error {
	nm, err := capability[domain.NameserverManager](s.provider, "nameservers")
	if err != nil {
		return err
	}
	domainName, err = requireDomain(domainName)
	if err != nil {
		return err
	}
	nameservers, err = normalizeNameservers(nameservers)
	if err != nil {
		return err
	}
	return nm.SetNameservers(ctx, domainName, nameservers)
}

// CheckAvailability reports whether the domain can be registered.
func (s *Service) CheckAvailability(ctx context.Context, domainName string) (*domain.Availability, error) {
	ac, err := capability[domain.AvailabilityChecker](s.provider, "availability checks")
	if err != nil {
		return nil, err
	}
	domainName, err = requireDomain(domainName)
	if err != nil {
		return nil, err
	}
	return ac.CheckAvailability(ctx, domainName)
}

// ListURLForwards returns the URL forwarding rules for the domain.
func (s *Service) ListURLForwards(ctx context.Context, domainName string) ([]domain.URLForward, error) {
	uf, err := capability[domain.URLForwarder](s.provider, "URL forwarding")
	if err != nil {
		return nil, err
	}
	domainName, err = requireDomain(domainName)
	if err != nil {
		return nil, err
	}
	return uf.ListURLForwards(ctx, domainName)
}

// AddURLForward validates the target and creates a URL forwarding rule.
func (s *Service) AddURLForward(ctx context.Context, domainName string, opts domain.URLForwardOpts) error {
	uf, err := capability[domain.URLForwarder](s.provider, "URL forwarding")
	if err != nil {
		return err
	}
	domainName, err = requireDomain(domainName)
	if err != nil {
		return err
	}
	opts.Target = normalizeContent(opts.Target)
	if err := validateTarget(opts.Target); err != nil {
		return err
	}
	opts.Host = normalizeSubdomain(opts.Host, domainName)
	return uf.AddURLForward(ctx, domainName, opts)
}

// DeleteURLForward removes a URL forwarding rule.
func (s *Service) DeleteURLForward(ctx context.Context, domainName string, id string) error {
	uf, err := capability[domain.URLForwarder](s.provider, "URL forwarding")
	if err != nil {
		return err
	}
	domainName, err = requireDomain(domainName)
	if err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return uf.DeleteURLForward(ctx, domainName, id)
}

// Verify checks the provider credentials and returns a short description of
// the authenticated identity.
func (s *Service) Verify(ctx context.Context) (string, error) {
	v, err := capability[domain.Verifier](s.provider, "credential verification")
	if err != nil {
		return "", err
	}
	return v.Verify(ctx)
}

// capability asserts that p implements T.
func capability[T any](p domain.Provider, what string) (T, error) {
	c, ok := p.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %s: %w", p.GetDisplayName(), what, domain.ErrUnsupported)
	}
	return c, nil
}
