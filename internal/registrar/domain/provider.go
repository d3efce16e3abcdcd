// Package domain defines the provider-neutral registrar model and the
// capability interfaces each registrar implements.
package domain

import "context"

// DomainLister lists the domains held in a provider account.
type DomainLister interface {
	// ListDomains returns all domains registered in the provider account.
	ListDomains(ctx context.Context) ([]Domain, error)
}

// RecordManager covers full DNS record CRUD for domains in the account.
type RecordManager interface {
	// ListRecords returns all DNS records for the given domain.
	ListRecords(ctx context.Context, domain string) ([]Record, error)

	// GetRecord returns a single DNS record by its ID.
	GetRecord(ctx context.Context, domain string, id string) (*Record, error)

	// CreateRecord creates a new DNS record and returns the created record.
	CreateRecord(ctx context.Context, domain string, opts CreateRecordOpts) (*Record, error)

	// UpdateRecord updates an existing DNS record by its ID.
	UpdateRecord(ctx context.Context, domain string, id string, opts UpdateRecordOpts) error

	// DeleteRecord deletes a DNS record by its ID.
	DeleteRecord(ctx context.Context, domain string, id string) error
}

// Provider is the capability set every registrar implements.
type Provider interface {
	// GetDisplayName returns the human-readable provider name (e.g. "Porkbun").
	GetDisplayName() string

	DomainLister
	RecordManager
}

// NameserverManager reads and replaces the authoritative nameservers
// registered for a domain.
type NameserverManager interface {
	GetNameservers(ctx context.Context, domain string) ([]string, error)
	SetNameservers(ctx context.Context, domain string, nameservers []string) error
}

// AvailabilityChecker reports whether a domain can be registered.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, domain string) (*Availability, error)
}

// URLForwarder manages registrar-level URL forwarding.
type URLForwarder interface {
	ListURLForwards(ctx context.Context, domain string) ([]URLForward, error)
	AddURLForward(ctx context.Context, domain string, opts URLForwardOpts) error
	DeleteURLForward(ctx context.Context, domain string, id string) error
}

// Verifier checks that the configured credentials are accepted.
type Verifier interface {
	// Verify returns a short human-readable description of the
	// authenticated identity on success.
	Verify(ctx context.Context) (string, error)
}
