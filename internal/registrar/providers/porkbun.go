package providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nathanbeddoewebdev/registrar/internal/porkbun"
	"nathanbeddoewebdev/registrar/internal/registrar/domain"
	"nathanbeddoewebdev/registrar/internal/services/auth"
	"nathanbeddoewebdev/registrar/internal/transport"
	"nathanbeddoewebdev/registrar/internal/util"
)

const (
	porkbunAPIKeyStore = "porkbun-apikey"
	porkbunSecretStore = "porkbun-secretapikey"
)

// Compile-time checks for the capabilities PorkbunProvider offers.
var (
	_ domain.Provider            = (*PorkbunProvider)(nil)
	_ domain.NameserverManager   = (*PorkbunProvider)(nil)
	_ domain.AvailabilityChecker = (*PorkbunProvider)(nil)
	_ domain.URLForwarder        = (*PorkbunProvider)(nil)
	_ domain.Verifier            = (*PorkbunProvider)(nil)
)

// PorkbunProvider implements domain.Provider on top of the Porkbun API client.
type PorkbunProvider struct {
	client *porkbun.Client
}

// NewPorkbunProvider creates a PorkbunProvider with the given credentials.
func NewPorkbunProvider(apiKey, secretKey string, opts ...transport.Option) *PorkbunProvider {
	return &PorkbunProvider{client: porkbun.New(apiKey, secretKey, opts...)}
}

// RegisterPorkbun registers the Porkbun provider factory with the registry.
// It reads two separate keychain entries: porkbun-apikey and porkbun-secretapikey.
func RegisterPorkbun(opts ...transport.Option) {
	Register("porkbun", func(store auth.Store) (domain.Provider, error) {
		apiKey, err := store.GetToken(porkbunAPIKeyStore)
		if err != nil {
			return nil, fmt.Errorf("porkbun auth: api key not found (run 'registrar auth login porkbun'): %w", err)
		}
		secretKey, err := store.GetToken(porkbunSecretStore)
		if err != nil {
			return nil, fmt.Errorf("porkbun auth: secret key not found (run 'registrar auth login porkbun'): %w", err)
		}
		return NewPorkbunProvider(apiKey, secretKey, opts...), nil
	})
}

// GetDisplayName returns the human-readable provider name.
func (p *PorkbunProvider) GetDisplayName() string {
	return "Porkbun"
}

// Client exposes the underlying API client for provider-specific operations.
func (p *PorkbunProvider) Client() *porkbun.Client {
	return p.client
}

// Verify pings the API and reports the caller's public IP.
func (p *PorkbunProvider) Verify(ctx context.Context) (string, error) {
	resp, err := p.client.Ping(ctx)
	if err != nil {
		return "", err
	}
	return "connected from " + resp.YourIP, nil
}

// ListDomains returns every domain in the account, following pagination.
func (p *PorkbunProvider) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	infos, err := p.client.Domains().List(ctx, porkbun.ListOptions{})
	if err != nil {
		return nil, err
	}

	domains := make([]domain.Domain, 0, len(infos))
	for _, d := range infos {
		domains = append(domains, domain.Domain{
			Name:       d.Domain,
			Provider:   p.GetDisplayName(),
			Status:     d.Status,
			TLD:        d.TLD,
			CreateDate: d.CreateDate,
			ExpireDate: d.ExpireDate,
			AutoRenew:  d.AutoRenew == 1,
		})
	}
	return domains, nil
}

// ListRecords returns all DNS records for the given domain.
func (p *PorkbunProvider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	recs, err := p.client.DNS(domainName).List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(recs))
	for _, r := range recs {
		records = append(records, toDomainRecord(domainName, r))
	}
	return records, nil
}

// GetRecord returns a single DNS record by its ID.
func (p *PorkbunProvider) GetRecord(ctx context.Context, domainName string, id string) (*domain.Record, error) {
	r, err := p.client.DNS(domainName).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := toDomainRecord(domainName, *r)
	return &rec, nil
}

// CreateRecord creates a new DNS record and returns the created record with its assigned ID.
func (p *PorkbunProvider) CreateRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	req := porkbun.CreateRecordRequest{
		Name:    opts.Name,
		Type:    string(opts.Type),
		Content: opts.Content,
		Prio:    priority(opts.Type, opts.Priority),
	}
	if opts.TTL > 0 {
		req.TTL = &opts.TTL
	}
	if opts.Notes != "" {
		req.Notes = &opts.Notes
	}

	dns := p.client.DNS(domainName)
	id, err := dns.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	// Fetch the newly created record so we can return a fully-populated struct.
	return p.GetRecord(ctx, domainName, id)
}

// UpdateRecord updates an existing DNS record by its ID.
func (p *PorkbunProvider) UpdateRecord(ctx context.Context, domainName string, id string, opts domain.UpdateRecordOpts) error {
	req := porkbun.EditRecordRequest{
		Name:    util.Ptr(opts.Name),
		Type:    util.Ptr(string(opts.Type)),
		Content: util.Ptr(opts.Content),
		Prio:    priority(opts.Type, opts.Priority),
		Notes:   opts.Notes,
	}
	if opts.TTL > 0 {
		req.TTL = &opts.TTL
	}
	return p.client.DNS(domainName).Edit(ctx, id, req)
}

// DeleteRecord deletes a DNS record by its ID.
func (p *PorkbunProvider) DeleteRecord(ctx context.Context, domainName string, id string) error {
	return p.client.DNS(domainName).Delete(ctx, id)
}

// GetNameservers returns the authoritative nameservers at the registry.
func (p *PorkbunProvider) GetNameservers(ctx context.Context, domainName string) ([]string, error) {
	return p.client.Domain(domainName).Nameservers(ctx)
}

// SetNameservers replaces the authoritative nameservers at the registry.
func (p *PorkbunProvider) SetNameservers(ctx context.Context, domainName string, nameservers []string) error {
	return p.client.Domain(domainName).SetNameservers(ctx, nameservers)
}

// CheckAvailability reports whether the domain can be registered.
func (p *PorkbunProvider) CheckAvailability(ctx context.Context, domainName string) (*domain.Availability, error) {
	resp, err := p.client.Domain(domainName).Check(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Availability{
		Domain:    domainName,
		Available: resp.Response.Available(),
		Premium:   resp.Response.Premium == "yes",
		Price:     resp.Response.Price,
	}, nil
}

// ListURLForwards returns the URL forwarding rules for the domain.
func (p *PorkbunProvider) ListURLForwards(ctx context.Context, domainName string) ([]domain.URLForward, error) {
	fwds, err := p.client.Domain(domainName).URLForwards(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.URLForward, 0, len(fwds))
	for _, f := range fwds {
		out = append(out, domain.URLForward{
			ID:        f.ID,
			Host:      f.Subdomain,
			Target:    f.Location,
			Permanent: f.Type == porkbun.ForwardPermanent,
		})
	}
	return out, nil
}

// AddURLForward creates a URL forwarding rule.
func (p *PorkbunProvider) AddURLForward(ctx context.Context, domainName string, opts domain.URLForwardOpts) error {
	typ := porkbun.ForwardTemporary
	if opts.Permanent {
		typ = porkbun.ForwardPermanent
	}
	return p.client.Domain(domainName).AddURLForward(ctx, porkbun.AddURLForwardRequest{
		Subdomain: opts.Host,
		Location:  opts.Target,
		Type:      typ,
	})
}

// DeleteURLForward removes the URL forwarding rule with the given ID.
func (p *PorkbunProvider) DeleteURLForward(ctx context.Context, domainName string, id string) error {
	return p.client.Domain(domainName).DeleteURLForward(ctx, id)
}

// --- Conversion helpers ---

// toDomainRecord converts a Porkbun API record to a domain.Record.
func toDomainRecord(domainName string, r porkbun.DNSRecord) domain.Record {
	rec := domain.Record{
		ID:      r.ID,
		Domain:  domainName,
		Name:    r.Name,
		Type:    domain.RecordType(r.Type),
		Content: r.Content,
		TTL:     parseInt(r.TTL),
	}
	if r.Prio != nil {
		rec.Priority = parseInt(*r.Prio)
	}
	if r.Notes != nil {
		rec.Notes = *r.Notes
	}
	return rec
}

// priority returns the priority to send for a record of type t, or nil
// when it should be omitted.
func priority(t domain.RecordType, prio int) *int {
	if t.HasPriority() || prio > 0 {
		return util.Ptr(prio)
	}
	return nil
}

// parseInt converts a string to int, returning 0 on failure.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
