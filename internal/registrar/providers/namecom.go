package providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nathanbeddoewebdev/registrar/internal/namecom"
	"nathanbeddoewebdev/registrar/internal/registrar/domain"
	"nathanbeddoewebdev/registrar/internal/services/auth"
	"nathanbeddoewebdev/registrar/internal/transport"
)

const (
	namecomUsernameStore = "namecom-username"
	namecomTokenStore    = "namecom-token"
)

var (
	_ domain.Provider            = (*NameComProvider)(nil)
	_ domain.NameserverManager   = (*NameComProvider)(nil)
	_ domain.AvailabilityChecker = (*NameComProvider)(nil)
	_ domain.URLForwarder        = (*NameComProvider)(nil)
	_ domain.Verifier            = (*NameComProvider)(nil)
)

// NameComProvider implements domain.Provider on top of the Name.com Core API client.
type NameComProvider struct {
	client *namecom.Client
}

// NewNameComProvider creates a NameComProvider against host. An empty host
// selects production.
func NewNameComProvider(host, username, token string, opts ...transport.Option) *NameComProvider {
	if host == "" {
		host = namecom.ProductionHost
	}
	return &NameComProvider{client: namecom.NewWithHost(host, username, token, opts...)}
}

// RegisterNameCom registers the Name.com provider factory with the registry.
// It reads the namecom-username and namecom-token keychain entries.
func RegisterNameCom(host string, opts ...transport.Option) {
	Register("namecom", func(store auth.Store) (domain.Provider, error) {
		username, err := store.GetToken(namecomUsernameStore)
		if err != nil {
			return nil, fmt.Errorf("namecom auth: username not found (run 'registrar auth login namecom'): %w", err)
		}
		token, err := store.GetToken(namecomTokenStore)
		if err != nil {
			return nil, fmt.Errorf("namecom auth: api token not found (run 'registrar auth login namecom'): %w", err)
		}
		return NewNameComProvider(host, username, token, opts...), nil
	})
}

// GetDisplayName returns the human-readable provider name.
func (p *NameComProvider) GetDisplayName() string {
	return "Name.com"
}

// Client exposes the underlying API client for provider-specific operations.
func (p *NameComProvider) Client() *namecom.Client {
	return p.client
}

// Verify calls the hello endpoint and reports the authenticated user.
func (p *NameComProvider) Verify(ctx context.Context) (string, error) {
	hello, err := p.client.Hello(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("authenticated as %s on %s", hello.Username, hello.ServerName), nil
}

// ListDomains returns every domain in the account, following pagination.
func (p *NameComProvider) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	list, err := p.client.Domains().List(ctx)
	if err != nil {
		return nil, err
	}

	domains := make([]domain.Domain, 0, len(list))
	for _, d := range list {
		domains = append(domains, domain.Domain{
			Name:       d.DomainName,
			Provider:   p.GetDisplayName(),
			TLD:        tldOf(d.DomainName),
			CreateDate: d.CreateDate,
			ExpireDate: d.ExpireDate,
			AutoRenew:  d.AutorenewEnabled,
		})
	}
	return domains, nil
}

// ListRecords returns all DNS records for the given domain.
func (p *NameComProvider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	recs, err := p.client.DNS(domainName).List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(recs))
	for _, r := range recs {
		records = append(records, fromNameComRecord(domainName, r))
	}
	return records, nil
}

// GetRecord returns a single DNS record by its ID.
func (p *NameComProvider) GetRecord(ctx context.Context, domainName string, id string) (*domain.Record, error) {
	n, err := recordID(id)
	if err != nil {
		return nil, err
	}
	r, err := p.client.DNS(domainName).Get(ctx, n)
	if err != nil {
		return nil, err
	}
	rec := fromNameComRecord(domainName, *r)
	return &rec, nil
}

// CreateRecord creates a new DNS record and returns it as stored by Name.com.
func (p *NameComProvider) CreateRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	r, err := p.client.DNS(domainName).Create(ctx, recordRequest(opts.Name, opts.Type, opts.Content, opts.TTL, opts.Priority))
	if err != nil {
		return nil, err
	}
	rec := fromNameComRecord(domainName, *r)
	return &rec, nil
}

// UpdateRecord replaces the record with the given ID. Name.com has no
// record notes, so opts.Notes is ignored.
func (p *NameComProvider) UpdateRecord(ctx context.Context, domainName string, id string, opts domain.UpdateRecordOpts) error {
	n, err := recordID(id)
	if err != nil {
		return err
	}
	_, err = p.client.DNS(domainName).Update(ctx, n, recordRequest(opts.Name, opts.Type, opts.Content, opts.TTL, opts.Priority))
	return err
}

// DeleteRecord deletes a DNS record by its ID.
func (p *NameComProvider) DeleteRecord(ctx context.Context, domainName string, id string) error {
	n, err := recordID(id)
	if err != nil {
		return err
	}
	return p.client.DNS(domainName).Delete(ctx, n)
}

// GetNameservers returns the nameservers configured for the domain.
func (p *NameComProvider) GetNameservers(ctx context.Context, domainName string) ([]string, error) {
	return p.client.Domain(domainName).Nameservers(ctx)
}

// SetNameservers replaces the nameservers configured for the domain.
func (p *NameComProvider) SetNameservers(ctx context.Context, domainName string, nameservers []string) error {
	_, err := p.client.Domain(domainName).SetNameservers(ctx, nameservers)
	return err
}

// CheckAvailability reports whether the domain can be registered.
func (p *NameComProvider) CheckAvailability(ctx context.Context, domainName string) (*domain.Availability, error) {
	results, err := p.client.Domains().CheckAvailability(ctx, domainName)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		if !strings.EqualFold(r.DomainName, domainName) {
			continue
		}
		a := &domain.Availability{
			Domain:    r.DomainName,
			Available: r.Purchasable,
			Premium:   r.Premium,
		}
		if r.Purchasable {
			a.Price = strconv.FormatFloat(r.PurchasePrice, 'f', 2, 64)
		}
		return a, nil
	}
	return nil, fmt.Errorf("namecom: availability of %s: %w", domainName, domain.ErrNotFound)
}

// ListURLForwards returns the URL forwarding rules for the domain. Rules are
// identified by their full hostname.
func (p *NameComProvider) ListURLForwards(ctx context.Context, domainName string) ([]domain.URLForward, error) {
	fwds, err := p.client.URLForwarding(domainName).List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.URLForward, 0, len(fwds))
	for _, f := range fwds {
		out = append(out, domain.URLForward{
			ID:        f.Host,
			Host:      subdomainOf(f.Host, domainName),
			Target:    f.ForwardsTo,
			Permanent: f.Type == namecom.ForwardRedirect,
		})
	}
	return out, nil
}

// AddURLForward creates a URL forwarding rule.
func (p *NameComProvider) AddURLForward(ctx context.Context, domainName string, opts domain.URLForwardOpts) error {
	typ := namecom.Forward302
	if opts.Permanent {
		typ = namecom.ForwardRedirect
	}
	host := domainName
	if opts.Host != "" {
		host = opts.Host + "." + domainName
	}
	_, err := p.client.URLForwarding(domainName).Create(ctx, namecom.URLForwardRequest{
		Host:       host,
		ForwardsTo: opts.Target,
		Type:       typ,
	})
	return err
}

// DeleteURLForward removes the forwarding rule for the host named by id.
func (p *NameComProvider) DeleteURLForward(ctx context.Context, domainName string, id string) error {
	return p.client.URLForwarding(domainName).Delete(ctx, id)
}

// --- Conversion helpers ---

func recordID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("namecom: record id %q: %w", id, domain.ErrInvalidRequest)
	}
	return n, nil
}

func recordRequest(host string, typ domain.RecordType, content string, ttl, prio int) namecom.RecordRequest {
	req := namecom.RecordRequest{
		Host:     host,
		Type:     string(typ),
		Answer:   content,
		Priority: priority(typ, prio),
	}
	if ttl > 0 {
		req.TTL = &ttl
	}
	return req
}

// fromNameComRecord converts a Name.com record to a domain.Record. Name is
// the fully-qualified name without the trailing dot, matching Porkbun.
func fromNameComRecord(domainName string, r namecom.DNSRecord) domain.Record {
	name := strings.TrimSuffix(r.FQDN, ".")
	if name == "" {
		name = domainName
		if r.Host != "" {
			name = r.Host + "." + domainName
		}
	}
	rec := domain.Record{
		ID:      strconv.Itoa(r.ID),
		Domain:  domainName,
		Name:    name,
		Type:    domain.RecordType(r.Type),
		Content: r.Answer,
		TTL:     r.TTL,
	}
	if r.Priority != nil {
		rec.Priority = *r.Priority
	}
	return rec
}

func subdomainOf(host, domainName string) string {
	if strings.EqualFold(host, domainName) {
		return ""
	}
	return strings.TrimSuffix(host, "."+domainName)
}

func tldOf(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}
