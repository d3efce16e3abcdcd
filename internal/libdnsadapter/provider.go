// Package libdnsadapter exposes a registrar provider as a libdns provider so
// that any libdns consumer (ACME DNS-01 solvers, dynamic DNS updaters) can
// drive Porkbun or Name.com zones.
package libdnsadapter

import (
	"context"

	"github.com/libdns/libdns"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type Provider struct {
	client Client
}

// New wraps client as a libdns provider.
func New(client Client) *Provider {
	return &Provider{client: client}
}

func (p *Provider) entries(ctx context.Context, domainName string) ([]entry, error) {
	recs, err := p.client.ListRecords(ctx, domainName)
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	entries := make([]entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, toEntry(rec, domainName))
	}
	return entries, nil
}

func (p *Provider) GetRecords(ctx context.Context, zone string) ([]libdns.Record, error) {
	entries, err := p.entries(ctx, zoneDomain(zone))
	if err != nil {
		return nil, err
	}
	out := make([]libdns.Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record())
	}
	return out, nil
}

func (p *Provider) AppendRecords(ctx context.Context, zone string, recs []libdns.Record) (result []libdns.Record, errs error) {
	domainName := zoneDomain(zone)
	for _, rec := range recs {
		opts, err := toCreateOpts(normalize(rec))
		if multierr.AppendInto(&errs, err) {
			continue
		}
		created, err := p.client.CreateRecord(ctx, domainName, opts)
		if !multierr.AppendInto(&errs, errors.Wrapf(err, "create %s record %q", opts.Type, opts.Name)) {
			result = append(result, toEntry(*created, domainName).Record())
		}
	}
	return
}

// SetRecords makes each (name, type) pair present in recs hold exactly the
// given records. Matching records are kept, surplus ones are reused through
// updates before new ones are created, and leftovers are deleted.
func (p *Provider) SetRecords(ctx context.Context, zone string, recs []libdns.Record) (result []libdns.Record, errs error) {
	domainName := zoneDomain(zone)
	existing, err := p.entries(ctx, domainName)
	if err != nil {
		return nil, err
	}

	var order []key
	want := make(map[key][]libdns.RR)
	for _, rec := range recs {
		rr := normalize(rec)
		k := keyOf(rr)
		if _, ok := want[k]; !ok {
			order = append(order, k)
		}
		want[k] = append(want[k], rr)
	}

	for _, k := range order {
		var current []entry
		for _, e := range existing {
			if keyOf(e.RR) == k {
				current = append(current, e)
			}
		}

		used := make([]bool, len(current))
		var pending []libdns.RR
		for _, rr := range want[k] {
			kept := false
			for i, e := range current {
				if !used[i] && same(e.RR, rr) {
					used[i] = true
					kept = true
					result = append(result, e.Record())
					break
				}
			}
			if !kept {
				pending = append(pending, rr)
			}
		}

		for _, rr := range pending {
			opts, err := toCreateOpts(rr)
			if multierr.AppendInto(&errs, err) {
				continue
			}

			reuse := -1
			for i := range current {
				if !used[i] {
					reuse = i
					break
				}
			}
			if reuse >= 0 {
				used[reuse] = true
				id := current[reuse].ID
				err := p.client.UpdateRecord(ctx, domainName, id, toUpdateOpts(opts))
				if !multierr.AppendInto(&errs, errors.Wrapf(err, "update record %s", id)) {
					result = append(result, entry{ID: id, RR: rr}.Record())
				}
				continue
			}

			created, err := p.client.CreateRecord(ctx, domainName, opts)
			if !multierr.AppendInto(&errs, errors.Wrapf(err, "create %s record %q", opts.Type, opts.Name)) {
				result = append(result, toEntry(*created, domainName).Record())
			}
		}

		for i, e := range current {
			if used[i] {
				continue
			}
			err := p.client.DeleteRecord(ctx, domainName, e.ID)
			_ = multierr.AppendInto(&errs, errors.Wrapf(err, "delete record %s", e.ID))
		}
	}

	return
}

// DeleteRecords deletes the provider records matching recs and returns the
// ones that were removed.
func (p *Provider) DeleteRecords(ctx context.Context, zone string, recs []libdns.Record) (result []libdns.Record, errs error) {
	domainName := zoneDomain(zone)
	existing, err := p.entries(ctx, domainName)
	if err != nil {
		return nil, err
	}

	filters := make([]libdns.RR, 0, len(recs))
	for _, rec := range recs {
		filters = append(filters, normalize(rec))
	}

	for _, e := range existing {
		for _, f := range filters {
			if !matches(e.RR, f) {
				continue
			}
			err := p.client.DeleteRecord(ctx, domainName, e.ID)
			if !multierr.AppendInto(&errs, errors.Wrapf(err, "delete record %s", e.ID)) {
				result = append(result, e.Record())
			}
			break
		}
	}

	return
}

func (p *Provider) ListZones(ctx context.Context) ([]libdns.Zone, error) {
	domains, err := p.client.ListDomains(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list domains")
	}
	zones := make([]libdns.Zone, 0, len(domains))
	for _, d := range domains {
		zones = append(zones, libdns.Zone{Name: d.Name + "."})
	}
	return zones, nil
}

var (
	_ libdns.RecordGetter   = (*Provider)(nil)
	_ libdns.RecordSetter   = (*Provider)(nil)
	_ libdns.RecordAppender = (*Provider)(nil)
	_ libdns.RecordDeleter  = (*Provider)(nil)
	_ libdns.ZoneLister     = (*Provider)(nil)
)
