package namecom

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/registrar/internal/transport"
)

// DNSClient manages the DNS records and DNSSEC entries of one domain.
type DNSClient struct {
	t      *transport.Client
	domain string
}

// Domain returns the domain this client is bound to.
func (c *DNSClient) Domain() string { return c.domain }

// List returns every record on the domain.
func (c *DNSClient) List(ctx context.Context) ([]DNSRecord, error) {
	records, err := collect(ctx, func(ctx context.Context, page int) ([]DNSRecord, int, error) {
		r, err := buildListRecords(c.domain, page)
		if err != nil {
			return nil, 0, err
		}
		var out struct {
			Records  []DNSRecord `json:"records"`
			NextPage int         `json:"nextPage"`
		}
		if err := c.t.Do(ctx, r, &out); err != nil {
			return nil, 0, err
		}
		return out.Records, out.NextPage, nil
	})
	if err != nil {
		return nil, fmt.Errorf("namecom: list records on %s: %w", c.domain, err)
	}
	return records, nil
}

// Get returns the record with the given ID.
func (c *DNSClient) Get(ctx context.Context, id int) (*DNSRecord, error) {
	r, err := buildGetRecord(c.domain, id)
	if err != nil {
		return nil, err
	}
	var out DNSRecord
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: get record %d on %s: %w", id, c.domain, err)
	}
	return &out, nil
}

// Create adds a record and returns it as stored.
func (c *DNSClient) Create(ctx context.Context, req RecordRequest) (*DNSRecord, error) {
	r, err := buildCreateRecord(c.domain, req)
	if err != nil {
		return nil, err
	}
	var out DNSRecord
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: create record on %s: %w", c.domain, err)
	}
	return &out, nil
}

// Update replaces the record with the given ID.
func (c *DNSClient) Update(ctx context.Context, id int, req RecordRequest) (*DNSRecord, error) {
	r, err := buildUpdateRecord(c.domain, id, req)
	if err != nil {
		return nil, err
	}
	var out DNSRecord
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: update record %d on %s: %w", id, c.domain, err)
	}
	return &out, nil
}

// Delete removes the record with the given ID.
func (c *DNSClient) Delete(ctx context.Context, id int) error {
	r, err := buildDeleteRecord(c.domain, id)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("namecom: delete record %d on %s: %w", id, c.domain, err)
	}
	return nil
}

// DNSSEC returns the DS records registered for the domain.
func (c *DNSClient) DNSSEC(ctx context.Context) ([]DNSSECRecord, error) {
	r, err := buildListDNSSEC(c.domain)
	if err != nil {
		return nil, err
	}
	var out struct {
		DNSSEC []DNSSECRecord `json:"dnssec"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: list DNSSEC on %s: %w", c.domain, err)
	}
	if out.DNSSEC == nil {
		return []DNSSECRecord{}, nil
	}
	return out.DNSSEC, nil
}

// GetDNSSEC returns the DS record with the given digest.
func (c *DNSClient) GetDNSSEC(ctx context.Context, digest string) (*DNSSECRecord, error) {
	r, err := buildGetDNSSEC(c.domain, digest)
	if err != nil {
		return nil, err
	}
	var out DNSSECRecord
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: get DNSSEC %s on %s: %w", digest, c.domain, err)
	}
	return &out, nil
}

// CreateDNSSEC registers a DS record.
func (c *DNSClient) CreateDNSSEC(ctx context.Context, rec DNSSECRecord) (*DNSSECRecord, error) {
	r, err := buildCreateDNSSEC(c.domain, rec)
	if err != nil {
		return nil, err
	}
	var out DNSSECRecord
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("namecom: create DNSSEC on %s: %w", c.domain, err)
	}
	return &out, nil
}

// DeleteDNSSEC removes the DS record with the given digest.
func (c *DNSClient) DeleteDNSSEC(ctx context.Context, digest string) error {
	r, err := buildDeleteDNSSEC(c.domain, digest)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("namecom: delete DNSSEC %s on %s: %w", digest, c.domain, err)
	}
	return nil
}
