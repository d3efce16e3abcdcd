package porkbun

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"nathanbeddoewebdev/registrar/internal/apierr"
	"nathanbeddoewebdev/registrar/internal/transport"
)

// DNSClient manages the DNS records and DNSSEC entries of one domain.
type DNSClient struct {
	t      *transport.Client
	domain string
}

// Domain returns the domain this client is bound to.
func (c *DNSClient) Domain() string { return c.domain }

type recordsResponse struct {
	Records []DNSRecord `json:"records"`
}

// Create adds a record and returns the ID Porkbun assigned to it.
func (c *DNSClient) Create(ctx context.Context, req CreateRecordRequest) (string, error) {
	r, err := buildCreateRecord(c.domain, req)
	if err != nil {
		return "", err
	}
	var out CreateRecordResponse
	if err := c.t.Do(ctx, r, &out); err != nil {
		return "", fmt.Errorf("porkbun: create record on %s: %w", c.domain, err)
	}
	return strconv.Itoa(int(out.ID)), nil
}

// Edit updates the record with the given ID.
func (c *DNSClient) Edit(ctx context.Context, id string, req EditRecordRequest) error {
	r, err := buildEditRecord(c.domain, id, req)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: edit record %s on %s: %w", id, c.domain, err)
	}
	return nil
}

// EditByNameType updates every record matching recordType and subdomain.
// An empty subdomain targets the root domain.
func (c *DNSClient) EditByNameType(ctx context.Context, recordType, subdomain string, req EditByNameTypeRequest) error {
	r, err := buildEditByNameType(c.domain, recordType, subdomain, req)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: edit %s records on %s: %w", recordType, c.domain, err)
	}
	return nil
}

// Delete removes the record with the given ID.
func (c *DNSClient) Delete(ctx context.Context, id string) error {
	r, err := buildDeleteRecord(c.domain, id)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: delete record %s on %s: %w", id, c.domain, err)
	}
	return nil
}

// DeleteByNameType removes every record matching recordType and subdomain.
func (c *DNSClient) DeleteByNameType(ctx context.Context, recordType, subdomain string) error {
	r, err := buildDeleteByNameType(c.domain, recordType, subdomain)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: delete %s records on %s: %w", recordType, c.domain, err)
	}
	return nil
}

// List returns every record on the domain.
func (c *DNSClient) List(ctx context.Context) ([]DNSRecord, error) {
	r, err := buildRetrieveRecords(c.domain, "")
	if err != nil {
		return nil, err
	}
	var out recordsResponse
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: list records on %s: %w", c.domain, err)
	}
	return out.Records, nil
}

// Get returns a single record by ID. Porkbun answers an unknown ID with an
// empty list, which is reported as apierr.ErrNotFound.
func (c *DNSClient) Get(ctx context.Context, id string) (*DNSRecord, error) {
	if err := required("id", id); err != nil {
		return nil, err
	}
	r, err := buildRetrieveRecords(c.domain, id)
	if err != nil {
		return nil, err
	}
	var out recordsResponse
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: get record %s on %s: %w", id, c.domain, err)
	}
	idx := slices.IndexFunc(out.Records, func(rec DNSRecord) bool { return rec.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("porkbun: record %s on %s: %w", id, c.domain, apierr.ErrNotFound)
	}
	return &out.Records[idx], nil
}

// ListByNameType returns the records matching recordType and subdomain.
func (c *DNSClient) ListByNameType(ctx context.Context, recordType, subdomain string) ([]DNSRecord, error) {
	r, err := buildRetrieveByNameType(c.domain, recordType, subdomain)
	if err != nil {
		return nil, err
	}
	var out recordsResponse
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: list %s records on %s: %w", recordType, c.domain, err)
	}
	return out.Records, nil
}

// CreateDNSSEC registers a DS record at the registry.
func (c *DNSClient) CreateDNSSEC(ctx context.Context, rec DNSSECRecord) error {
	r, err := buildCreateDNSSEC(c.domain, rec)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: create DNSSEC record on %s: %w", c.domain, err)
	}
	return nil
}

// DNSSEC returns the DS records registered for the domain, keyed by key tag.
func (c *DNSClient) DNSSEC(ctx context.Context) (map[string]DNSSECRecord, error) {
	r, err := buildGetDNSSEC(c.domain)
	if err != nil {
		return nil, err
	}
	var out struct {
		Records dnssecRecordSet `json:"records"`
	}
	if err := c.t.Do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("porkbun: get DNSSEC records on %s: %w", c.domain, err)
	}
	if out.Records == nil {
		return map[string]DNSSECRecord{}, nil
	}
	return out.Records, nil
}

// DeleteDNSSEC removes the DS record with the given key tag.
func (c *DNSClient) DeleteDNSSEC(ctx context.Context, keyTag string) error {
	r, err := buildDeleteDNSSEC(c.domain, keyTag)
	if err != nil {
		return err
	}
	if err := c.t.Do(ctx, r, nil); err != nil {
		return fmt.Errorf("porkbun: delete DNSSEC record %s on %s: %w", keyTag, c.domain, err)
	}
	return nil
}
