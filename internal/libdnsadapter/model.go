package libdnsadapter

import (
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"

	"github.com/libdns/libdns"
	"github.com/pkg/errors"
)

// zoneDomain turns a libdns zone ("example.com.") into a registrar domain name.
func zoneDomain(zone string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(zone), "."))
}

// relativeName returns the record name relative to the zone, "@" for the apex.
func relativeName(fqdn, domainName string) string {
	name := libdns.RelativeName(strings.ToLower(fqdn), domainName)
	if name == "" || name == domainName {
		return "@"
	}
	return name
}

// entry is a registrar record as libdns sees it, keeping the provider ID for
// updates and deletes.
type entry struct {
	ID string
	RR libdns.RR
}

func (e entry) Record() libdns.Record {
	if parsed, err := e.RR.Parse(); err == nil {
		return parsed
	}
	return e.RR
}

func toEntry(rec domain.Record, domainName string) entry {
	data := rec.Content
	if rec.Type.HasPriority() {
		data = strconv.Itoa(rec.Priority) + " " + rec.Content
	}
	return entry{
		ID: rec.ID,
		RR: libdns.RR{
			Name: relativeName(rec.Name, domainName),
			TTL:  time.Duration(rec.TTL) * time.Second,
			Type: string(rec.Type),
			Data: data,
		},
	}
}

// normalize runs rec through the same parse step as provider records so the
// two compare equal when they describe the same data.
func normalize(rec libdns.Record) libdns.RR {
	rr := rec.RR()
	rr.Type = strings.ToUpper(rr.Type)
	if rr.Name == "" {
		rr.Name = "@"
	}
	if parsed, err := rr.Parse(); err == nil {
		rr = parsed.RR()
	}
	return rr
}

func toCreateOpts(rr libdns.RR) (domain.CreateRecordOpts, error) {
	opts := domain.CreateRecordOpts{
		Type:    domain.RecordType(strings.ToUpper(rr.Type)),
		Content: rr.Data,
		TTL:     int(rr.TTL / time.Second),
	}
	if rr.Name != "@" {
		opts.Name = rr.Name
	}
	if opts.Type.HasPriority() {
		prio, rest, ok := strings.Cut(rr.Data, " ")
		n, err := strconv.Atoi(prio)
		if !ok || err != nil || n < 0 {
			return opts, errors.Errorf("%s record %q: data must start with a priority", opts.Type, rr.Name)
		}
		opts.Priority = n
		opts.Content = rest
	}
	return opts, nil
}

func toUpdateOpts(opts domain.CreateRecordOpts) domain.UpdateRecordOpts {
	return domain.UpdateRecordOpts{
		Name:     opts.Name,
		Type:     opts.Type,
		Content:  opts.Content,
		TTL:      opts.TTL,
		Priority: opts.Priority,
	}
}

type key struct {
	Name string
	Type string
}

func keyOf(rr libdns.RR) key {
	return key{Name: strings.ToLower(rr.Name), Type: strings.ToUpper(rr.Type)}
}

// same reports whether existing already holds want. A zero TTL in want
// matches any TTL.
func same(existing, want libdns.RR) bool {
	return keyOf(existing) == keyOf(want) &&
		existing.Data == want.Data &&
		(want.TTL == 0 || existing.TTL == want.TTL)
}

// matches applies libdns deletion semantics: empty type, zero TTL and empty
// data in filter act as wildcards; the name must always match.
func matches(existing, filter libdns.RR) bool {
	if !strings.EqualFold(existing.Name, filter.Name) {
		return false
	}
	if filter.Type != "" && !strings.EqualFold(existing.Type, filter.Type) {
		return false
	}
	if filter.TTL != 0 && existing.TTL != filter.TTL {
		return false
	}
	return filter.Data == "" || existing.Data == filter.Data
}
