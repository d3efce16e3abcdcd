package services

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"
	"nathanbeddoewebdev/registrar/internal/util"
)

// DefaultTTL is the TTL applied when none is specified (matches Porkbun's minimum).
const DefaultTTL = 600

// validRecordTypes is the set of supported DNS record types.
var validRecordTypes = map[domain.RecordType]bool{
	domain.RecordTypeA:     true,
	domain.RecordTypeAAAA:  true,
	domain.RecordTypeCNAME: true,
	domain.RecordTypeAlias: true,
	domain.RecordTypeANAME: true,
	domain.RecordTypeTXT:   true,
	domain.RecordTypeNS:    true,
	domain.RecordTypeMX:    true,
	domain.RecordTypeSRV:   true,
	domain.RecordTypeTLSA:  true,
	domain.RecordTypeCAA:   true,
	domain.RecordTypeHTTPS: true,
	domain.RecordTypeSVCB:  true,
	domain.RecordTypeSSHFP: true,
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// normalizeDomain lowercases and strips any trailing dot from a domain name.
func normalizeDomain(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

func requireDomain(d string) (string, error) {
	d = normalizeDomain(d)
	if d == "" {
		return "", invalid("domain name is required")
	}
	if err := util.ValidateDomainName(d); err != nil {
		return "", invalid("%v", err)
	}
	return d, nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("record ID is required")
	}
	return nil
}

// normalizeSubdomain strips the root domain suffix from a subdomain if the
// user accidentally passes a fully-qualified name (e.g. "www.example.com"
// when the domain is "example.com"), and lowercases the result.
func normalizeSubdomain(sub, domainName string) string {
	sub = strings.TrimSpace(sub)
	sub = strings.TrimRight(sub, ".")
	sub = strings.ToLower(sub)

	// Strip ".domainName" suffix if present.
	suffix := "." + domainName
	if strings.HasSuffix(sub, suffix) {
		sub = sub[:len(sub)-len(suffix)]
	}
	// Also strip if the caller passed the bare domain as the subdomain.
	if sub == domainName || sub == "@" {
		sub = ""
	}

	return sub
}

func normalizeRecordType(t domain.RecordType) domain.RecordType {
	return domain.RecordType(strings.ToUpper(strings.TrimSpace(string(t))))
}

func normalizeContent(c string) string {
	return strings.TrimSpace(c)
}

// validateRecordType returns an error if t is not a supported record type.
func validateRecordType(t domain.RecordType) error {
	if !validRecordTypes[t] {
		return invalid("unsupported record type %q", t)
	}
	return nil
}

// validateContent catches obvious mismatches (e.g. a non-IP value for an A
// record) to give the user an early error. It is not exhaustive.
func validateContent(t domain.RecordType, content string) error {
	if content == "" {
		return invalid("record content cannot be empty")
	}

	switch t {
	case domain.RecordTypeA:
		addr, err := netip.ParseAddr(content)
		if err != nil || !addr.Is4() {
			return invalid("A record content must be a valid IPv4 address, got %q", content)
		}
	case domain.RecordTypeAAAA:
		addr, err := netip.ParseAddr(content)
		if err != nil || !addr.Is6() || addr.Is4In6() {
			return invalid("AAAA record content must be a valid IPv6 address, got %q", content)
		}
	}

	return nil
}

// normalizeNameservers lowercases each host, drops trailing dots and blanks
// and removes duplicates while keeping order.
func normalizeNameservers(ns []string) ([]string, error) {
	out := make([]string, 0, len(ns))
	seen := make(map[string]bool, len(ns))
	for _, n := range ns {
		n = normalizeDomain(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, invalid("at least one nameserver is required")
	}
	return out, nil
}

// validateTarget requires an absolute http or https URL.
func validateTarget(target string) error {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid("forward target must be an absolute http(s) URL, got %q", target)
	}
	return nil
}
