package domain

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeAlias RecordType = "ALIAS"
	RecordTypeANAME RecordType = "ANAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeHTTPS RecordType = "HTTPS"
	RecordTypeSVCB  RecordType = "SVCB"
	RecordTypeSSHFP RecordType = "SSHFP"
)

// HasPriority reports whether records of this type carry a priority value.
func (t RecordType) HasPriority() bool {
	return t == RecordTypeMX || t == RecordTypeSRV
}

// Record represents a single DNS record.
type Record struct {
	// ID is the provider-assigned record identifier.
	ID string `json:"id"`

	// Domain is the root domain this record belongs to (e.g. "example.com").
	Domain string `json:"domain"`

	// Name is the fully-qualified record name as returned by the provider
	// (e.g. "www.example.com" or "example.com" for a root record).
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// Content is the record value (IP address, hostname, text, etc.).
	Content string `json:"content"`

	// TTL is the time-to-live in seconds. The minimum is provider-dependent.
	TTL int `json:"ttl"`

	// Priority is only meaningful when Type.HasPriority() is true.
	Priority int `json:"priority"`

	// Notes is an optional human-readable annotation. Not every provider
	// supports notes; Name.com records always have none.
	Notes string `json:"notes"`
}

// Domain represents a domain name in the provider account.
type Domain struct {
	// Name is the registered domain name (e.g. "example.com").
	Name string `json:"name"`

	// Provider is the display name of the registrar holding the domain.
	Provider string `json:"provider,omitempty"`

	// Status is the current domain status (e.g. "ACTIVE"). Empty when the
	// provider does not report one.
	Status string `json:"status"`

	// TLD is the top-level domain suffix (e.g. "com").
	TLD string `json:"tld"`

	// CreateDate is when the domain was registered.
	CreateDate string `json:"create_date"`

	// ExpireDate is when the domain registration expires.
	ExpireDate string `json:"expire_date"`

	AutoRenew bool `json:"auto_renew"`
}

// Availability is the result of a domain availability check.
type Availability struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Premium   bool   `json:"premium"`

	// Price is the first-year registration price as reported by the
	// provider, in USD.
	Price string `json:"price,omitempty"`
}

// URLForward is a URL forwarding rule.
type URLForward struct {
	// ID identifies the rule for deletion. Porkbun assigns numeric IDs;
	// Name.com addresses rules by host, so there the ID is the host.
	ID string `json:"id"`

	Host      string `json:"host"`
	Target    string `json:"target"`
	Permanent bool   `json:"permanent"`
}
