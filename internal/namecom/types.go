package namecom

// Hello is the response of the connectivity check endpoint.
type Hello struct {
	Motd       string `json:"motd"`
	ServerName string `json:"serverName"`
	ServerTime string `json:"serverTime"`
	Username   string `json:"username"`
}

// Contact is one WHOIS contact attached to a domain.
type Contact struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Country     string `json:"country,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Fax         string `json:"fax,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Contacts groups the four WHOIS contact roles.
type Contacts struct {
	Registrant *Contact `json:"registrant,omitempty"`
	Admin      *Contact `json:"admin,omitempty"`
	Tech       *Contact `json:"tech,omitempty"`
	Billing    *Contact `json:"billing,omitempty"`
}

// Domain is a domain in a Name.com account.
type Domain struct {
	DomainName       string    `json:"domainName"`
	CreateDate       string    `json:"createDate"`
	ExpireDate       string    `json:"expireDate"`
	AutorenewEnabled bool      `json:"autorenewEnabled"`
	Locked           bool      `json:"locked"`
	PrivacyEnabled   bool      `json:"privacyEnabled"`
	Contacts         *Contacts `json:"contacts,omitempty"`
	Nameservers      []string  `json:"nameservers,omitempty"`
	RenewalPrice     *float64  `json:"renewalPrice,omitempty"`
}

// CreateDomainRequest registers a new domain. DomainName is required.
type CreateDomainRequest struct {
	DomainName string

	// Years defaults to 1 at the provider when zero.
	Years int

	// PurchasePrice must be supplied for premium names.
	PurchasePrice *float64
}

// CreateDomainResponse is returned after a successful registration.
type CreateDomainResponse struct {
	Domain    Domain  `json:"domain"`
	Order     int     `json:"order"`
	TotalPaid float64 `json:"totalPaid"`
}

// UpdateDomainRequest toggles domain settings. Nil fields are unchanged; at
// least one must be set.
type UpdateDomainRequest struct {
	AutorenewEnabled *bool `json:"autorenewEnabled,omitempty"`
	Locked           *bool `json:"locked,omitempty"`
	PrivacyEnabled   *bool `json:"privacyEnabled,omitempty"`
}

// AvailabilityResult is the availability of one checked name.
type AvailabilityResult struct {
	DomainName    string  `json:"domainName"`
	SLD           string  `json:"sld,omitempty"`
	TLD           string  `json:"tld,omitempty"`
	Purchasable   bool    `json:"purchasable"`
	Premium       bool    `json:"premium"`
	PurchasePrice float64 `json:"purchasePrice"`
	PurchaseType  string  `json:"purchaseType"`
	RenewalPrice  float64 `json:"renewalPrice"`
}

// DNSRecord is a DNS record as Name.com returns it. Host is empty for the
// apex and Priority is only set for MX and SRV records.
type DNSRecord struct {
	ID         int    `json:"id"`
	DomainName string `json:"domainName"`
	Host       string `json:"host,omitempty"`
	FQDN       string `json:"fqdn"`
	Type       string `json:"type"`
	Answer     string `json:"answer"`
	TTL        int    `json:"ttl"`
	Priority   *int   `json:"priority,omitempty"`
}

// RecordRequest creates or replaces a DNS record. Type and Answer are required.
type RecordRequest struct {
	Host   string
	Type   string
	Answer string

	// TTL in seconds; nil uses the provider default (300).
	TTL      *int
	Priority *int
}

// DNSSECRecord is a DS record. Records are addressed by digest.
type DNSSECRecord struct {
	DomainName string `json:"domainName,omitempty"`
	KeyTag     int    `json:"keyTag"`
	Algorithm  int    `json:"algorithm"`
	DigestType int    `json:"digestType"`
	Digest     string `json:"digest"`
}

// URLForward is a URL forwarding rule for one host.
type URLForward struct {
	DomainName string `json:"domainName"`
	Host       string `json:"host"`
	ForwardsTo string `json:"forwardsTo"`
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Meta       string `json:"meta,omitempty"`
}

// Forwarding types.
const (
	ForwardRedirect = "redirect"
	ForwardMasked   = "masked"
	Forward302      = "302"
)

// URLForwardRequest creates or replaces a forwarding rule. ForwardsTo and
// Type are required; Title and Meta only apply to masked forwards.
type URLForwardRequest struct {
	Host       string
	ForwardsTo string
	Type       string
	Title      string
	Meta       string
}

// VanityNameserver is a nameserver hostname under the domain with its glue IPs.
type VanityNameserver struct {
	DomainName string   `json:"domainName"`
	Hostname   string   `json:"hostname"`
	IPs        []string `json:"ips"`
}
