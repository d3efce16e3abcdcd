package porkbun

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"
)

// PingResponse is returned by the /ping endpoint.
type PingResponse struct {
	Status string `json:"status"`
	YourIP string `json:"yourIp"`
}

// TLDPricing holds the default prices for one TLD.
type TLDPricing struct {
	Registration string `json:"registration"`
	Renewal      string `json:"renewal"`
	Transfer     string `json:"transfer"`
}

// DNSRecord maps to the Porkbun DNS record object. Porkbun encodes every
// numeric field as a string.
type DNSRecord struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Content string  `json:"content"`
	TTL     string  `json:"ttl"`
	Prio    *string `json:"prio,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// CreateRecordRequest describes a new DNS record. Type and Content are required.
type CreateRecordRequest struct {
	// Name is the subdomain. Empty creates a record on the root domain; "*" is a wildcard.
	Name    string
	Type    string
	Content string

	// TTL in seconds; nil uses the provider default (600).
	TTL *int

	// Prio is only meaningful for MX and SRV records.
	Prio *int

	Notes *string
}

// EditRecordRequest changes fields of an existing record. Nil fields are left out
// of the request.
type EditRecordRequest struct {
	Name    *string
	Type    *string
	Content *string
	TTL     *int
	Prio    *int
	Notes   *string
}

// EditByNameTypeRequest replaces the content of every record matching a
// subdomain and type. Content is required.
type EditByNameTypeRequest struct {
	Content string
	TTL     *int
	Prio    *int
	Notes   *string
}

// CreateRecordResponse carries the ID Porkbun assigned to a new record.
type CreateRecordResponse struct {
	ID FlexInt `json:"id"`
}

// DNSSECRecord is a DS record registered at the registry. KeyTag, Alg,
// DigestType and Digest are required when creating one.
type DNSSECRecord struct {
	KeyTag          string `json:"keyTag"`
	Alg             string `json:"alg"`
	DigestType      string `json:"digestType"`
	Digest          string `json:"digest"`
	MaxSigLife      string `json:"maxSigLife,omitempty"`
	KeyDataFlags    string `json:"keyDataFlags,omitempty"`
	KeyDataProtocol string `json:"keyDataProtocol,omitempty"`
	KeyDataAlgo     string `json:"keyDataAlgo,omitempty"`
	KeyDataPubKey   string `json:"keyDataPubKey,omitempty"`
}

// dnssecRecordSet decodes the keyTag-keyed object Porkbun returns. An empty
// set is sent as a JSON array.
type dnssecRecordSet map[string]DNSSECRecord

func (s *dnssecRecordSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []DNSSECRecord
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		out := make(dnssecRecordSet, len(list))
		for _, rec := range list {
			out[rec.KeyTag] = rec
		}
		*s = out
		return nil
	}
	var m map[string]DNSSECRecord
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	*s = m
	return nil
}

// Label is a user-defined tag attached to a domain.
type Label struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// DomainInfo describes one domain in the account.
type DomainInfo struct {
	Domain       string  `json:"domain"`
	Status       string  `json:"status"`
	TLD          string  `json:"tld"`
	CreateDate   string  `json:"createDate"`
	ExpireDate   string  `json:"expireDate"`
	SecurityLock string  `json:"securityLock"`
	WhoisPrivacy string  `json:"whoisPrivacy"`
	AutoRenew    FlexInt `json:"autoRenew"`
	NotLocal     FlexInt `json:"notLocal"`
	Labels       []Label `json:"labels,omitempty"`
}

// FlexInt accepts both 1 and "1" on the wire.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(trimmed))
	if err != nil {
		return fmt.Errorf("porkbun: invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}

// URLForward is one URL forwarding rule.
type URLForward struct {
	ID          string `json:"id"`
	Subdomain   string `json:"subdomain"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	IncludePath string `json:"includePath"`
	Wildcard    string `json:"wildcard"`
}

// Forward types accepted by AddURLForward.
const (
	ForwardTemporary = "temporary"
	ForwardPermanent = "permanent"
)

// AddURLForwardRequest describes a new URL forward. Location and Type are required.
type AddURLForwardRequest struct {
	// Subdomain is empty to forward the root domain.
	Subdomain   string
	Location    string
	Type        string
	IncludePath bool
	Wildcard    bool
}

// PriceInfo is one line of additional pricing.
type PriceInfo struct {
	Type         string `json:"type"`
	Price        string `json:"price"`
	RegularPrice string `json:"regularPrice"`
}

// AdditionalPricing lists renewal and transfer prices for a checked domain.
type AdditionalPricing struct {
	Renewal  PriceInfo `json:"renewal"`
	Transfer PriceInfo `json:"transfer"`
}

// Availability is the result of a domain check.
type Availability struct {
	Avail          string             `json:"avail"`
	Type           string             `json:"type"`
	Price          string             `json:"price"`
	FirstYearPromo string             `json:"firstYearPromo"`
	RegularPrice   string             `json:"regularPrice"`
	Premium        string             `json:"premium"`
	Additional     *AdditionalPricing `json:"additional,omitempty"`
}

// Available reports whether the domain can be registered.
func (a Availability) Available() bool {
	return a.Avail == "yes"
}

// RateLimit describes the domain check quota.
type RateLimit struct {
	TTL             string `json:"TTL"`
	Limit           string `json:"limit"`
	Used            int    `json:"used"`
	NaturalLanguage string `json:"naturalLanguage"`
}

// CheckResponse is returned by the domain check endpoint.
type CheckResponse struct {
	Response Availability `json:"response"`
	Limits   RateLimit    `json:"limits"`
}

// GlueIPs are the addresses registered for one glue host.
type GlueIPs struct {
	V4 []netip.Addr `json:"v4"`
	V6 []netip.Addr `json:"v6"`
}

// GlueHost is one glue record. Porkbun sends each host as a
// [hostname, {"v4": [...], "v6": [...]}] pair.
type GlueHost struct {
	Hostname string
	IPs      GlueIPs
}

func (g *GlueHost) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("porkbun: glue host must be a [hostname, ips] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &g.Hostname); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &g.IPs)
}

// SSLBundle is the certificate bundle Porkbun issues for a domain, in PEM.
type SSLBundle struct {
	CertificateChain string `json:"certificatechain"`
	PrivateKey       string `json:"privatekey"`
	PublicKey        string `json:"publickey"`
}
