package namecom

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nathanbeddoewebdev/registrar/internal/apierr"
	"nathanbeddoewebdev/registrar/internal/transport"
)

const (
	corePrefix = "/core/v1"
	domainsAPI = corePrefix + "/domains"

	// perPage is the page size requested from every list endpoint.
	perPage = 1000
)

func seg(s string) string {
	return url.PathEscape(s)
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", apierr.ErrInvalidRequest, field)
	}
	return nil
}

func domainPath(domain string) string {
	return domainsAPI + "/" + seg(domain)
}

func pageQuery(page int) url.Values {
	return url.Values{
		"page":    {strconv.Itoa(page)},
		"perPage": {strconv.Itoa(perPage)},
	}
}

func get(path string) transport.Request {
	return transport.Request{Method: http.MethodGet, Path: path}
}

func getPage(path string, page int) transport.Request {
	return transport.Request{Method: http.MethodGet, Path: path, Query: pageQuery(page)}
}

func withBody(method, path string, body any) transport.Request {
	return transport.Request{Method: method, Path: path, Body: body}
}

func del(path string) transport.Request {
	return transport.Request{Method: http.MethodDelete, Path: path}
}

func buildHello() transport.Request {
	return get(corePrefix + "/hello")
}

// --- Domains ---

func buildListDomains(page int) transport.Request {
	return getPage(domainsAPI, page)
}

type checkAvailabilityBody struct {
	DomainNames []string `json:"domainNames"`
}

func buildCheckAvailability(names []string) (transport.Request, error) {
	if len(names) == 0 {
		return transport.Request{}, fmt.Errorf("%w: at least one domain name is required", apierr.ErrInvalidRequest)
	}
	for i, name := range names {
		if err := required(fmt.Sprintf("domainNames[%d]", i), name); err != nil {
			return transport.Request{}, err
		}
	}
	return withBody(http.MethodPost, domainsAPI+":checkAvailability", checkAvailabilityBody{DomainNames: names}), nil
}

type createDomainBody struct {
	Domain struct {
		DomainName string `json:"domainName"`
	} `json:"domain"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	Years         int      `json:"years,omitempty"`
}

func buildCreateDomain(req CreateDomainRequest) (transport.Request, error) {
	if err := required("domainName", req.DomainName); err != nil {
		return transport.Request{}, err
	}
	if req.Years < 0 {
		return transport.Request{}, fmt.Errorf("%w: years must not be negative", apierr.ErrInvalidRequest)
	}
	var body createDomainBody
	body.Domain.DomainName = req.DomainName
	body.PurchasePrice = req.PurchasePrice
	body.Years = req.Years
	return withBody(http.MethodPost, domainsAPI, body), nil
}

func buildGetDomain(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return get(domainPath(domain)), nil
}

func buildUpdateDomain(domain string, req UpdateDomainRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if req.AutorenewEnabled == nil && req.Locked == nil && req.PrivacyEnabled == nil {
		return transport.Request{}, fmt.Errorf("%w: no domain settings to update", apierr.ErrInvalidRequest)
	}
	return withBody(http.MethodPatch, domainPath(domain), req), nil
}

func buildGetAuthCode(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return get(domainPath(domain) + ":getAuthCode"), nil
}

type nameserversBody struct {
	Nameservers []string `json:"nameservers"`
}

func buildSetNameservers(domain string, ns []string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if len(ns) == 0 {
		return transport.Request{}, fmt.Errorf("%w: at least one nameserver is required", apierr.ErrInvalidRequest)
	}
	for i, host := range ns {
		if err := required(fmt.Sprintf("nameservers[%d]", i), host); err != nil {
			return transport.Request{}, err
		}
	}
	return withBody(http.MethodPost, domainPath(domain)+":setNameservers", nameserversBody{Nameservers: ns}), nil
}

// --- DNS records ---

type recordBody struct {
	Host     string `json:"host,omitempty"`
	Type     string `json:"type"`
	Answer   string `json:"answer"`
	TTL      *int   `json:"ttl,omitempty"`
	Priority *int   `json:"priority,omitempty"`
}

func recordsPath(domain string) string {
	return domainPath(domain) + "/records"
}

func recordPath(domain string, id int) string {
	return recordsPath(domain) + "/" + strconv.Itoa(id)
}

func validRecordID(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: record id must be positive, got %d", apierr.ErrInvalidRequest, id)
	}
	return nil
}

func newRecordBody(req RecordRequest) (recordBody, error) {
	if err := required("type", req.Type); err != nil {
		return recordBody{}, err
	}
	if err := required("answer", req.Answer); err != nil {
		return recordBody{}, err
	}
	return recordBody{
		Host:     req.Host,
		Type:     req.Type,
		Answer:   req.Answer,
		TTL:      req.TTL,
		Priority: req.Priority,
	}, nil
}

func buildListRecords(domain string, page int) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return getPage(recordsPath(domain), page), nil
}

func buildGetRecord(domain string, id int) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := validRecordID(id); err != nil {
		return transport.Request{}, err
	}
	return get(recordPath(domain, id)), nil
}

func buildCreateRecord(domain string, req RecordRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	body, err := newRecordBody(req)
	if err != nil {
		return transport.Request{}, err
	}
	return withBody(http.MethodPost, recordsPath(domain), body), nil
}

func buildUpdateRecord(domain string, id int, req RecordRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := validRecordID(id); err != nil {
		return transport.Request{}, err
	}
	body, err := newRecordBody(req)
	if err != nil {
		return transport.Request{}, err
	}
	return withBody(http.MethodPut, recordPath(domain, id), body), nil
}

func buildDeleteRecord(domain string, id int) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := validRecordID(id); err != nil {
		return transport.Request{}, err
	}
	return del(recordPath(domain, id)), nil
}

// --- DNSSEC ---

type dnssecBody struct {
	KeyTag     int    `json:"keyTag"`
	Algorithm  int    `json:"algorithm"`
	DigestType int    `json:"digestType"`
	Digest     string `json:"digest"`
}

func dnssecPath(domain string) string {
	return domainPath(domain) + "/dnssec"
}

func buildListDNSSEC(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return get(dnssecPath(domain)), nil
}

func buildGetDNSSEC(domain, digest string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("digest", digest); err != nil {
		return transport.Request{}, err
	}
	return get(dnssecPath(domain) + "/" + seg(digest)), nil
}

func buildCreateDNSSEC(domain string, rec DNSSECRecord) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("digest", rec.Digest); err != nil {
		return transport.Request{}, err
	}
	if rec.Algorithm <= 0 || rec.DigestType <= 0 {
		return transport.Request{}, fmt.Errorf("%w: algorithm and digestType are required", apierr.ErrInvalidRequest)
	}
	return withBody(http.MethodPost, dnssecPath(domain), dnssecBody{
		KeyTag:     rec.KeyTag,
		Algorithm:  rec.Algorithm,
		DigestType: rec.DigestType,
		Digest:     rec.Digest,
	}), nil
}

func buildDeleteDNSSEC(domain, digest string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("digest", digest); err != nil {
		return transport.Request{}, err
	}
	return del(dnssecPath(domain) + "/" + seg(digest)), nil
}

// --- URL forwarding ---

type urlForwardCreateBody struct {
	DomainName string `json:"domainName"`
	Host       string `json:"host"`
	ForwardsTo string `json:"forwardsTo"`
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Meta       string `json:"meta,omitempty"`
}

type urlForwardUpdateBody struct {
	ForwardsTo string `json:"forwardsTo"`
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Meta       string `json:"meta,omitempty"`
}

func forwardingPath(domain string) string {
	return domainPath(domain) + "/url/forwarding"
}

func validForward(req URLForwardRequest) error {
	if err := required("forwardsTo", req.ForwardsTo); err != nil {
		return err
	}
	return required("type", req.Type)
}

func buildListURLForwards(domain string, page int) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return getPage(forwardingPath(domain), page), nil
}

func buildGetURLForward(domain, host string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("host", host); err != nil {
		return transport.Request{}, err
	}
	return get(forwardingPath(domain) + "/" + seg(host)), nil
}

func buildCreateURLForward(domain string, req URLForwardRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("host", req.Host); err != nil {
		return transport.Request{}, err
	}
	if err := validForward(req); err != nil {
		return transport.Request{}, err
	}
	return withBody(http.MethodPost, forwardingPath(domain), urlForwardCreateBody{
		DomainName: domain,
		Host:       req.Host,
		ForwardsTo: req.ForwardsTo,
		Type:       req.Type,
		Title:      req.Title,
		Meta:       req.Meta,
	}), nil
}

func buildUpdateURLForward(domain, host string, req URLForwardRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("host", host); err != nil {
		return transport.Request{}, err
	}
	if err := validForward(req); err != nil {
		return transport.Request{}, err
	}
	return withBody(http.MethodPut, forwardingPath(domain)+"/"+seg(host), urlForwardUpdateBody{
		ForwardsTo: req.ForwardsTo,
		Type:       req.Type,
		Title:      req.Title,
		Meta:       req.Meta,
	}), nil
}

func buildDeleteURLForward(domain, host string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("host", host); err != nil {
		return transport.Request{}, err
	}
	return del(forwardingPath(domain) + "/" + seg(host)), nil
}

// --- Vanity nameservers ---

type vanityCreateBody struct {
	Hostname string   `json:"hostname"`
	IPs      []string `json:"ips"`
}

type vanityUpdateBody struct {
	IPs []string `json:"ips"`
}

func vanityPath(domain string) string {
	return domainPath(domain) + "/vanity_nameservers"
}

func validIPs(ips []string) error {
	if len(ips) == 0 {
		return fmt.Errorf("%w: at least one IP address is required", apierr.ErrInvalidRequest)
	}
	for i, ip := range ips {
		if err := required(fmt.Sprintf("ips[%d]", i), ip); err != nil {
			return err
		}
	}
	return nil
}

func buildListVanity(domain string, page int) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return getPage(vanityPath(domain), page), nil
}

func buildGetVanity(domain, hostname string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("hostname", hostname); err != nil {
		return transport.Request{}, err
	}
	return get(vanityPath(domain) + "/" + seg(hostname)), nil
}

func buildCreateVanity(domain, hostname string, ips []string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("hostname", hostname); err != nil {
		return transport.Request{}, err
	}
	if err := validIPs(ips); err != nil {
		return transport.Request{}, err
	}
	return withBody(http.MethodPost, vanityPath(domain), vanityCreateBody{Hostname: hostname, IPs: ips}), nil
}

func buildUpdateVanity(domain, hostname string, ips []string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("hostname", hostname); err != nil {
		return transport.Request{}, err
	}
	if err := validIPs(ips); err != nil {
		return transport.Request{}, err
	}
	return withBody(http.MethodPut, vanityPath(domain)+"/"+seg(hostname), vanityUpdateBody{IPs: ips}), nil
}

func buildDeleteVanity(domain, hostname string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("hostname", hostname); err != nil {
		return transport.Request{}, err
	}
	return del(vanityPath(domain) + "/" + seg(hostname)), nil
}
