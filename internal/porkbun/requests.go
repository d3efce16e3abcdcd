package porkbun

import (
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"

	"nathanbeddoewebdev/registrar/internal/apierr"
	"nathanbeddoewebdev/registrar/internal/transport"
)

// Request builders. Each returns the wire request for one operation and
// rejects structurally incomplete input before anything is sent. Porkbun is
// POST-only; the credential is merged into the body by the transport.

func post(path string, body any) transport.Request {
	return transport.Request{Method: http.MethodPost, Path: path, Body: body}
}

func seg(s string) string {
	return url.PathEscape(s)
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", apierr.ErrInvalidRequest, field)
	}
	return nil
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// recordBody is the JSON shape of a new record. Porkbun wants ttl and prio
// as strings.
type recordBody struct {
	Name    string  `json:"name,omitempty"`
	Type    string  `json:"type,omitempty"`
	Content string  `json:"content,omitempty"`
	TTL     string  `json:"ttl,omitempty"`
	Prio    string  `json:"prio,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// editBody keeps a set-but-empty name, type or content so that an edit can
// move a record to the root.
type editBody struct {
	Name    *string `json:"name,omitempty"`
	Type    *string `json:"type,omitempty"`
	Content *string `json:"content,omitempty"`
	TTL     string  `json:"ttl,omitempty"`
	Prio    string  `json:"prio,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func buildPing() transport.Request {
	return post("/ping", nil)
}

func buildPricing() transport.Request {
	r := post("/pricing/get", struct{}{})
	r.Anonymous = true
	return r
}

func buildCreateRecord(domain string, req CreateRecordRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("type", req.Type); err != nil {
		return transport.Request{}, err
	}
	if err := required("content", req.Content); err != nil {
		return transport.Request{}, err
	}
	return post("/dns/create/"+seg(domain), recordBody{
		Name:    req.Name,
		Type:    req.Type,
		Content: req.Content,
		TTL:     optInt(req.TTL),
		Prio:    optInt(req.Prio),
		Notes:   req.Notes,
	}), nil
}

func buildEditRecord(domain, id string, req EditRecordRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("id", id); err != nil {
		return transport.Request{}, err
	}
	body := editBody{
		Name:    req.Name,
		Type:    req.Type,
		Content: req.Content,
		TTL:     optInt(req.TTL),
		Prio:    optInt(req.Prio),
		Notes:   req.Notes,
	}
	return post("/dns/edit/"+seg(domain)+"/"+seg(id), body), nil
}

func nameTypePath(op, domain, recordType, subdomain string) string {
	p := "/dns/" + op + "/" + seg(domain) + "/" + seg(recordType)
	if subdomain != "" {
		p += "/" + seg(subdomain)
	}
	return p
}

func buildEditByNameType(domain, recordType, subdomain string, req EditByNameTypeRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("type", recordType); err != nil {
		return transport.Request{}, err
	}
	if err := required("content", req.Content); err != nil {
		return transport.Request{}, err
	}
	return post(nameTypePath("editByNameType", domain, recordType, subdomain), recordBody{
		Content: req.Content,
		TTL:     optInt(req.TTL),
		Prio:    optInt(req.Prio),
		Notes:   req.Notes,
	}), nil
}

func buildDeleteRecord(domain, id string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("id", id); err != nil {
		return transport.Request{}, err
	}
	return post("/dns/delete/"+seg(domain)+"/"+seg(id), nil), nil
}

func buildDeleteByNameType(domain, recordType, subdomain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("type", recordType); err != nil {
		return transport.Request{}, err
	}
	return post(nameTypePath("deleteByNameType", domain, recordType, subdomain), nil), nil
}

func buildRetrieveRecords(domain, id string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	p := "/dns/retrieve/" + seg(domain)
	if id != "" {
		p += "/" + seg(id)
	}
	return post(p, nil), nil
}

func buildRetrieveByNameType(domain, recordType, subdomain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("type", recordType); err != nil {
		return transport.Request{}, err
	}
	return post(nameTypePath("retrieveByNameType", domain, recordType, subdomain), nil), nil
}

func buildCreateDNSSEC(domain string, rec DNSSECRecord) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	for _, f := range []struct{ name, value string }{
		{"keyTag", rec.KeyTag},
		{"alg", rec.Alg},
		{"digestType", rec.DigestType},
		{"digest", rec.Digest},
	} {
		if err := required(f.name, f.value); err != nil {
			return transport.Request{}, err
		}
	}
	return post("/dns/createDnssecRecord/"+seg(domain), rec), nil
}

func buildGetDNSSEC(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return post("/dns/getDnssecRecords/"+seg(domain), nil), nil
}

func buildDeleteDNSSEC(domain, keyTag string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("keyTag", keyTag); err != nil {
		return transport.Request{}, err
	}
	return post("/dns/deleteDnssecRecord/"+seg(domain)+"/"+seg(keyTag), nil), nil
}

type listAllBody struct {
	Start         string `json:"start"`
	IncludeLabels string `json:"includeLabels,omitempty"`
}

func buildListAll(start int, includeLabels bool) transport.Request {
	body := listAllBody{Start: strconv.Itoa(start)}
	if includeLabels {
		body.IncludeLabels = "yes"
	}
	return post("/domain/listAll", body)
}

type nameserversBody struct {
	NS []string `json:"ns"`
}

func buildUpdateNameservers(domain string, ns []string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if len(ns) == 0 {
		return transport.Request{}, fmt.Errorf("%w: at least one nameserver is required", apierr.ErrInvalidRequest)
	}
	for i, host := range ns {
		if err := required(fmt.Sprintf("ns[%d]", i), host); err != nil {
			return transport.Request{}, err
		}
	}
	return post("/domain/updateNs/"+seg(domain), nameserversBody{NS: ns}), nil
}

func buildGetNameservers(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/getNs/"+seg(domain), nil), nil
}

type urlForwardBody struct {
	Subdomain   string `json:"subdomain,omitempty"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	IncludePath string `json:"includePath"`
	Wildcard    string `json:"wildcard"`
}

func buildAddURLForward(domain string, req AddURLForwardRequest) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("location", req.Location); err != nil {
		return transport.Request{}, err
	}
	if err := required("type", req.Type); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/addUrlForward/"+seg(domain), urlForwardBody{
		Subdomain:   req.Subdomain,
		Location:    req.Location,
		Type:        req.Type,
		IncludePath: yesNo(req.IncludePath),
		Wildcard:    yesNo(req.Wildcard),
	}), nil
}

func buildGetURLForwarding(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/getUrlForwarding/"+seg(domain), nil), nil
}

func buildDeleteURLForward(domain, id string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("id", id); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/deleteUrlForward/"+seg(domain)+"/"+seg(id), nil), nil
}

func buildCheckDomain(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/checkDomain/"+seg(domain), nil), nil
}

type glueBody struct {
	IPs []netip.Addr `json:"ips"`
}

func buildGlue(op, domain, subdomain string, ips []netip.Addr) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("subdomain", subdomain); err != nil {
		return transport.Request{}, err
	}
	if len(ips) == 0 {
		return transport.Request{}, fmt.Errorf("%w: at least one IP address is required", apierr.ErrInvalidRequest)
	}
	for _, ip := range ips {
		if !ip.IsValid() {
			return transport.Request{}, fmt.Errorf("%w: zero IP address", apierr.ErrInvalidRequest)
		}
	}
	return post("/domain/"+op+"/"+seg(domain)+"/"+seg(subdomain), glueBody{IPs: ips}), nil
}

func buildDeleteGlue(domain, subdomain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	if err := required("subdomain", subdomain); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/deleteGlue/"+seg(domain)+"/"+seg(subdomain), nil), nil
}

func buildGetGlue(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return post("/domain/getGlue/"+seg(domain), nil), nil
}

func buildRetrieveSSL(domain string) (transport.Request, error) {
	if err := required("domain", domain); err != nil {
		return transport.Request{}, err
	}
	return post("/ssl/retrieve/"+seg(domain), nil), nil
}
