package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// Credential attaches provider authentication to an outgoing request. It
// receives the encoded JSON body (nil when the request has none) and returns
// the body that should actually be sent.
type Credential interface {
	Sign(req *http.Request, body []byte) ([]byte, error)
}

// BodyKeys embeds an API key pair in the JSON body of every request, the way
// Porkbun expects it.
type BodyKeys struct {
	APIKey       string
	SecretAPIKey string
}

var errBodyNotObject = errors.New("request body must be a JSON object to carry credentials")

// Sign merges "apikey" and "secretapikey" into the top-level JSON object.
// A missing body becomes an object that holds only the keys.
func (k BodyKeys) Sign(_ *http.Request, body []byte) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if trimmed[0] != '{' {
			return nil, errBodyNotObject
		}
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, err
		}
	}

	apiKey, err := json.Marshal(k.APIKey)
	if err != nil {
		return nil, err
	}
	secret, err := json.Marshal(k.SecretAPIKey)
	if err != nil {
		return nil, err
	}
	fields["apikey"] = apiKey
	fields["secretapikey"] = secret

	return json.Marshal(fields)
}

// BasicAuth sends a username and token as HTTP basic authentication, the way
// Name.com expects it.
type BasicAuth struct {
	Username string
	Token    string
}

// Sign sets the Authorization header and leaves the body untouched.
func (b BasicAuth) Sign(req *http.Request, body []byte) ([]byte, error) {
	req.SetBasicAuth(b.Username, b.Token)
	return body, nil
}
