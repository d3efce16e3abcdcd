package apierr

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const unknownAPIError = "Unknown API error"

// envelope picks out the fields providers use to report logical failures.
// Fields are decoded lazily so that unrelated "status" values of other
// types do not break the probe.
type envelope struct {
	Status  json.RawMessage `json:"status"`
	Message json.RawMessage `json:"message"`
	Details json.RawMessage `json:"details"`
}

// Normalize classifies a raw HTTP response and, on success, decodes body into
// out. out may be nil when the caller only cares about success.
//
// The same rules apply to every provider:
//   - an empty body is success for 2xx and an API failure otherwise
//   - a body that is not JSON is a serialization failure at any status
//   - a "status" string other than SUCCESS is an API failure at any status
//   - any other non-2xx status is an API failure using "message", then "details"
//   - a 2xx body that does not fit out is a serialization failure
func Normalize(status int, body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	ok := status >= 200 && status < 300

	if len(trimmed) == 0 {
		if ok {
			return nil
		}
		return API(status, statusText(status), "")
	}

	if !json.Valid(trimmed) {
		var v any
		err := json.Unmarshal(trimmed, &v)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return Serialization(status, err)
	}

	var env envelope
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return Serialization(status, err)
		}
	}

	message, _ := rawString(env.Message)
	details, _ := rawString(env.Details)

	if s, isString := rawString(env.Status); isString && !strings.EqualFold(s, "SUCCESS") {
		if message == "" {
			message = unknownAPIError
		}
		return API(status, message, details)
	}

	if !ok {
		switch {
		case message != "":
		case details != "":
			message = details
		default:
			message = statusText(status)
		}
		return API(status, message, details)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return Serialization(status, err)
	}
	return nil
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func statusText(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return unknownAPIError
}
