package apierr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_StatusErrorAtAnyHTTPStatus(t *testing.T) {
	body := []byte(`{"status":"ERROR","message":"Invalid API key"}`)

	for _, status := range []int{200, 400, 401, 403, 500} {
		err := Normalize(status, body, nil)

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *Error, got %T (%v)", status, err, err)
		}
		if apiErr.Kind != KindAPI {
			t.Errorf("status %d: Kind = %v, want %v", status, apiErr.Kind, KindAPI)
		}
		if apiErr.Message != "Invalid API key" {
			t.Errorf("status %d: Message = %q, want %q", status, apiErr.Message, "Invalid API key")
		}
		if !errors.Is(err, ErrAPI) {
			t.Errorf("status %d: expected errors.Is(err, ErrAPI)", status)
		}
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("status %d: expected errors.Is(err, ErrUnauthorized)", status)
		}
	}
}

func TestNormalize_StatusErrorWithoutMessage(t *testing.T) {
	err := Normalize(http.StatusOK, []byte(`{"status":"ERROR"}`), nil)

	msg, ok := Message(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if msg != "Unknown API error" {
		t.Errorf("Message = %q, want %q", msg, "Unknown API error")
	}
}

func TestNormalize_NonJSONBody(t *testing.T) {
	bodies := []string{
		"<html>Bad Gateway</html>",
		"not json at all",
		`{"status":`,
	}
	for _, status := range []int{200, 502} {
		for _, body := range bodies {
			err := Normalize(status, []byte(body), nil)
			if KindOf(err) != KindSerialization {
				t.Errorf("Normalize(%d, %q): kind = %v, want serialization", status, body, KindOf(err))
			}
			if !errors.Is(err, ErrSerialization) {
				t.Errorf("Normalize(%d, %q): expected errors.Is(err, ErrSerialization)", status, body)
			}
		}
	}
}

func TestNormalize_Success(t *testing.T) {
	type pingResponse struct {
		Status string `json:"status"`
		YourIP string `json:"yourIp"`
	}

	var got pingResponse
	err := Normalize(http.StatusOK, []byte(`{"status":"SUCCESS","yourIp":"203.0.113.7"}`), &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := pingResponse{Status: "SUCCESS", YourIP: "203.0.113.7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_SuccessWithoutStatusField(t *testing.T) {
	type hello struct {
		Username string `json:"username"`
	}

	var got hello
	if err := Normalize(http.StatusOK, []byte(`{"username":"alice"}`), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q, want %q", got.Username, "alice")
	}
}

func TestNormalize_NonSuccessStatusWithMessage(t *testing.T) {
	err := Normalize(http.StatusNotFound, []byte(`{"message":"Not Found","details":"record 12 does not exist"}`), nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}

	want := &Error{
		Kind:       KindAPI,
		Message:    "Not Found",
		Details:    "record 12 does not exist",
		StatusCode: http.StatusNotFound,
	}
	if diff := cmp.Diff(want, apiErr, cmp.AllowUnexported(Error{}), cmpIgnoreClass); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
}

func TestNormalize_NonSuccessFallsBackToDetails(t *testing.T) {
	err := Normalize(http.StatusBadRequest, []byte(`{"details":"ttl must be at least 300"}`), nil)

	msg, ok := Message(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if msg != "ttl must be at least 300" {
		t.Errorf("Message = %q, want %q", msg, "ttl must be at least 300")
	}
}

func TestNormalize_EmptyBody(t *testing.T) {
	if err := Normalize(http.StatusNoContent, nil, nil); err != nil {
		t.Errorf("204 with empty body: unexpected error %v", err)
	}

	err := Normalize(http.StatusInternalServerError, []byte("  "), nil)
	msg, ok := Message(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if msg != "Internal Server Error" {
		t.Errorf("Message = %q, want %q", msg, "Internal Server Error")
	}
}

func TestNormalize_ShapeMismatch(t *testing.T) {
	var out struct {
		Records []string `json:"records"`
	}
	err := Normalize(http.StatusOK, []byte(`{"status":"SUCCESS","records":{"id":"1"}}`), &out)
	if KindOf(err) != KindSerialization {
		t.Errorf("kind = %v, want serialization (err: %v)", KindOf(err), err)
	}
}

func TestNormalize_NullStatusIsNotAFailure(t *testing.T) {
	if err := Normalize(http.StatusOK, []byte(`{"status":null,"message":null}`), nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNormalize_NonStringStatusIgnored(t *testing.T) {
	var out struct {
		Status int `json:"status"`
	}
	if err := Normalize(http.StatusOK, []byte(`{"status":3}`), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != 3 {
		t.Errorf("Status = %d, want 3", out.Status)
	}
}

func TestNormalize_TopLevelArray(t *testing.T) {
	var out []int
	if err := Normalize(http.StatusOK, []byte(`[1,2,3]`), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, out); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}

var cmpIgnoreClass = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".class"
}, cmp.Ignore())
