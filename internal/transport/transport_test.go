package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"nathanbeddoewebdev/registrar/internal/apierr"

	"github.com/google/go-cmp/cmp"
)

type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     map[string]any
	Header   http.Header
	Username string
	Password string
	HasAuth  bool
}

// newCaptureServer records the last request it received and replies with body.
func newCaptureServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Method = r.Method
		got.Path = r.URL.Path
		got.RawQuery = r.URL.RawQuery
		got.Header = r.Header.Clone()
		got.Username, got.Password, got.HasAuth = r.BasicAuth()

		data, _ := io.ReadAll(r.Body)
		got.Body = nil
		if len(data) > 0 {
			if err := json.Unmarshal(data, &got.Body); err != nil {
				t.Errorf("server: request body is not JSON: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestSend_BodyKeysMergedIntoBody(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusOK, `{"status":"SUCCESS"}`)
	c := New(srv.URL, BodyKeys{APIKey: "pk1_test", SecretAPIKey: "sk1_test"})

	body := map[string]any{"type": "A", "content": "1.2.3.4"}
	if _, err := c.Send(context.Background(), Request{Method: http.MethodPost, Path: "/dns/create/example.com", Body: body}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{
		"apikey":       "pk1_test",
		"secretapikey": "sk1_test",
		"type":         "A",
		"content":      "1.2.3.4",
	}
	if diff := cmp.Diff(want, got.Body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
	if got.Path != "/dns/create/example.com" {
		t.Errorf("path = %q, want %q", got.Path, "/dns/create/example.com")
	}
	if ct := got.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestSend_BodyKeysWithoutBody(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusOK, `{"status":"SUCCESS"}`)
	c := New(srv.URL, BodyKeys{APIKey: "key", SecretAPIKey: "secret"})

	if _, err := c.Send(context.Background(), Request{Method: http.MethodPost, Path: "/ping"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{"apikey": "key", "secretapikey": "secret"}
	if diff := cmp.Diff(want, got.Body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestSend_AnonymousSkipsCredential(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusOK, `{"status":"SUCCESS"}`)
	c := New(srv.URL, BodyKeys{APIKey: "key", SecretAPIKey: "secret"})

	_, err := c.Send(context.Background(), Request{
		Method:    http.MethodPost,
		Path:      "/pricing/get",
		Body:      struct{}{},
		Anonymous: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{}, got.Body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestSend_BasicAuthAndQuery(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusOK, `{"records":[]}`)
	c := New(srv.URL, BasicAuth{Username: "alice", Token: "tok"})

	_, err := c.Send(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/core/v1/domains/example.com/records",
		Query:  url.Values{"page": {"2"}, "perPage": {"1000"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.HasAuth || got.Username != "alice" || got.Password != "tok" {
		t.Errorf("basic auth = (%q, %q, %v), want (alice, tok, true)", got.Username, got.Password, got.HasAuth)
	}
	if got.Method != http.MethodGet {
		t.Errorf("method = %q, want GET", got.Method)
	}
	if got.RawQuery != "page=2&perPage=1000" {
		t.Errorf("query = %q, want %q", got.RawQuery, "page=2&perPage=1000")
	}
	if got.Body != nil {
		t.Errorf("expected no request body, got %v", got.Body)
	}
}

func TestSend_ReturnsRawStatusAndBody(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusBadRequest, `{"status":"ERROR","message":"Invalid API key"}`)
	c := New(srv.URL, BodyKeys{})

	resp, err := c.Send(context.Background(), Request{Method: http.MethodPost, Path: "/ping"})
	if err != nil {
		t.Fatalf("Send must not interpret the body, got error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if string(resp.Body) != `{"status":"ERROR","message":"Invalid API key"}` {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestDo_NormalizesAPIError(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusBadRequest, `{"status":"ERROR","message":"Invalid API key"}`)
	c := New(srv.URL, BodyKeys{})

	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/ping"}, nil)
	msg, ok := apierr.Message(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if msg != "Invalid API key" {
		t.Errorf("message = %q, want %q", msg, "Invalid API key")
	}
}

func TestSend_ConnectionRefusedIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := New(addr, BasicAuth{Username: "u", Token: "t"})
	_, err := c.Send(context.Background(), Request{Method: http.MethodGet, Path: "/core/v1/hello"})
	if !errors.Is(err, apierr.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestSend_TimeoutIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, BasicAuth{}, WithTimeout(50*time.Millisecond))
	_, err := c.Send(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})
	if apierr.KindOf(err) != apierr.KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestWithTimeout_KeepsCustomHTTPClient(t *testing.T) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	errNoRedirect := errors.New("no redirects")
	custom := &http.Client{
		Jar:           jar,
		CheckRedirect: func(*http.Request, []*http.Request) error { return errNoRedirect },
	}

	orders := map[string][]Option{
		"timeout first": {WithTimeout(5 * time.Second), WithHTTPClient(custom)},
		"client first":  {WithHTTPClient(custom), WithTimeout(5 * time.Second)},
	}
	for name, opts := range orders {
		t.Run(name, func(t *testing.T) {
			c := New("https://api.example.test", BasicAuth{}, opts...)
			if c.http.Timeout != 5*time.Second {
				t.Errorf("Timeout = %v, want 5s", c.http.Timeout)
			}
			if c.http.Jar != jar {
				t.Error("expected the cookie jar to be kept")
			}
			if c.http.CheckRedirect == nil || c.http.CheckRedirect(nil, nil) != errNoRedirect {
				t.Error("expected CheckRedirect to be kept")
			}
		})
	}

	if custom.Timeout != 0 {
		t.Errorf("caller's client was modified: Timeout = %v", custom.Timeout)
	}
}

func TestSend_ContextCancelledIsTransport(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK, `{}`)
	c := New(srv.URL, BasicAuth{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, Request{Method: http.MethodGet, Path: "/"})
	if !errors.Is(err, apierr.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected error to unwrap to context.Canceled, got %v", err)
	}
}

func TestSend_UnencodableBodyIsSerialization(t *testing.T) {
	c := New("http://127.0.0.1:0", BasicAuth{})
	_, err := c.Send(context.Background(), Request{Method: http.MethodPost, Path: "/", Body: map[string]any{"ch": make(chan int)}})
	if apierr.KindOf(err) != apierr.KindSerialization {
		t.Fatalf("expected serialization error, got %v", err)
	}
}

func TestBodyKeys_RejectsNonObjectBody(t *testing.T) {
	c := New("http://127.0.0.1:0", BodyKeys{APIKey: "k", SecretAPIKey: "s"})
	_, err := c.Send(context.Background(), Request{Method: http.MethodPost, Path: "/", Body: []string{"a"}})
	if apierr.KindOf(err) != apierr.KindSerialization {
		t.Fatalf("expected serialization error, got %v", err)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("https://api.porkbun.com/api/json/v3/", nil)
	if c.BaseURL() != "https://api.porkbun.com/api/json/v3" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}

	c = New("https://api.porkbun.com/api/json/v3", nil, WithBaseURL("http://localhost:8080/"))
	if c.BaseURL() != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}
