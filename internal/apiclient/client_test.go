package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grocerly/appcore/pkg/config"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(config.APIConfig{BaseURL: baseURL, Timeout: 2 * time.Second}, nil, metrics.NewRequestMetrics(prometheus.NewRegistry()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(config.APIConfig{}, nil, metrics.NewRequestMetrics(nil)); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestLogin_ParsesUserEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"message": "login successful",
			"user_data": {"id": "7", "name": "Asha", "token": "jwt-token"}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Login(context.Background(), LoginForm{Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Succeeded() || result.Payload.ID != 7 || result.Payload.Token != "jwt-token" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestLogin_ServerErrorBecomesFailedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status": "error", "message": "invalid email or password"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Login(context.Background(), LoginForm{Email: "a@example.com", Password: "bad"})
	if err != nil {
		t.Fatalf("an application-level rejection is not a transport error: %v", err)
	}
	if result.Succeeded() {
		t.Fatalf("expected failure result")
	}
	if result.Message != "invalid email or password" {
		t.Fatalf("server text must travel through, got %q", result.Message)
	}
}

func TestAddToCart_ExistsIsPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "exists", "message": "product is already in the cart"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.AddToCart(context.Background(), 7, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusExists {
		t.Fatalf("the exists outcome must survive as its own status, got %s", result.Status)
	}
	if !result.Succeeded() {
		t.Fatalf("exists counts as success")
	}
}

func TestSend_TransportErrorIsNormalized(t *testing.T) {
	// Point at a closed port.
	client := newTestClient(t, "http://127.0.0.1:1")

	_, err := client.FetchCart(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Kind() != pkgerrors.KindTransport {
		t.Fatalf("expected a normalized transport error, got %v", err)
	}
	if typed.Message() == "" {
		t.Fatalf("transport errors must carry a human-readable message")
	}
}

func TestSend_MalformedJSONIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchCart(context.Background(), 7)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Kind() != pkgerrors.KindTransport {
		t.Fatalf("expected transport error for unreadable body, got %v", err)
	}
}

func TestSend_SendsBearerToken(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status": "success", "cart_items": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetToken("session-token")
	if _, err := client.FetchCart(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bearer session-token" {
		t.Fatalf("expected bearer header, got %q", got)
	}

	client.ClearToken()
	if _, err := client.FetchCart(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("cleared token must not be sent, got %q", got)
	}
}

func TestSearchProducts_SetsQueryParams(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"status": "success", "products": [{"p_id": "1", "p_name": "Bananas", "p_price": "2.40"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	categoryID := int64(4)
	result, err := client.SearchProducts(context.Background(), CatalogQuery{CategoryID: &categoryID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "c_id=4" {
		t.Fatalf("expected category param, got %q", query)
	}
	if len(result.Payload) != 1 || result.Payload[0].Name != "Bananas" {
		t.Fatalf("unexpected payload: %+v", result.Payload)
	}

	if _, err := client.SearchProducts(context.Background(), CatalogQuery{Search: "milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "search=milk" {
		t.Fatalf("expected search param, got %q", query)
	}
}

func TestCatalogQueryCacheKey(t *testing.T) {
	categoryID := int64(4)
	if key := (CatalogQuery{CategoryID: &categoryID}).CacheKey(); key != "4" {
		t.Fatalf("expected numeric key, got %q", key)
	}
	if key := (CatalogQuery{Search: "milk"}).CacheKey(); key == "4" || key == "" {
		t.Fatalf("expected search sentinel, got %q", key)
	}
}
