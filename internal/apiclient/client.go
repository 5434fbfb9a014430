// Package apiclient is the HTTP boundary to the remote storefront API. It is
// the only place that understands the legacy wire contract: form-encoded and
// multipart requests, JSON responses with a loose `status` string
// discriminator, and stringly-typed numeric fields. Everything it hands back
// is either a typed Result or a normalized error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/grocerly/appcore/pkg/config"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
	"github.com/grocerly/appcore/pkg/metrics"
)

type Client struct {
	httpClient *http.Client
	baseURL    string

	logg    *logger.Logger
	metrics *metrics.RequestMetrics

	mu    sync.RWMutex
	token string
}

// New builds the storefront API client from configuration.
func New(cfg config.APIConfig, logg *logger.Logger, reqMetrics *metrics.RequestMetrics) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		logg:       logg,
		metrics:    reqMetrics,
	}, nil
}

// SetToken stores the server-issued auth token sent on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken drops the stored auth token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// statusCarrier is implemented by every response envelope so the generic
// request helper can read the discriminator without knowing the payload.
type statusCarrier interface {
	wireStatus() string
	wireMessage() string
}

// statusEnvelope is embedded in every endpoint-specific envelope.
type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e statusEnvelope) wireStatus() string  { return e.Status }
func (e statusEnvelope) wireMessage() string { return e.Message }

type requestBody struct {
	contentType string
	reader      io.Reader
}

// formBody encodes fields as application/x-www-form-urlencoded.
func formBody(fields url.Values) requestBody {
	return requestBody{
		contentType: "application/x-www-form-urlencoded",
		reader:      strings.NewReader(fields.Encode()),
	}
}

// multipartBody encodes fields as multipart/form-data, the legacy API's
// preferred mutation encoding.
func multipartBody(fields map[string]string) (requestBody, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return requestBody{}, fmt.Errorf("writing form field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return requestBody{}, fmt.Errorf("closing multipart writer: %w", err)
	}
	return requestBody{contentType: writer.FormDataContentType(), reader: buf}, nil
}

// send performs one HTTP exchange and decodes the response into envelope.
// Every transport-level problem (dial failure, non-2xx without a parseable
// envelope, malformed JSON) comes back as a normalized transport error with
// a human-readable message; it never escapes as a raw *url.Error.
func (c *Client) send(ctx context.Context, endpoint, method, path string, query url.Values, body *requestBody, envelope statusCarrier) *pkgerrors.Error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = body.reader
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveDuration(endpoint, time.Since(started))
	if err != nil {
		c.metrics.IncFailure(endpoint, string(pkgerrors.KindTransport))
		if c.logg != nil {
			c.logg.Error(c.logg.WithOperation(ctx, endpoint), "storefront request failed", err)
		}
		return pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not reach the server, please try again")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		c.metrics.IncFailure(endpoint, string(pkgerrors.KindTransport))
		return pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not read the server response")
	}

	if err := json.Unmarshal(raw, envelope); err != nil {
		c.metrics.IncFailure(endpoint, string(pkgerrors.KindTransport))
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return pkgerrors.New(pkgerrors.KindTransport, fmt.Sprintf("server returned an unexpected response (HTTP %d)", resp.StatusCode))
		}
		return pkgerrors.Wrap(pkgerrors.KindTransport, err, "server returned an unreadable response")
	}

	if statusFromWire(envelope.wireStatus()) == StatusError {
		c.metrics.IncFailure(endpoint, string(pkgerrors.KindApplication))
	} else {
		c.metrics.IncSuccess(endpoint)
	}
	return nil
}
