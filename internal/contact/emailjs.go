package contact

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

const (
	DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	DefaultTimeout  = 10 * time.Second

	// PlaceholderKey is the key shipped in templates before the owner
	// signs up. It counts as unconfigured.
	PlaceholderKey = "YOUR_PUBLIC_KEY"
)

type ServiceConfig struct {
	Endpoint   string
	PublicKey  string
	ServiceID  string
	TemplateID string
	Timeout    time.Duration
}

// Sender delivers a message through a remote mail service.
type Sender interface {
	Configured() bool
	Send(ctx context.Context, p Params) error
}

// Client posts messages to an EmailJS-compatible REST endpoint.
type Client struct {
	cfg  ServiceConfig
	http *http.Client
}

// NewHTTPClient returns an HTTP client that negotiates HTTP/2 over TLS and
// falls back to HTTP/1.1 for plain endpoints.
func NewHTTPClient(timeout time.Duration) (*http.Client, error) {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		TLSHandshakeTimeout: 5 * time.Second,
		IdleConnTimeout:     30 * time.Second,
	}
	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, fmt.Errorf("contact: configure http2: %w", err)
	}
	return &http.Client{Transport: tr, Timeout: timeout}, nil
}

// NewClient builds a client. A nil hc gets the default HTTP/2 client.
func NewClient(cfg ServiceConfig, hc *http.Client) (*Client, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if hc == nil {
		var err error
		hc, err = NewHTTPClient(cfg.Timeout)
		if err != nil {
			return nil, err
		}
	}
	return &Client{cfg: cfg, http: hc}, nil
}

func (c *Client) Configured() bool {
	return c.cfg.PublicKey != "" && c.cfg.PublicKey != PlaceholderKey
}

type sendRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	TemplateParams Params `json:"template_params"`
}

func (c *Client) Send(ctx context.Context, p Params) error {
	if !c.Configured() {
		return ErrUnconfigured
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: p,
	})
	if err != nil {
		return fmt.Errorf("contact: encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
