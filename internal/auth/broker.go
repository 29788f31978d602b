// Package auth exchanges a long-lived provider credential for a
// short-lived bearer token, caching tokens per session id.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/vtt-importer/internal/cache"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
)

// DefaultTokenTTL keeps tokens for a few minutes; the token service
// issues them with a short lifetime anyway.
const DefaultTokenTTL = 5 * time.Minute

// HTTPDoer is the slice of http.Client the broker needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Broker exchanges credentials for bearer tokens.
//
// GetBearerToken never fails loudly: every failure mode resolves to an
// empty token, and callers must treat "" as authentication failed.
type Broker struct {
	httpClient HTTPDoer
	cache      cache.Cache[string]
	endpoint   string
	fallback   string
}

// Config holds the dependencies for a Broker
type Config struct {
	HTTPClient HTTPDoer
	Cache      cache.Cache[string]

	// Endpoint is the token exchange URL
	Endpoint string

	// FallbackCredential substitutes for an absent credential, when configured
	FallbackCredential string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTPClient == nil {
		vb.RequiredField("HTTPClient")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}
	if c.Endpoint == "" {
		vb.RequiredField("Endpoint")
	}

	return vb.Build()
}

// NewBroker creates a token broker with the provided dependencies
func NewBroker(cfg *Config) (*Broker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Broker{
		httpClient: cfg.HTTPClient,
		cache:      cfg.Cache,
		endpoint:   cfg.Endpoint,
		fallback:   cfg.FallbackCredential,
	}, nil
}

type tokenRequest struct {
	Cobalt string `json:"cobalt"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// GetBearerToken resolves a bearer token for the given session id. An
// empty result means authentication failed; the caller must not
// proceed with fetches that require it.
func (b *Broker) GetBearerToken(ctx context.Context, id, credential string) string {
	if entry, ok := b.cache.Exists(ctx, id); ok {
		return entry.Data
	}

	cred := credential
	if cred == "" {
		cred = b.fallback
	}
	if strings.TrimSpace(cred) == "" {
		slog.Debug("auth: no usable credential", "session_id", id)
		return ""
	}
	if !embeddable(cred) {
		slog.Warn("auth: credential is not embeddable as a string payload", "session_id", id)
		return ""
	}

	payload, err := json.Marshal(tokenRequest{Cobalt: cred})
	if err != nil {
		slog.Warn("auth: failed to encode credential", "session_id", id, "error", err)
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		slog.Warn("auth: failed to build token request", "session_id", id, "error", err)
		return ""
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		slog.Warn("auth: token exchange failed", "session_id", id, "error", err)
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("auth: token service rejected credential",
			"session_id", id,
			"status", resp.StatusCode,
		)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		slog.Warn("auth: failed to read token response", "session_id", id, "error", err)
		return ""
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil || tr.Token == "" {
		slog.Warn("auth: token response missing token field", "session_id", id)
		return ""
	}

	b.cache.Add(ctx, id, tr.Token)
	return tr.Token
}

// embeddable reports whether the credential can travel as a JSON
// string payload.
func embeddable(cred string) bool {
	if !utf8.ValidString(cred) {
		return false
	}
	for _, r := range cred {
		if r == '\n' || r == '\r' || r == 0 {
			return false
		}
	}
	return true
}
