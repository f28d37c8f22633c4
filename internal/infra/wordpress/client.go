package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
)

const maxResponseBytes = 4 << 20

// Client talks to a WPGraphQL endpoint. It owns response-shape validation
// and HTML sanitization so handlers only ever see clean domain values.
type Client struct {
	endpoint  string
	http      *http.Client
	sanitizer *bluemonday.Policy
}

func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		endpoint:  endpoint,
		http:      httpClient,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// fetchGraphQL posts one query and returns the raw data document. All
// failure modes are folded into the package sentinels so callers can
// distinguish network, status, parse and GraphQL-level errors without
// string matching.
func (c *Client) fetchGraphQL(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", c.endpoint).Msg("content API transport failure")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Error().Err(err).Str("endpoint", c.endpoint).Msg("content API body read failure")
		return nil, fmt.Errorf("%w: reading body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Int("status", resp.StatusCode).Str("body", snippet(body)).Msg("content API returned non-success status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	// The hosting layer is known to serve its HTML error page with a 200.
	// Detect that explicitly instead of reporting a generic parse failure.
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html") {
		log.Error().Str("body", snippet(body)).Msg("content API returned HTML instead of JSON")
		return nil, fmt.Errorf("%w: got HTML where JSON was expected", ErrMalformedResponse)
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error().Err(err).Str("body", snippet(body)).Msg("content API returned unparseable JSON")
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		log.Error().Strs("errors", msgs).Msg("content API rejected query")
		return nil, fmt.Errorf("%w: %s", ErrQueryRejected, strings.Join(msgs, "; "))
	}

	return envelope.Data, nil
}

func snippet(body []byte) string {
	const max = 200
	if len(body) <= max {
		return string(body)
	}
	// Upstream error pages are Italian text; don't cut a rune in half.
	cut := max
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "..."
}
