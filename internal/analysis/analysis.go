// Package analysis sends images to the image-understanding endpoint and
// returns the model's free-text analysis.
package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sef-community/sefctl/internal/config"
)

// MIMEType is sent for every image, whatever its actual encoding.
const MIMEType = "image/jpeg"

// maxErrorBody bounds how much of a failed response body ends up in an error.
const maxErrorBody = 512

// Sentinel errors for analysis requests.
var (
	ErrBusy     = errors.New("an analysis is already in progress")
	ErrRequest  = errors.New("analysis request failed")
	ErrResponse = errors.New("unexpected analysis response")
)

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Requester issues analysis requests. At most one request started with Start
// is in flight at a time.
type Requester struct {
	cfg     config.AnalysisConfig
	client  *http.Client
	pending atomic.Bool
}

// Option customizes a Requester.
type Option func(*Requester)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Requester) { r.client = c }
}

// New creates a Requester for the given endpoint configuration.
func New(cfg config.AnalysisConfig, opts ...Option) *Requester {
	if cfg.Prompt == "" {
		cfg.Prompt = config.DefaultPrompt
	}
	r := &Requester{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = &http.Client{Timeout: cfg.Timeout}
	}
	return r
}

// Request analyzes the image at imagePath and returns the model text.
func (r *Requester) Request(ctx context.Context, imagePath string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: r.cfg.Prompt},
				{InlineData: &inlineData{MIMEType: MIMEType, Data: base64.StdEncoding.EncodeToString(data)}},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint, err := r.endpointURL()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequest, redact(err.Error(), r.cfg.APIKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: %s: %s", ErrRequest, resp.Status, strings.TrimSpace(string(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding body: %v", ErrResponse, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrResponse)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// Analyze is Request with the error folded into the result: it returns either
// the model text or a string starting with "Error:".
func (r *Requester) Analyze(ctx context.Context, imagePath string) string {
	text, err := r.Request(ctx, imagePath)
	return Result{Text: text, Err: err}.Display()
}

func (r *Requester) endpointURL() (string, error) {
	u, err := url.Parse(r.cfg.Endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: invalid endpoint: %v", ErrRequest, err)
	}
	q := u.Query()
	q.Set("key", r.cfg.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redact keeps the API key out of transport errors, which quote the URL.
func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, url.QueryEscape(secret), "REDACTED")
}
