// Package hf is a client for a Hugging Face text-classification inference
// endpoint serving a binary sentiment model (DistilBERT SST-2 or compatible).
// It backs the analyzer's local statistical capability; when the endpoint is
// unreachable at construction the caller runs without it.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
)

var (
	ErrMissingEndpoint = errors.New("inference endpoint URL not configured")
	ErrUnavailable     = errors.New("inference endpoint unavailable")
	ErrEmptyResponse   = errors.New("inference endpoint returned no predictions")
)

const inferenceTimeout = 15 * time.Second

// Client calls a text-classification inference endpoint. Safe for concurrent
// use; no state is mutated after construction.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewClient builds a client and probes the endpoint with a one-word
// classification. A failed probe is a construction-time error so the caller
// can fall back to remote-only classification once, not per request.
// The token is optional; when set it is sent as a bearer credential.
func NewClient(endpoint, token string) (*Client, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	c := &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: inferenceTimeout},
	}

	ctx, cancel := context.WithTimeout(context.Background(), inferenceTimeout)
	defer cancel()
	if _, err := c.Classify(ctx, "ok"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return c, nil
}

// Classify sends text to the endpoint and returns the highest-scoring
// prediction. Implements sentiment.BinaryClassifier.
func (c *Client) Classify(ctx context.Context, text string) (sentiment.Prediction, error) {
	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return sentiment.Prediction{}, fmt.Errorf("inference endpoint returned %d: %s", resp.StatusCode, respBody)
	}

	best, err := parsePredictions(respBody)
	if err != nil {
		return sentiment.Prediction{}, err
	}
	return sentiment.Prediction{Label: best.Label, Score: best.Score}, nil
}

// parsePredictions accepts both response shapes served by HF inference
// deployments: [[{label,score}...]] for a single input, or a flat
// [{label,score}...]. The highest-scoring candidate wins.
func parsePredictions(body []byte) (prediction, error) {
	var nested [][]prediction
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return bestOf(nested[0])
	}

	var flat []prediction
	if err := json.Unmarshal(body, &flat); err == nil {
		return bestOf(flat)
	}

	return prediction{}, fmt.Errorf("unexpected inference response: %s", body)
}

func bestOf(preds []prediction) (prediction, error) {
	if len(preds) == 0 {
		return prediction{}, ErrEmptyResponse
	}
	best := preds[0]
	for _, p := range preds[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best, nil
}
