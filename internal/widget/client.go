// Package widget talks to the Packeta widget API validating the pickup point
// a customer selected.
package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://widget.packeta.com"

const validatePath = "/v6/api/pps/api/widget/validate"

var ErrUnexpectedStatus = errors.New("unexpected widget API status")

type Point struct {
	ID                   string `json:"id"`
	CarrierID            string `json:"carrierId,omitempty"`
	CarrierPickupPointID string `json:"carrierPickupPointId,omitempty"`
}

type Options struct {
	Country    string  `json:"country"`
	Weight     float64 `json:"weight,omitempty"`
	IsCod      bool    `json:"isCod,omitempty"`
	CarrierIDs string  `json:"carriers,omitempty"`
	Language   string  `json:"language,omitempty"`
}

type Request struct {
	Point   Point   `json:"point"`
	Options Options `json:"options"`
}

type ValidationError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Result struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

// Message joins the error descriptions of an invalid result.
func (r Result) Message() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.Description)
	}
	return strings.Join(parts, "; ")
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Validate asks the widget API whether the point may be used for the given
// shipment options.
func (c *Client) Validate(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(struct {
		APIKey string `json:"apiKey"`
		Request
	}{APIKey: c.apiKey, Request: req})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal validation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validatePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("widget validate request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read widget response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode widget response: %w", err)
	}

	if !result.IsValid {
		c.logger.Info("Pickup point rejected by widget API",
			zap.String("point_id", req.Point.ID), zap.String("reason", result.Message()))
	}
	return &result, nil
}
