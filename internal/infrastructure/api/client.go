// Package api provides the HTTP client for the external claims API. This is
// the only place request/response wire shapes are interpreted; callers get
// typed results or an error, never a raw body.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 10
)

// ErrBaseURLRequired is returned when the client is built without a base URL.
var ErrBaseURLRequired = errors.New("api: base URL required")

// Config holds client settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://example.com/api".
	BaseURL string

	// Timeout bounds each request. Zero means the default.
	Timeout time.Duration

	// HTTPClient overrides the underlying client, e.g. for tests.
	HTTPClient *http.Client
}

// Client is a typed claims API client over net/http.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a client from the config.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
	}, nil
}

// ListQuery carries list-request parameters: the paging cursor plus the
// active filter criteria flattened into query params.
type ListQuery struct {
	Page    int
	Limit   int
	Filters claims.ClaimFilters
}

// Values renders the query as URL parameters. Only set criteria travel.
func (q ListQuery) Values() url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))

	f := q.Filters
	if len(f.Status) > 0 {
		params.Set("status", joinStatuses(f.Status))
	}
	if len(f.Type) > 0 {
		params.Set("type", joinTypes(f.Type))
	}
	if f.DateFrom != nil {
		params.Set("dateFrom", f.DateFrom.UTC().Format(time.RFC3339))
	}
	if f.DateTo != nil {
		params.Set("dateTo", f.DateTo.UTC().Format(time.RFC3339))
	}
	if f.AmountMin != nil {
		params.Set("amountMin", strconv.FormatFloat(*f.AmountMin, 'f', -1, 64))
	}
	if f.AmountMax != nil {
		params.Set("amountMax", strconv.FormatFloat(*f.AmountMax, 'f', -1, 64))
	}
	if f.SearchTerm != "" {
		params.Set("searchTerm", f.SearchTerm)
	}
	if f.SortBy != "" {
		params.Set("sortBy", string(f.SortBy))
	}
	if f.SortOrder != "" {
		params.Set("sortOrder", string(f.SortOrder))
	}
	return params
}

// ListClaims fetches a page of claims. A malformed or non-JSON body is
// substituted with an empty page instead of returning a parse error; only
// transport and HTTP-status failures surface as errors.
func (c *Client) ListClaims(ctx context.Context, query ListQuery) (*claims.ClaimsResponse, error) {
	raw, err := c.getRaw(ctx, "/claims", query.Values())
	if err != nil {
		return nil, err
	}
	return tolerantPage(raw, query.Page, query.Limit), nil
}

// SearchClaims runs a free-text search. Shares the list response shape and
// its malformed-body tolerance.
func (c *Client) SearchClaims(ctx context.Context, term string) (*claims.ClaimsResponse, error) {
	params := url.Values{}
	params.Set("q", term)

	raw, err := c.getRaw(ctx, "/claims/search", params)
	if err != nil {
		return nil, err
	}
	return tolerantPage(raw, 1, defaultPageSize), nil
}

// GetClaim fetches one claim by ID.
func (c *Client) GetClaim(ctx context.Context, claimID string) (*claims.Claim, error) {
	var claim claims.Claim
	if err := c.doJSON(ctx, http.MethodGet, "/claims/"+url.PathEscape(claimID), nil, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// CreateClaim submits a new claim.
func (c *Client) CreateClaim(ctx context.Context, form claims.ClaimInitiationForm) (*claims.ClaimSubmissionResponse, error) {
	var resp claims.ClaimSubmissionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/claims", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateClaim sends a partial patch and returns the full updated record.
func (c *Client) UpdateClaim(ctx context.Context, claimID string, patch claims.ClaimPatch) (*claims.Claim, error) {
	var claim claims.Claim
	if err := c.doJSON(ctx, http.MethodPut, "/claims/"+url.PathEscape(claimID), patch, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// UploadPhoto uploads an image as multipart form data.
func (c *Client) UploadPhoto(ctx context.Context, claimID, fileName string, data []byte, damageArea claims.DamageArea) (*claims.Photo, error) {
	fields := map[string]string{}
	if damageArea != "" {
		fields["damageArea"] = string(damageArea)
	}

	var resp struct {
		Photo claims.Photo `json:"photo"`
	}
	path := "/claims/" + url.PathEscape(claimID) + "/photos"
	if err := c.doMultipart(ctx, path, "photo", fileName, data, fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Photo, nil
}

// UploadDocument uploads a document as multipart form data.
func (c *Client) UploadDocument(ctx context.Context, claimID, fileName string, data []byte, docType claims.DocumentType) (*claims.Document, error) {
	fields := map[string]string{"documentType": string(docType)}

	var resp struct {
		Document claims.Document `json:"document"`
	}
	path := "/claims/" + url.PathEscape(claimID) + "/documents"
	if err := c.doMultipart(ctx, path, "document", fileName, data, fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Document, nil
}

// FlagEmergency marks a claim as an emergency. A 2xx with no body is success.
func (c *Client) FlagEmergency(ctx context.Context, claimID string) error {
	payload := map[string]bool{"emergency": true}
	path := "/claims/" + url.PathEscape(claimID) + "/emergency"
	return c.doJSON(ctx, http.MethodPatch, path, payload, nil)
}

// RequestAIAnalysis asks the backend to analyze the given photos.
func (c *Client) RequestAIAnalysis(ctx context.Context, claimID string, photoIDs []string) (*claims.AIAssessment, error) {
	payload := map[string][]string{"photos": photoIDs}

	var assessment claims.AIAssessment
	path := "/claims/" + url.PathEscape(claimID) + "/ai-analysis"
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// getRaw performs a GET and returns the raw body of a 2xx response.
func (c *Client) getRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

// doJSON performs a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// doMultipart uploads one file plus extra form fields.
func (c *Client) doMultipart(ctx context.Context, path, fieldName, fileName string, data []byte, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("api: build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("api: build form: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("api: build form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("api: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

func joinStatuses(statuses []claims.ClaimStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func joinTypes(types []claims.ClaimType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// tolerantPage parses a list/search body, substituting an empty page when
// the body is not valid JSON or lacks a claims array.
func tolerantPage(raw []byte, page, limit int) *claims.ClaimsResponse {
	var parsed struct {
		Claims  []*claims.Claim `json:"claims"`
		Total   int             `json:"total"`
		Page    int             `json:"page"`
		Limit   int             `json:"limit"`
		HasMore bool            `json:"hasMore"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Claims == nil {
		return &claims.ClaimsResponse{
			Claims: []*claims.Claim{},
			Total:  0,
			Page:   page,
			Limit:  limit,
		}
	}
	return &claims.ClaimsResponse{
		Claims:  parsed.Claims,
		Total:   parsed.Total,
		Page:    parsed.Page,
		Limit:   parsed.Limit,
		HasMore: parsed.HasMore,
	}
}

// statusError derives a readable message from an error response body.
func statusError(status int, body []byte) error {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return errors.New(parsed.Message)
		}
		if parsed.Error != "" {
			return errors.New(parsed.Error)
		}
	}
	return fmt.Errorf("api: unexpected status %d", status)
}
