package dhis2

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dsadmin/logging"
)

// ImportStrategy selects how a metadata post is applied by the server.
type ImportStrategy string

const (
	// ImportStrategyCreateAndUpdate is the server default for saves.
	ImportStrategyCreateAndUpdate ImportStrategy = "CREATE_AND_UPDATE"
	// ImportStrategyDelete turns a metadata post into a removal.
	ImportStrategyDelete ImportStrategy = "DELETE"
)

// ErrKeyNotFound is returned by GetDataStoreValue when the namespace has no
// value under the requested key.
var ErrKeyNotFound = errors.New("datastore key not found")

// Client abstracts the DHIS2 Web API operations this service depends on.
// There is no DHIS2 SDK for Go, so the implementation wraps net/http with
// basic auth and typed JSON shapes; repositories stay free of HTTP details.
type Client interface {
	// Metadata queries
	GetDataSets(ctx context.Context, query Query) (*DataSetsResponse, error)
	GetCategoryOptions(ctx context.Context, query Query) (*CategoryOptionsResponse, error)
	GetAttributes(ctx context.Context, query Query) (*AttributesResponse, error)
	GetCategories(ctx context.Context, query Query) (*CategoriesResponse, error)
	GetDataElementGroupSets(ctx context.Context, query Query) (*DataElementGroupSetsResponse, error)
	GetDataSetsOwner(ctx context.Context, query Query) (*DataSetsOwnerResponse, error)

	// Metadata writes
	PostMetadata(ctx context.Context, payload any, strategy ImportStrategy) (*MetadataResponse, error)

	// Keyed persistent namespace store
	GetDataStoreValue(ctx context.Context, namespace, key string, out any) error

	// Sharing search
	SearchSharing(ctx context.Context, key string) (*SharingSearchResponse, error)

	// Current user
	GetMe(ctx context.Context) (*D2User, error)
}

// Config carries the connection settings for a DHIS2 instance.
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// HTTPClient is the production Client backed by net/http.
type HTTPClient struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	logger   *logging.Logger
}

// NewClient creates a DHIS2 API client from connection settings.
func NewClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: timeout},
		logger:   logging.Default().WithComponent("dhis2_client"),
	}
}

func (c *HTTPClient) GetDataSets(ctx context.Context, query Query) (*DataSetsResponse, error) {
	var out DataSetsResponse
	if err := c.getJSON(ctx, "/api/dataSets.json", query.Values(), &out); err != nil {
		return nil, fmt.Errorf("get dataSets: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetCategoryOptions(ctx context.Context, query Query) (*CategoryOptionsResponse, error) {
	var out CategoryOptionsResponse
	if err := c.getJSON(ctx, "/api/categoryOptions.json", query.Values(), &out); err != nil {
		return nil, fmt.Errorf("get categoryOptions: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetAttributes(ctx context.Context, query Query) (*AttributesResponse, error) {
	var out AttributesResponse
	if err := c.getJSON(ctx, "/api/attributes.json", query.Values(), &out); err != nil {
		return nil, fmt.Errorf("get attributes: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetCategories(ctx context.Context, query Query) (*CategoriesResponse, error) {
	var out CategoriesResponse
	if err := c.getJSON(ctx, "/api/categories.json", query.Values(), &out); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetDataElementGroupSets(ctx context.Context, query Query) (*DataElementGroupSetsResponse, error) {
	var out DataElementGroupSetsResponse
	if err := c.getJSON(ctx, "/api/dataElementGroupSets.json", query.Values(), &out); err != nil {
		return nil, fmt.Errorf("get dataElementGroupSets: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetDataSetsOwner(ctx context.Context, query Query) (*DataSetsOwnerResponse, error) {
	var out DataSetsOwnerResponse
	if err := c.getJSON(ctx, "/api/dataSets.json", query.Values(), &out); err != nil {
		return nil, fmt.Errorf("get dataSets owner fields: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) PostMetadata(ctx context.Context, payload any, strategy ImportStrategy) (*MetadataResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode metadata payload: %w", err)
	}

	values := url.Values{}
	if strategy != "" && strategy != ImportStrategyCreateAndUpdate {
		values.Set("importStrategy", string(strategy))
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/metadata", values, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out MetadataResponse
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("post metadata: %w", err)
	}
	if out.Status != "OK" {
		return &out, fmt.Errorf("post metadata: import status %s", out.Status)
	}
	return &out, nil
}

func (c *HTTPClient) GetDataStoreValue(ctx context.Context, namespace, key string, out any) error {
	path := fmt.Sprintf("/api/dataStore/%s/%s", url.PathEscape(namespace), url.PathEscape(key))
	if err := c.getJSON(ctx, path, nil, out); err != nil {
		return fmt.Errorf("get dataStore %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (c *HTTPClient) SearchSharing(ctx context.Context, key string) (*SharingSearchResponse, error) {
	values := url.Values{}
	values.Set("key", key)

	var out SharingSearchResponse
	if err := c.getJSON(ctx, "/api/sharing/search", values, &out); err != nil {
		return nil, fmt.Errorf("sharing search: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetMe(ctx context.Context) (*D2User, error) {
	values := url.Values{}
	values.Set("fields", "id,displayName,username")

	var out D2User
	if err := c.getJSON(ctx, "/api/me.json", values, &out); err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, values url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, values, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, values url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	c.logger.DHIS2("request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", res.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if res.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, res.Body)
		return ErrKeyNotFound
	}
	// Metadata imports report conflicts with a 409 but still carry a
	// decodable import summary.
	if res.StatusCode >= 400 && res.StatusCode != http.StatusConflict {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, res.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
