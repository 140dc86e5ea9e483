package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// API is the typed contract with the remote inventory service, one method per
// endpoint. Methods returning a document fail on any non-2xx status; the two
// auth methods instead return an AuthResponse so the caller can tell a 4xx
// with a readable error body apart from a network failure.
type API interface {
	ListProducts(ctx context.Context) (*ListDocument[ProductResource], error)
	GetProduct(ctx context.Context, id int) (*ProductDocument, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*ProductDocument, error)
	UpdateProduct(ctx context.Context, id int, req ProductRequest) (*ProductDocument, error)
	DeleteProduct(ctx context.Context, id int) error

	ListUsers(ctx context.Context) (*ListDocument[UserResource], error)
	GetUser(ctx context.Context, id int) (*UserDocument, error)
	RegisterUser(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	LoginUser(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	UpdateUser(ctx context.Context, id int, req RegisterRequest) (*UserDocument, error)
	DeleteUser(ctx context.Context, id int) error
}

// AuthResponse is the structured result of the register and login endpoints.
// A non-2xx status is not an error at this level: StatusCode and ErrorBody
// carry what the server said, and Body stays nil.
type AuthResponse struct {
	StatusCode int
	Header     http.Header
	Body       *UserDocument
	ErrorBody  []byte
}

// OK reports whether the response carried a 2xx status.
func (r *AuthResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// statusError is the internal marker for a non-2xx response on the plain
// document endpoints. The repositories translate it into a domain error.
type statusError struct {
	Code int
	Body []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Options configures the HTTP client.
type Options struct {
	// BaseURL is the root of the API, e.g. "https://api.example.com".
	BaseURL string
	// Timeout bounds each request end to end. Defaults to 30s.
	Timeout time.Duration
	// Logger receives request/response diagnostics.
	Logger zerolog.Logger
}

// HTTPClient implements API over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewHTTPClient builds an HTTPClient with the interceptor chain (request
// logging and metrics) installed on the transport.
func NewHTTPClient(opts Options) *HTTPClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: newInstrumentedTransport(http.DefaultTransport, opts.Logger),
		},
		logger: opts.Logger,
	}
}

func (c *HTTPClient) ListProducts(ctx context.Context) (*ListDocument[ProductResource], error) {
	var doc ListDocument[ProductResource]
	if err := c.do(ctx, http.MethodGet, "/v1/products", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id int) (*ProductDocument, error) {
	var doc ProductDocument
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/products/%d", id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, req ProductRequest) (*ProductDocument, error) {
	var doc ProductDocument
	if err := c.do(ctx, http.MethodPost, "/v1/products", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id int, req ProductRequest) (*ProductDocument, error) {
	var doc ProductDocument
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/products/%d", id), req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/products/%d", id), nil, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) (*ListDocument[UserResource], error) {
	var doc ListDocument[UserResource]
	if err := c.do(ctx, http.MethodGet, "/v1/users", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int) (*UserDocument, error) {
	var doc UserDocument
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%d", id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) RegisterUser(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.doAuth(ctx, "/v1/users", req)
}

func (c *HTTPClient) LoginUser(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.doAuth(ctx, "/v1/users/login", req)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int, req RegisterRequest) (*UserDocument, error) {
	var doc UserDocument
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d", id), req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d", id), nil, nil)
}

// do executes one request against path. A non-2xx status becomes a
// statusError; when out is non-nil the 2xx body is decoded into it.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{Code: resp.StatusCode, Body: raw}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// doAuth executes a register/login request and always returns the structured
// response for any status the server produced; only transport failures and
// unreadable 2xx bodies surface as errors.
func (c *HTTPClient) doAuth(ctx context.Context, path string, body any) (*AuthResponse, error) {
	resp, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	out := &AuthResponse{StatusCode: resp.StatusCode, Header: resp.Header}
	if !out.OK() {
		out.ErrorBody = raw
		return out, nil
	}

	var doc UserDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out.Body = &doc
	return out, nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}
