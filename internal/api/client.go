// Package api is the thin REST client every collection operation goes
// through. One generic request path, the uniform
// {success, data, message} envelope, and a small error taxonomy; no
// retries and no auth.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

// Collection path segments under the API base path.
const (
	CollectionEggProduction    = "egg-production"
	CollectionSalesOrders      = "sales-orders"
	CollectionFeedInventory    = "feed-inventory"
	CollectionTaskScheduling   = "task-scheduling"
	CollectionFinancialRecords = "financial-records"
)

// envelope is the uniform response shape of the backend.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to the farm backend. Safe for concurrent use.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
}

// NewClient builds a client rooted at baseURL (e.g.
// "http://localhost:5000/api").
func NewClient(baseURL string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:     restyClient,
		validate: validator.New(),
	}
}

// List fetches all records of a collection into out (a pointer to a
// slice).
func (c *Client) List(ctx context.Context, collection string, out any) error {
	return c.do(ctx, http.MethodGet, "/"+collection, nil, out)
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%s", collection, id), nil, out)
}

// Create posts a draft; the server assigns identity. The created
// record is decoded into out when non-nil.
func (c *Client) Create(ctx context.Context, collection string, draft, out any) error {
	if err := c.checkDraft(draft); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/"+collection, draft, out)
}

// Update replaces the full record at id.
func (c *Client) Update(ctx context.Context, collection, id string, record any) error {
	if err := c.checkDraft(record); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/%s/%s", collection, id), record, nil)
}

// Delete removes the record at id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%s", collection, id), nil, nil)
}

// Summary fetches the backend-computed aggregate for a collection.
func (c *Client) Summary(ctx context.Context, collection string, out any) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/summary", collection), nil, out)
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// SendContact posts a contact-form message.
func (c *Client) SendContact(ctx context.Context, msg any) error {
	if err := c.checkDraft(msg); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/contact", msg, nil)
}

// ContactTest probes the contact relay test endpoint.
func (c *Client) ContactTest(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/contact/test", nil, nil)
}

// checkDraft validates struct tags on the outgoing record so malformed
// drafts are rejected before a request is issued. Non-struct bodies
// pass through untouched.
func (c *Client) checkDraft(body any) error {
	if body == nil {
		return nil
	}
	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if err := c.validate.Struct(v.Interface()); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// do issues one request and decodes the envelope. All collection
// operations funnel through here.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if resp.StatusCode() >= http.StatusBadRequest || (decodeErr == nil && len(resp.Body()) > 0 && !env.Success) {
		message := env.Message
		if message == "" {
			message = GenericFailure
		}
		return &HTTPError{Status: resp.StatusCode(), Message: message}
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, decodeErr)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
