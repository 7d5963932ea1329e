// Package gateway wraps the external REST backend and the auth provider
// behind typed clients. Every operation resolves to a Result rather than an
// error: a failed fetch must never surface as a panic or an unhandled error
// in the rendering layer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"food-ordering-web/cache"
	"food-ordering-web/models"
)

// HTTPDoer lets tests substitute the transport
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthContext is the caller's opaque credential blob: the Cookie header of
// the inbound request, forwarded verbatim to authenticated endpoints. Passed
// explicitly so calls stay testable in isolation.
type AuthContext struct {
	Cookie string
}

// AuthFromRequest lifts the session cookies off an inbound request
func AuthFromRequest(r *http.Request) AuthContext {
	return AuthContext{Cookie: r.Header.Get("Cookie")}
}

func (a AuthContext) apply(req *http.Request) {
	if a.Cookie != "" {
		req.Header.Set("Cookie", a.Cookie)
	}
}

// Fault is the uniform error shape carried by failed results
type Fault struct {
	Message string `json:"message"`
}

// Result resolves to exactly one of Data or Err. Meta is populated on list
// reads whose endpoint paginates.
type Result[T any] struct {
	Data *T
	Meta *models.Meta
	Err  *Fault
}

// OK reports whether the call produced data
func (r Result[T]) OK() bool {
	return r.Err == nil
}

func ok[T any](v *T, meta *models.Meta) Result[T] {
	return Result[T]{Data: v, Meta: meta}
}

func fail[T any](message string) Result[T] {
	return Result[T]{Err: &Fault{Message: message}}
}

// CacheMode mirrors the fetch cache directives of the original frontend
type CacheMode string

const (
	CacheNoStore CacheMode = "no-store"
	CacheForce   CacheMode = "force-cache"
)

// FetchOptions are per-call caching directives for reads. The zero value
// means no-store: every read hits the backend.
type FetchOptions struct {
	Cache      CacheMode
	Revalidate time.Duration
}

func (o *FetchOptions) cached() bool {
	return o != nil && o.Cache == CacheForce
}

// Client is the shared HTTP core under every domain client
type Client struct {
	baseURL string
	http    HTTPDoer
	cache   *cache.Cache
}

// NewClient builds a client for the given base URL. A nil doer gets a
// default transport with a 30 second timeout; a nil cache disables
// force-cache reads.
func NewClient(baseURL string, doer HTTPDoer, store *cache.Cache) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    doer,
		cache:   store,
	}
}

// do issues one HTTP request and returns the status and raw body. Transport
// and body-read failures come back as err; HTTP-level failures do not.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, auth AuthContext) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	auth.apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, raw, nil
}

// getJSON performs a tagged read. With force-cache and a configured cache the
// enveloped body is served through the tag store, keyed by the full URL so
// distinct filters cache independently while sharing one invalidation tag.
// Only successful envelopes are stored: an error response is returned to the
// caller but never cached, so a recovered backend is refetched immediately.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values, auth AuthContext, opts *FetchOptions, tag string, failMsg string) Result[T] {
	useCache := opts.cached() && c.cache != nil && tag != ""

	key := c.baseURL + path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	if useCache {
		if raw, ok := c.cache.Lookup(ctx, key); ok {
			return decodeEnvelope[T](raw, failMsg)
		}
	}

	status, raw, err := c.do(ctx, http.MethodGet, path, query, nil, auth)
	if err != nil {
		return fail[T](failMsg)
	}
	if status >= http.StatusBadRequest {
		return fail[T](envelopeMessage(raw, failMsg))
	}

	res := decodeEnvelope[T](raw, failMsg)
	if useCache && res.OK() {
		c.cache.Put(ctx, tag, key, raw, opts.Revalidate)
	}
	return res
}

// writeJSON performs one mutation request and normalizes the response
func writeJSON[T any](ctx context.Context, c *Client, method, path string, payload any, auth AuthContext, failMsg string) Result[T] {
	status, raw, err := c.do(ctx, method, path, nil, payload, auth)
	if err != nil {
		return fail[T](failMsg)
	}
	if status >= http.StatusBadRequest {
		return fail[T](envelopeMessage(raw, failMsg))
	}
	return decodeEnvelope[T](raw, failMsg)
}

// decodeEnvelope unwraps the backend's {success, message, data, meta}
// wrapper into a Result. A non-success envelope surfaces the backend's own
// message; malformed JSON collapses to the fixed fallback message.
func decodeEnvelope[T any](raw []byte, failMsg string) Result[T] {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fail[T](failMsg)
	}
	if !env.Success {
		return fail[T](firstNonEmpty(env.Message, failMsg))
	}

	var value T
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, &value); err != nil {
			return fail[T](failMsg)
		}
	}
	return ok(&value, env.Meta)
}

// envelopeMessage extracts the backend's message from an error response body
func envelopeMessage(raw []byte, fallback string) string {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fallback
	}
	return firstNonEmpty(env.Message, fallback)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
