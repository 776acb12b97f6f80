package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rifa-premiada/backend/pkg/xcontext"
)

var ErrAllEndpointsFailed = errors.New("all endpoints got errors")

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	Body(body Body) Client
	POST(ctx context.Context, opts ...Opt) (*Response, error)
	GET(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	domains []string
}

// NewGenerator builds clients for the given base URLs. The first domain is
// the primary one, the rest are tried in order when a call cannot complete.
func NewGenerator(domains ...string) *defaultGenerator {
	return &defaultGenerator{domains: domains}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		domains: g.domains,
		path:    fmt.Sprintf(path, args...),
		headers: make(http.Header),
	}
}

type Body interface {
	ToReader() (io.Reader, string, error)
}

type defaultClient struct {
	domains []string
	path    string
	headers http.Header
	query   Parameter
	body    Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers.Set(name, value)
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	return c.call(ctx, http.MethodPost, opts...)
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	return c.call(ctx, http.MethodGet, opts...)
}

func (c *defaultClient) call(ctx context.Context, method string, opts ...Opt) (*Response, error) {
	payload, contentType, err := c.payload()
	if err != nil {
		return nil, err
	}

	for _, domain := range c.domains {
		url := domain + c.path
		if c.query != nil {
			url = url + "?" + c.query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}

		req.Header = c.headers.Clone()
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		for _, opt := range opts {
			opt.Apply(req)
		}

		resp, err := send(ctx, req)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot call %s %s: %v", method, url, err)
			continue
		}

		return resp, nil
	}

	return nil, ErrAllEndpointsFailed
}

// payload reads the body once so it can be replayed against every domain.
func (c *defaultClient) payload() ([]byte, string, error) {
	if c.body == nil {
		return nil, "", nil
	}

	reader, contentType, err := c.body.ToReader()
	if err != nil {
		return nil, "", err
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", err
	}

	return payload, contentType, nil
}

func send(ctx context.Context, req *http.Request) (*Response, error) {
	result, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()

	raw, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, err
	}

	body, err := parseBody(raw)
	if err != nil {
		return nil, err
	}

	return &Response{
		Code:    result.StatusCode,
		Header:  result.Header,
		Body:    body,
		RawBody: raw,
	}, nil
}

func parseBody(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return JSON{}, nil
	}

	if b, err := bytesToJSON(raw); err == nil {
		return b, nil
	}

	if b, err := bytesToArray(raw); err == nil {
		return b, nil
	}

	return nil, fmt.Errorf("body is neither a json object nor an array: %.64s", raw)
}
