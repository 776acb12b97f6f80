package api

import (
	"context"
	"fmt"
)

// MockAPIGenerator hands out the same MockAPIClient for every path and
// records the requested paths.
type MockAPIGenerator struct {
	MockClient MockAPIClient
	Paths      []string
}

func (m *MockAPIGenerator) New(path string, args ...any) Client {
	m.Paths = append(m.Paths, fmt.Sprintf(path, args...))
	return &m.MockClient
}

type MockAPIClient struct {
	POSTFunc func(ctx context.Context, opts ...Opt) (*Response, error)
	GETFunc  func(ctx context.Context, opts ...Opt) (*Response, error)

	LastHeaders map[string]string
	LastQuery   Parameter
	LastBody    Body
}

func (c *MockAPIClient) Header(name, value string) Client {
	if c.LastHeaders == nil {
		c.LastHeaders = make(map[string]string)
	}
	c.LastHeaders[name] = value
	return c
}

func (c *MockAPIClient) Query(query Parameter) Client {
	c.LastQuery = query
	return c
}

func (c *MockAPIClient) Body(body Body) Client {
	c.LastBody = body
	return c
}

func (c *MockAPIClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.POSTFunc == nil {
		return nil, fmt.Errorf("unexpected POST")
	}

	return c.POSTFunc(ctx, opts...)
}

func (c *MockAPIClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.GETFunc == nil {
		return nil, fmt.Errorf("unexpected GET")
	}

	return c.GETFunc(ctx, opts...)
}
