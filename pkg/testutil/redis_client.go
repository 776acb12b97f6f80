package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rifa-premiada/backend/pkg/xredis"
)

// MockRedisClient keeps values in memory. Func fields override the default
// behavior of a method.
type MockRedisClient struct {
	ExistFunc  func(ctx context.Context, key string) (bool, error)
	DelFunc    func(ctx context.Context, key ...string) error
	SetObjFunc func(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObjFunc func(ctx context.Context, key string, v any) error
	SetNXFunc  func(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	mu   sync.Mutex
	data map[string]string
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{data: map[string]string{}}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.store()[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range key {
		delete(m.store(), k)
	}
	return nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if m.SetObjFunc != nil {
		return m.SetObjFunc(ctx, key, obj, ttl)
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store()[key] = string(b)
	return nil
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if m.GetObjFunc != nil {
		return m.GetObjFunc(ctx, key, v)
	}

	m.mu.Lock()
	s, ok := m.store()[key]
	m.mu.Unlock()
	if !ok {
		return xredis.Nil
	}

	return json.Unmarshal([]byte(s), v)
}

func (m *MockRedisClient) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if m.SetNXFunc != nil {
		return m.SetNXFunc(ctx, key, value, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store()[key]; ok {
		return false, nil
	}
	m.store()[key] = value
	return true, nil
}

func (m *MockRedisClient) store() map[string]string {
	if m.data == nil {
		m.data = map[string]string{}
	}
	return m.data
}
