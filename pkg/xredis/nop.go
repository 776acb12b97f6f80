package xredis

import (
	"context"
	"time"
)

// nopClient is used when no redis address is configured. Every read misses
// and every SetNX succeeds.
type nopClient struct{}

func NewNopClient() *nopClient {
	return &nopClient{}
}

func (nopClient) Exist(context.Context, string) (bool, error) { return false, nil }

func (nopClient) Del(context.Context, ...string) error { return nil }

func (nopClient) SetObj(context.Context, string, any, time.Duration) error { return nil }

func (nopClient) GetObj(context.Context, string, any) error { return Nil }

func (nopClient) SetNX(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}
