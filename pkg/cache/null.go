package cache

import (
	"context"
	"time"
)

// NullCache disables caching: lookups always miss and writes are dropped.
// [Open] returns it for the "none" backend and the CLI's --no-cache flag.
type NullCache struct{}

func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }
