package shared

import (
	"context"
	"time"

	"staybook/internal/pkg/errs"
)

var ErrCacheMiss = errs.New("cache miss")

type CacheOpKind uint8

const (
	CacheOpSet CacheOpKind = iota + 1
	CacheOpSetField
	CacheOpExpire
	CacheOpAddMember
)

// CacheOp is one write inside a grouped cache write.
type CacheOp struct {
	Kind   CacheOpKind
	Key    string
	Field  string
	Member string
	Value  []byte
	TTL    time.Duration
}

func SetOp(key string, value []byte, ttl time.Duration) CacheOp {
	return CacheOp{Kind: CacheOpSet, Key: key, Value: value, TTL: ttl}
}

func SetFieldOp(key, field string, value []byte) CacheOp {
	return CacheOp{Kind: CacheOpSetField, Key: key, Field: field, Value: value}
}

func ExpireOp(key string, ttl time.Duration) CacheOp {
	return CacheOp{Kind: CacheOpExpire, Key: key, TTL: ttl}
}

func AddMemberOp(key, member string) CacheOp {
	return CacheOp{Kind: CacheOpAddMember, Key: key, Member: member}
}

// Cache is a key-value store. Missing keys and fields return ErrCacheMiss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetField(ctx context.Context, key, field string) ([]byte, error)
	Members(ctx context.Context, key string) ([]string, error)
	SetWithExpiry(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// GroupedWrite submits ops as one unit. Ordering across unrelated keys is not guaranteed.
	GroupedWrite(ctx context.Context, ops ...CacheOp) error
}
