package cache

import "context"

// CacheRepository is the cache port the workflow depends on.
type CacheRepository interface {
	// SetIdempotency sets a key for idempotency check, returns false if already consumed.
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// ReleaseIdempotency frees a key claimed by SetIdempotency so the caller
	// may retry after a failed attempt.
	ReleaseIdempotency(ctx context.Context, key string) error

	// GetPaymentMethods returns the cached active payment-method names, nil on miss.
	GetPaymentMethods(ctx context.Context) ([]string, error)

	// SetPaymentMethods caches the active payment-method names.
	SetPaymentMethods(ctx context.Context, names []string) error
}

// NoopCache is used when no redis address is configured. Idempotency checks
// always pass and payment-method lookups always fall through to the database.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) SetIdempotency(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func (n *NoopCache) ReleaseIdempotency(ctx context.Context, key string) error {
	return nil
}

func (n *NoopCache) GetPaymentMethods(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (n *NoopCache) SetPaymentMethods(ctx context.Context, names []string) error {
	return nil
}
