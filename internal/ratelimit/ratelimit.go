// Package ratelimit counts attempts per key in a sliding time window.
package ratelimit

import "context"

// Counter records an attempt for key and reports whether it is within the
// limit. Denied attempts are not recorded.
type Counter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
