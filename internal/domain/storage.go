package domain

import "context"

// Storage receives finished archives. Upload is a single blocking put of
// the whole buffer under key; there is no retry inside the sink.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte) error
	Name() string
}
