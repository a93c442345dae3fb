package domain

import "context"

// Database is one dump-capable backup target. Implementations shell out
// to the native client tooling for their dialect.
type Database interface {
	Dump(ctx context.Context, outputPath string) error
	Version(ctx context.Context) (string, error)
	Name() string
	Type() string
}
