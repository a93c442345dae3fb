package database

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dumpship/dumpship/internal/dsn"
)

type MongoDBDatabase struct {
	desc dsn.Descriptor
}

func NewMongoDB(desc dsn.Descriptor) *MongoDBDatabase {
	return &MongoDBDatabase{desc: desc}
}

// Dump produces a single archive file instead of mongodump's default
// per-collection directory tree.
func (m *MongoDBDatabase) Dump(ctx context.Context, outputPath string) error {
	cmd := exec.CommandContext(ctx, "mongodump", m.dumpArgs(outputPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mongodump failed: %w, output: %s", err, string(output))
	}
	return nil
}

func (m *MongoDBDatabase) dumpArgs(outputPath string) []string {
	return []string{
		fmt.Sprintf("--uri=%s", m.desc.URI),
		fmt.Sprintf("--archive=%s", outputPath),
	}
}

func (m *MongoDBDatabase) Version(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, "mongodump", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("mongodump version probe failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (m *MongoDBDatabase) Name() string {
	return m.desc.Database
}

func (m *MongoDBDatabase) Type() string {
	return dsn.DialectMongoDB
}
