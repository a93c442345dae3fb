package database

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dumpship/dumpship/internal/dsn"
)

type PostgreSQLDatabase struct {
	desc dsn.Descriptor
}

func NewPostgreSQL(desc dsn.Descriptor) *PostgreSQLDatabase {
	return &PostgreSQLDatabase{desc: desc}
}

// Dump writes a custom-format dump. pg_dump authenticates straight off
// the connection URI, so no PGPASSWORD plumbing is needed.
func (p *PostgreSQLDatabase) Dump(ctx context.Context, outputPath string) error {
	cmd := exec.CommandContext(ctx, "pg_dump", p.dumpArgs(outputPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pg_dump failed: %w, output: %s", err, string(output))
	}
	return nil
}

func (p *PostgreSQLDatabase) dumpArgs(outputPath string) []string {
	return []string{
		fmt.Sprintf("--dbname=%s", p.desc.URI),
		"--format=custom",
		fmt.Sprintf("--file=%s", outputPath),
	}
}

func (p *PostgreSQLDatabase) Version(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, "pg_dump", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("pg_dump version probe failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (p *PostgreSQLDatabase) Name() string {
	return p.desc.Database
}

func (p *PostgreSQLDatabase) Type() string {
	return dsn.DialectPostgreSQL
}
