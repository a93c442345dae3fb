package database

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dumpship/dumpship/internal/dsn"
)

type MySQLDatabase struct {
	desc dsn.Descriptor
}

func NewMySQL(desc dsn.Descriptor) *MySQLDatabase {
	return &MySQLDatabase{desc: desc}
}

// Dump uses explicit host/port/user arguments because mysqldump has no
// URI form. The password rides in argv rather than through a shell, so
// no escaping is involved.
func (m *MySQLDatabase) Dump(ctx context.Context, outputPath string) error {
	cmd := exec.CommandContext(ctx, "mysqldump", m.dumpArgs(outputPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mysqldump failed: %w, output: %s", err, string(output))
	}
	return nil
}

func (m *MySQLDatabase) dumpArgs(outputPath string) []string {
	args := []string{
		fmt.Sprintf("--host=%s", m.desc.Host),
	}
	// Omitted connection flags let mysqldump fall back to its defaults.
	if m.desc.Port != "" {
		args = append(args, fmt.Sprintf("--port=%s", m.desc.Port))
	}
	if m.desc.Username != "" {
		args = append(args, fmt.Sprintf("--user=%s", m.desc.Username))
	}
	if m.desc.Password != "" {
		args = append(args, fmt.Sprintf("--password=%s", m.desc.Password))
	}
	args = append(args,
		"--single-transaction",
		"--quick",
	)
	return append(args,
		fmt.Sprintf("--result-file=%s", outputPath),
		m.desc.Database,
	)
}

func (m *MySQLDatabase) Version(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, "mysqldump", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("mysqldump version probe failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (m *MySQLDatabase) Name() string {
	return m.desc.Database
}

func (m *MySQLDatabase) Type() string {
	return dsn.DialectMySQL
}
