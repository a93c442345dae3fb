package dsn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DialectPostgreSQL = "postgresql"
	DialectMongoDB    = "mongodb"
	DialectMySQL      = "mysql"
)

var (
	ErrEmptyTarget       = errors.New("connection URI is empty")
	ErrUnsupportedScheme = errors.New("unsupported connection URI scheme")
)

var supportedSchemes = map[string]string{
	"postgresql": DialectPostgreSQL,
	"postgres":   DialectPostgreSQL,
	"mongodb":    DialectMongoDB,
	"mysql":      DialectMySQL,
}

// Descriptor holds the pieces of a parsed connection URI needed to pick
// and drive a dump tool. It lives for a single pipeline run.
type Descriptor struct {
	Dialect  string
	Host     string
	Port     string
	Username string
	Password string
	Database string

	// URI is the original connection string, kept because pg_dump and
	// mongodump authenticate with the full URI rather than split fields.
	URI string
}

// Parse splits a connection URI into a Descriptor. It accepts the
// postgresql, mongodb and mysql schemes (plus the common postgres
// alias) and rejects everything else.
func Parse(uri string) (Descriptor, error) {
	if strings.TrimSpace(uri) == "" {
		return Descriptor{}, ErrEmptyTarget
	}

	u, err := url.Parse(uri)
	if err != nil {
		return Descriptor{}, fmt.Errorf("parse connection URI: %w", err)
	}

	dialect, ok := supportedSchemes[u.Scheme]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	password, _ := u.User.Password()

	return Descriptor{
		Dialect:  dialect,
		Host:     u.Hostname(),
		Port:     u.Port(),
		Username: u.User.Username(),
		Password: password,
		Database: strings.TrimPrefix(u.Path, "/"),
		URI:      uri,
	}, nil
}
