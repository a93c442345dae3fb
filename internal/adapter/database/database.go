package database

import (
	"errors"
	"fmt"

	"github.com/dumpship/dumpship/internal/domain"
	"github.com/dumpship/dumpship/internal/dsn"
)

var ErrUnknownDialect = errors.New("unknown database dialect")

// New selects the dump strategy for a descriptor's dialect. Every
// supported dialect maps to exactly one implementation; anything else
// gets no plan and the caller skips the target.
func New(desc dsn.Descriptor) (domain.Database, error) {
	switch desc.Dialect {
	case dsn.DialectPostgreSQL:
		return NewPostgreSQL(desc), nil
	case dsn.DialectMongoDB:
		return NewMongoDB(desc), nil
	case dsn.DialectMySQL:
		return NewMySQL(desc), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, desc.Dialect)
	}
}
