package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cbodonnell/shaft/pkg/repositories/migrations"
)

// Open connects to the repository named by connStr. Supported schemes are
// sqlite (sqlite://shaft.db) and postgresql.
func Open(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("missing sqlite database path in %s", connStr)
		}
		repository, err := NewSQLiteRepository(ctx, path, migrations.SQLite())
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgres", "postgresql":
		repository, err := NewPostgresRepository(ctx, u.String(), migrations.Postgres())
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
