package countries

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultQuery selects code and name pairs from the legacy country table.
const DefaultQuery = "SELECT iso2, short_name FROM country_t ORDER BY iso2"

// PostgresSource loads the canonical list from a database table.
type PostgresSource struct {
	pool  *pgxpool.Pool
	query string
}

// NewPostgresSource connects to databaseURL. An empty query uses DefaultQuery;
// a custom query must return two text columns: code then name.
func NewPostgresSource(ctx context.Context, databaseURL, query string) (*PostgresSource, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if query == "" {
		query = DefaultQuery
	}

	return &PostgresSource{pool: pool, query: query}, nil
}

// Countries runs the query and collects its rows.
func (s *PostgresSource) Countries(ctx context.Context) ([]Country, error) {
	rows, err := s.pool.Query(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Country, error) {
		var c Country
		err := row.Scan(&c.Code, &c.Name)
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		c.Name = strings.TrimSpace(c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan countries: %w", err)
	}

	return list, nil
}

// Close releases the connection pool.
func (s *PostgresSource) Close() {
	s.pool.Close()
}
