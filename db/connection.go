package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	// registers the postgres driver with database/sql
	_ "github.com/lib/pq"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// NewConnection opens a pooled Postgres connection and verifies it is
// reachable before handing it out
func NewConnection(databaseURL string) (*sqlx.DB, error) {
	conn, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
