// Package store is the typed gateway to the SurrealDB backend. One method
// per operation, five collections: clients, scripts, branding_scripts,
// expense_categories, expenses. Reads fail with QueryError, writes with
// WriteError; neither is retried here.
//
// Ownership is enforced only through the filter predicates callers supply
// (user_id / client_id equality); there is no server-side authorization in
// this layer.
//
// Nothing is cached here. A caller that holds on to list results must
// refetch after any write to the same collection; writes to clients also
// change what GetClient returns for that id.
package store

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	User      string
	Pass      string
}

type Store struct {
	db  *surrealdb.DB
	log zerolog.Logger
}

// Open connects, signs in, and selects the namespace/database.
func Open(cfg Config, log zerolog.Logger) (*Store, error) {
	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	if _, err := db.Signin(map[string]interface{}{
		"user": cfg.User,
		"pass": cfg.Pass,
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("surrealdb signin failed: %w", err)
	}

	if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("surrealdb use %s/%s failed: %w", cfg.Namespace, cfg.Database, err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() {
	s.db.Close()
}

// thing qualifies a bare record id with its table so both "clients:abc" and
// "abc" are accepted by handlers.
func thing(table, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return table + ":" + id
}
