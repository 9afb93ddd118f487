package store

import (
	"errors"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/khmercontent/reelkit/internal/models"
)

var errEmptyWriteResult = errors.New("store returned no rows for write")

const (
	scriptsTable  = "scripts"
	brandingTable = "branding_scripts"
)

// ListScripts returns a client's saved scripts, newest first.
func (s *Store) ListScripts(clientID string) ([]models.Script, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.Script](s.db.Query(
		"SELECT * FROM scripts WHERE client_id = $client_id ORDER BY created_at DESC",
		map[string]interface{}{"client_id": clientID},
	))
	if err != nil {
		return nil, &QueryError{Collection: scriptsTable, Err: err}
	}
	return rows, nil
}

func (s *Store) CreateScript(script *models.Script) (*models.Script, error) {
	now := time.Now().UTC()
	script.CreatedAt = now
	script.UpdatedAt = now
	rows, err := surrealdb.SmartUnmarshal[[]models.Script](s.db.Create(scriptsTable, script))
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errEmptyWriteResult
		}
		return nil, &WriteError{Collection: scriptsTable, Err: err}
	}
	return &rows[0], nil
}

// UpdateScript rewrites the script content in place.
func (s *Store) UpdateScript(id, content string) (*models.Script, error) {
	script, err := surrealdb.SmartUnmarshal[models.Script](s.db.Change(thing(scriptsTable, id), map[string]interface{}{
		"content":    content,
		"updated_at": time.Now().UTC(),
	}))
	if err != nil {
		return nil, &WriteError{Collection: scriptsTable, Err: err}
	}
	return &script, nil
}

func (s *Store) DeleteScript(id string) error {
	if _, err := s.db.Delete(thing(scriptsTable, id)); err != nil {
		return &WriteError{Collection: scriptsTable, Err: err}
	}
	return nil
}

// ListBrandingScripts returns a client's branding scripts, newest first.
func (s *Store) ListBrandingScripts(clientID string) ([]models.BrandingScript, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.BrandingScript](s.db.Query(
		"SELECT * FROM branding_scripts WHERE client_id = $client_id ORDER BY created_at DESC",
		map[string]interface{}{"client_id": clientID},
	))
	if err != nil {
		return nil, &QueryError{Collection: brandingTable, Err: err}
	}
	return rows, nil
}

func (s *Store) CreateBrandingScript(script *models.BrandingScript) (*models.BrandingScript, error) {
	now := time.Now().UTC()
	script.CreatedAt = now
	script.UpdatedAt = now
	rows, err := surrealdb.SmartUnmarshal[[]models.BrandingScript](s.db.Create(brandingTable, script))
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errEmptyWriteResult
		}
		return nil, &WriteError{Collection: brandingTable, Err: err}
	}
	return &rows[0], nil
}

func (s *Store) UpdateBrandingScript(id, content string) (*models.BrandingScript, error) {
	script, err := surrealdb.SmartUnmarshal[models.BrandingScript](s.db.Change(thing(brandingTable, id), map[string]interface{}{
		"content":    content,
		"updated_at": time.Now().UTC(),
	}))
	if err != nil {
		return nil, &WriteError{Collection: brandingTable, Err: err}
	}
	return &script, nil
}

func (s *Store) DeleteBrandingScript(id string) error {
	if _, err := s.db.Delete(thing(brandingTable, id)); err != nil {
		return &WriteError{Collection: brandingTable, Err: err}
	}
	return nil
}
