package store

import (
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/khmercontent/reelkit/internal/models"
)

const clientsTable = "clients"

// ListClients returns the user's clients, newest first.
func (s *Store) ListClients(userID string) ([]models.Client, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.Client](s.db.Query(
		"SELECT * FROM clients WHERE user_id = $user_id ORDER BY created_at DESC",
		map[string]interface{}{"user_id": userID},
	))
	if err != nil {
		return nil, &QueryError{Collection: clientsTable, Err: err}
	}
	return rows, nil
}

func (s *Store) GetClient(id string) (*models.Client, error) {
	client, err := surrealdb.SmartUnmarshal[models.Client](s.db.Select(thing(clientsTable, id)))
	if err != nil {
		return nil, &QueryError{Collection: clientsTable, Err: err}
	}
	return &client, nil
}

// CreateClient inserts a new client record and returns it with the
// server-assigned id populated.
func (s *Store) CreateClient(client *models.Client) (*models.Client, error) {
	client.CreatedAt = time.Now().UTC()
	rows, err := surrealdb.SmartUnmarshal[[]models.Client](s.db.Create(clientsTable, client))
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errEmptyWriteResult
		}
		return nil, &WriteError{Collection: clientsTable, Err: err}
	}
	s.log.Info().Str("client_id", rows[0].ID).Msg("client created")
	return &rows[0], nil
}

// UpdateClient merges the given fields into the record and returns the
// updated row.
func (s *Store) UpdateClient(id string, updates map[string]interface{}) (*models.Client, error) {
	client, err := surrealdb.SmartUnmarshal[models.Client](s.db.Change(thing(clientsTable, id), updates))
	if err != nil {
		return nil, &WriteError{Collection: clientsTable, Err: err}
	}
	return &client, nil
}

// SetImmersion replaces the client's stored immersion report wholesale. A
// nil report clears it; saved scripts that reference typology names from the
// old report are left untouched.
func (s *Store) SetImmersion(id string, immersion *models.ImmersionData) (*models.Client, error) {
	return s.UpdateClient(id, map[string]interface{}{"immersion_data": immersion})
}

func (s *Store) DeleteClient(id string) error {
	if _, err := s.db.Delete(thing(clientsTable, id)); err != nil {
		return &WriteError{Collection: clientsTable, Err: err}
	}
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}
