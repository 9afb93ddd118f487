package models

import "time"

// Script is a generated or hand-edited video script saved against a client.
// The angle is referenced by title and the typology by name; both are
// string-keyed associations, not foreign keys, so renaming an angle or
// regenerating an immersion leaves historical rows grouped under the old
// label.
type Script struct {
	ID           string    `json:"id,omitempty"`
	ClientID     string    `json:"client_id"`
	UserID       string    `json:"user_id"`
	AngleTitle   string    `json:"angle_title"`
	TypologyName string    `json:"typology_name,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// BrandingScript is keyed by a free-text topic instead of an angle+typology
// pair.
type BrandingScript struct {
	ID        string    `json:"id,omitempty"`
	ClientID  string    `json:"client_id"`
	UserID    string    `json:"user_id"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
