// Package flow drives the per-client script creation sequence: generate or
// load an immersion report, pick a user typology, pick a marketing angle,
// generate a script, edit it, save it. A Session is session-scoped state;
// nothing here is persisted except through the store on explicit saves.
package flow

import (
	"context"
	"errors"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/models"
)

// State of a Session. Transitions only move forward except for regeneration
// (which stays in place) and immersion deletion (back to NoImmersion).
type State int

const (
	NoImmersion State = iota
	ImmersionReady
	TypologySelected
	AngleSelected
	ScriptGenerated
	Saved
)

func (s State) String() string {
	switch s {
	case NoImmersion:
		return "no_immersion"
	case ImmersionReady:
		return "immersion_ready"
	case TypologySelected:
		return "typology_selected"
	case AngleSelected:
		return "angle_selected"
	case ScriptGenerated:
		return "script_generated"
	case Saved:
		return "saved"
	default:
		return "unknown"
	}
}

var (
	ErrImmersionRequired = errors.New("no immersion report for this client yet")
	ErrTypologyRequired  = errors.New("select a user typology first")
	ErrAngleRequired     = errors.New("select a marketing angle first")
	ErrUnknownTypology   = errors.New("typology not found in the immersion report")
	ErrUnknownAngle      = errors.New("angle not found in the catalog")
	ErrNothingToSave     = errors.New("no script content to save")
)

// Generator is the slice of the generation client the flow needs.
type Generator interface {
	GenerateImmersion(ctx context.Context, client *models.Client) (*models.ImmersionData, error)
	GenerateScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error)
	GenerateSaleScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error)
}

// ClientStore persists immersion reports onto client records.
type ClientStore interface {
	SetImmersion(id string, immersion *models.ImmersionData) (*models.Client, error)
}

// ScriptStore persists generated scripts.
type ScriptStore interface {
	CreateScript(script *models.Script) (*models.Script, error)
	UpdateScript(id, content string) (*models.Script, error)
}

// Session accumulates the choices for one client. Not safe for concurrent
// use; each browser session owns its own.
type Session struct {
	gen     Generator
	clients ClientStore
	scripts ScriptStore

	client   *models.Client
	state    State
	typology *models.UserTypology
	angle    *angles.Angle
	guidance string

	buffer    string
	editingID string
}

func NewSession(gen Generator, clients ClientStore, scripts ScriptStore, client *models.Client) *Session {
	s := &Session{gen: gen, clients: clients, scripts: scripts, client: client}
	if client.ImmersionData != nil {
		s.state = ImmersionReady
	}
	return s
}

func (s *Session) State() State           { return s.state }
func (s *Session) Client() *models.Client { return s.client }
func (s *Session) Buffer() string         { return s.buffer }

// GenerateImmersion creates (or, when one exists, regenerates) the client's
// immersion report and persists it onto the client record. The stored value
// is replaced wholesale only after a fully validated report came back; on
// any failure the previous report and the session state are untouched.
func (s *Session) GenerateImmersion(ctx context.Context) error {
	immersion, err := s.gen.GenerateImmersion(ctx, s.client)
	if err != nil {
		return err
	}
	updated, err := s.clients.SetImmersion(s.client.ID, immersion)
	if err != nil {
		return err
	}
	s.client = updated
	s.state = ImmersionReady
	s.typology = nil
	s.angle = nil
	return nil
}

// DeleteImmersion clears the stored report. Scripts already saved against
// its typologies keep their typology names; the dangling references are
// tolerated.
func (s *Session) DeleteImmersion() error {
	if s.client.ImmersionData == nil {
		return ErrImmersionRequired
	}
	updated, err := s.clients.SetImmersion(s.client.ID, nil)
	if err != nil {
		return err
	}
	s.client = updated
	s.state = NoImmersion
	s.typology = nil
	s.angle = nil
	return nil
}

// SelectTypology picks one of the report's typologies by name. Pure
// client-side selection, no backend call.
func (s *Session) SelectTypology(name string) error {
	if s.client.ImmersionData == nil {
		return ErrImmersionRequired
	}
	for i := range s.client.ImmersionData.UserTypologies {
		t := &s.client.ImmersionData.UserTypologies[i]
		if t.TypologyName == name {
			s.typology = t
			s.angle = nil
			s.state = TypologySelected
			return nil
		}
	}
	return ErrUnknownTypology
}

// SelectAngle picks a content angle by title.
func (s *Session) SelectAngle(title string) error {
	if s.typology == nil {
		return ErrTypologyRequired
	}
	angle, ok := angles.FindContent(title)
	if !ok {
		return ErrUnknownAngle
	}
	s.angle = &angle
	s.state = AngleSelected
	return nil
}

// SetGuidance attaches free-text instructions for the next generation.
func (s *Session) SetGuidance(guidance string) {
	s.guidance = guidance
}

// GenerateContent generates a soft-sell content script from the accumulated
// context and loads it into the editable buffer. Callers that reach this
// without a typology should redirect back to typology selection.
func (s *Session) GenerateContent(ctx context.Context) (string, error) {
	return s.generateScript(ctx, s.gen.GenerateScript)
}

// GenerateSale is the sales-structure variant.
func (s *Session) GenerateSale(ctx context.Context) (string, error) {
	return s.generateScript(ctx, s.gen.GenerateSaleScript)
}

type generateFn func(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error)

func (s *Session) generateScript(ctx context.Context, generate generateFn) (string, error) {
	if s.typology == nil {
		return "", ErrTypologyRequired
	}
	if s.angle == nil {
		return "", ErrAngleRequired
	}
	text, err := generate(ctx, s.client, *s.angle, s.typology, s.guidance)
	if err != nil {
		return "", err
	}
	s.buffer = text
	s.editingID = ""
	s.state = ScriptGenerated
	return text, nil
}

// Edit replaces the buffer with user-edited content.
func (s *Session) Edit(content string) {
	s.buffer = content
}

// EditExisting loads a saved script into the buffer for re-editing,
// bypassing generation. Allowed from any state.
func (s *Session) EditExisting(script models.Script) {
	s.buffer = script.Content
	s.editingID = script.ID
	s.state = ScriptGenerated
}

// Save persists the buffer: an update when an existing script is being
// edited, otherwise a new script tagged with the selected angle and
// typology. Save with an empty buffer is ignored with ErrNothingToSave.
func (s *Session) Save() (*models.Script, error) {
	if s.buffer == "" {
		return nil, ErrNothingToSave
	}

	if s.editingID != "" {
		saved, err := s.scripts.UpdateScript(s.editingID, s.buffer)
		if err != nil {
			return nil, err
		}
		s.finishSave()
		return saved, nil
	}

	if s.angle == nil {
		return nil, ErrAngleRequired
	}
	script := &models.Script{
		ClientID:   s.client.ID,
		UserID:     s.client.UserID,
		AngleTitle: s.angle.Title,
		Content:    s.buffer,
	}
	if s.typology != nil {
		script.TypologyName = s.typology.TypologyName
	}
	saved, err := s.scripts.CreateScript(script)
	if err != nil {
		return nil, err
	}
	s.finishSave()
	return saved, nil
}

func (s *Session) finishSave() {
	s.buffer = ""
	s.editingID = ""
	s.state = Saved
}
