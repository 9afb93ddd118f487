package server

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/flow"
	"github.com/khmercontent/reelkit/internal/ledger"
	"github.com/khmercontent/reelkit/internal/models"
)

// contentPlanEntry is one angle card with the number of scripts already
// written against it.
type contentPlanEntry struct {
	angles.Angle
	ScriptCount int `json:"script_count"`
}

// contentPlan returns the full angle catalog with per-angle script counts,
// most-used angles first, catalog order for ties.
func (s *Server) contentPlan(c *gin.Context) {
	scripts, err := s.store.ListScripts(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	counts := ledger.CountScriptsByAngle(scripts)

	plan := make([]contentPlanEntry, len(angles.Content))
	for i, angle := range angles.Content {
		plan[i] = contentPlanEntry{Angle: angle, ScriptCount: counts[angle.Title]}
	}
	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].ScriptCount > plan[j].ScriptCount
	})
	c.JSON(http.StatusOK, gin.H{"angles": plan})
}

func (s *Server) listScripts(c *gin.Context) {
	scripts, err := s.store.ListScripts(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if title := c.Query("angle"); title != "" {
		scripts = ledger.FilterScriptsByAngle(scripts, title)
	}
	c.JSON(http.StatusOK, gin.H{"scripts": scripts})
}

type generateScriptRequest struct {
	Angle    string `json:"angle"`
	Typology string `json:"typology"`
	Guidance string `json:"guidance"`
	Kind     string `json:"kind"` // "content" (default) or "sale"
}

// generateScript runs the selection flow for one request: load the client,
// pick the typology and angle, generate. Nothing is stored; the caller
// saves the (possibly edited) result separately.
func (s *Server) generateScript(c *gin.Context) {
	var req generateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	session := flow.NewSession(s.gen, s.store, s.store, client)
	if err := session.SelectTypology(req.Typology); err != nil {
		s.renderError(c, err)
		return
	}
	if err := session.SelectAngle(req.Angle); err != nil {
		s.renderError(c, err)
		return
	}
	session.SetGuidance(req.Guidance)

	var text string
	if req.Kind == "sale" {
		text, err = session.GenerateSale(c.Request.Context())
	} else {
		text, err = session.GenerateContent(c.Request.Context())
	}
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": text})
}

type saveScriptRequest struct {
	AngleTitle   string `json:"angle_title"`
	TypologyName string `json:"typology_name"`
	Content      string `json:"content"`
}

func (s *Server) saveScript(c *gin.Context) {
	var req saveScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Content == "" {
		s.renderError(c, flow.ErrNothingToSave)
		return
	}
	if _, ok := angles.FindContent(req.AngleTitle); !ok {
		s.renderError(c, flow.ErrUnknownAngle)
		return
	}

	saved, err := s.store.CreateScript(&models.Script{
		ClientID:     c.Param("id"),
		UserID:       currentUser(c),
		AngleTitle:   req.AngleTitle,
		TypologyName: req.TypologyName,
		Content:      req.Content,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

type updateScriptRequest struct {
	Content string `json:"content"`
}

func (s *Server) updateScript(c *gin.Context) {
	var req updateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Content == "" {
		s.renderError(c, flow.ErrNothingToSave)
		return
	}
	saved, err := s.store.UpdateScript(c.Param("id"), req.Content)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteScript(c *gin.Context) {
	if err := s.store.DeleteScript(c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
