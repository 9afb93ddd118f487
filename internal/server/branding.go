package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/flow"
	"github.com/khmercontent/reelkit/internal/models"
)

// generateBrandingTopics asks the model for exactly five viral topic ideas
// grounded in the client's immersion report.
func (s *Server) generateBrandingTopics(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	topics, err := s.gen.GenerateBrandingTopics(c.Request.Context(), client)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (s *Server) listBrandingScripts(c *gin.Context) {
	scripts, err := s.store.ListBrandingScripts(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scripts": scripts})
}

type generateBrandingRequest struct {
	Topic string `json:"topic"`
	Angle string `json:"angle"` // optional viral-angle title
}

func (s *Server) generateBrandingScript(c *gin.Context) {
	var req generateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	var angle *angles.Angle
	if req.Angle != "" {
		found, ok := angles.FindBranding(req.Angle)
		if !ok {
			s.renderError(c, flow.ErrUnknownAngle)
			return
		}
		angle = &found
	}

	text, err := s.gen.GenerateBrandingScript(c.Request.Context(), req.Topic, angle)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": text})
}

type saveBrandingRequest struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

func (s *Server) saveBrandingScript(c *gin.Context) {
	var req saveBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Content == "" {
		s.renderError(c, flow.ErrNothingToSave)
		return
	}

	saved, err := s.store.CreateBrandingScript(&models.BrandingScript{
		ClientID: c.Param("id"),
		UserID:   currentUser(c),
		Topic:    req.Topic,
		Content:  req.Content,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) updateBrandingScript(c *gin.Context) {
	var req updateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Content == "" {
		s.renderError(c, flow.ErrNothingToSave)
		return
	}
	saved, err := s.store.UpdateBrandingScript(c.Param("id"), req.Content)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteBrandingScript(c *gin.Context) {
	if err := s.store.DeleteBrandingScript(c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
