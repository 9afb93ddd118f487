package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khmercontent/reelkit/internal/flow"
	"github.com/khmercontent/reelkit/internal/models"
	"github.com/khmercontent/reelkit/internal/report"
)

func (s *Server) listClients(c *gin.Context) {
	clients, err := s.store.ListClients(currentUser(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (s *Server) getClient(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) createClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	client.UserID = currentUser(c)
	client.ImmersionData = nil

	if err := models.ValidateClient(&client); err != nil {
		s.renderError(c, err)
		return
	}
	saved, err := s.store.CreateClient(&client)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) updateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := models.ValidateClient(&client); err != nil {
		s.renderError(c, err)
		return
	}

	// Only the form fields are written; immersion_data moves through its
	// own endpoints.
	updates := map[string]interface{}{
		"product_name":     client.ProductName,
		"country":          client.Country,
		"price":            client.Price,
		"status":           client.Status,
		"problems":         client.Problems,
		"target_customers": client.TargetCustomers,
		"warranty":         client.Warranty,
		"promotion":        client.Promotion,
		"uniqueness":       client.Uniqueness,
	}
	saved, err := s.store.UpdateClient(c.Param("id"), updates)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteClient(c *gin.Context) {
	if err := s.store.DeleteClient(c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// generateImmersion creates or regenerates the client's research report.
// The stored report is only replaced once a valid one came back.
func (s *Server) generateImmersion(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	session := flow.NewSession(s.gen, s.store, s.store, client)
	if err := session.GenerateImmersion(c.Request.Context()); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Client())
}

func (s *Server) deleteImmersion(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	session := flow.NewSession(s.gen, s.store, s.store, client)
	if err := session.DeleteImmersion(); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Client())
}

func (s *Server) exportImmersion(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if client.ImmersionData == nil {
		s.renderError(c, flow.ErrImmersionRequired)
		return
	}
	text := report.Export(client, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(client.ProductName)+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (s *Server) listTypologies(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if client.ImmersionData == nil {
		s.renderError(c, flow.ErrImmersionRequired)
		return
	}
	c.JSON(http.StatusOK, gin.H{"typologies": client.ImmersionData.UserTypologies})
}
