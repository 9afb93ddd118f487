package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khmercontent/reelkit/internal/flow"
	"github.com/khmercontent/reelkit/internal/generator"
	"github.com/khmercontent/reelkit/internal/models"
	"github.com/khmercontent/reelkit/internal/store"
)

var (
	errBadWindow = errors.New(`window must be one of "all", "7days", "month", "range"`)
	errBadRange  = errors.New("range window requires from and to dates as YYYY-MM-DD")
)

// renderError maps package errors to status codes: invalid input is 400,
// an unreachable model is 502, a model reply that cannot be used is 422,
// a flow precondition is 409, anything in the store is 500.
func (s *Server) renderError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var transport *generator.TransportError
	var parse *generator.ParseError
	var query *store.QueryError
	var write *store.WriteError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "fields": validation.Fields})
	case errors.As(err, &transport):
		c.JSON(http.StatusBadGateway, gin.H{"error": transport.Error()})
	case errors.As(err, &parse):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": parse.Error()})
	case isFlowError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &query), errors.As(err, &write):
		s.log.Error().Str("request_id", c.GetString(requestIDKey)).Err(err).Msg("store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		s.log.Error().Str("request_id", c.GetString(requestIDKey)).Err(err).Msg("unhandled failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isFlowError(err error) bool {
	for _, sentinel := range []error{
		flow.ErrImmersionRequired,
		flow.ErrTypologyRequired,
		flow.ErrAngleRequired,
		flow.ErrUnknownTypology,
		flow.ErrUnknownAngle,
		flow.ErrNothingToSave,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
