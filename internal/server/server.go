// Package server exposes the HTTP API over Gin. Handlers stay thin:
// validation and generation live in their own packages, the handlers wire
// request parsing to them and map errors to status codes.
package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/models"
	"github.com/khmercontent/reelkit/internal/store"
)

// Generator is the slice of the generation client the handlers use.
type Generator interface {
	GenerateImmersion(ctx context.Context, client *models.Client) (*models.ImmersionData, error)
	GenerateScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error)
	GenerateSaleScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error)
	GenerateBrandingTopics(ctx context.Context, client *models.Client) ([]string, error)
	GenerateBrandingScript(ctx context.Context, topic string, angle *angles.Angle) (string, error)
}

// Store is the persistence surface the handlers use.
type Store interface {
	ListClients(userID string) ([]models.Client, error)
	GetClient(id string) (*models.Client, error)
	CreateClient(client *models.Client) (*models.Client, error)
	UpdateClient(id string, updates map[string]interface{}) (*models.Client, error)
	SetImmersion(id string, immersion *models.ImmersionData) (*models.Client, error)
	DeleteClient(id string) error

	ListScripts(clientID string) ([]models.Script, error)
	CreateScript(script *models.Script) (*models.Script, error)
	UpdateScript(id, content string) (*models.Script, error)
	DeleteScript(id string) error

	ListBrandingScripts(clientID string) ([]models.BrandingScript, error)
	CreateBrandingScript(script *models.BrandingScript) (*models.BrandingScript, error)
	UpdateBrandingScript(id, content string) (*models.BrandingScript, error)
	DeleteBrandingScript(id string) error

	ListExpenseCategories(userID string) ([]models.ExpenseCategory, error)
	CreateExpenseCategory(category *models.ExpenseCategory) (*models.ExpenseCategory, error)
	DeleteExpenseCategory(id string) error
	ListExpensesPage(userID string, page int) (*store.ExpensePage, error)
	ListAllExpenses(userID string) ([]models.Expense, error)
	CreateExpense(expense *models.Expense) (*models.Expense, error)
	DeleteExpense(id string) error
}

type Server struct {
	store Store
	gen   Generator
	log   zerolog.Logger
}

func New(st Store, gen Generator, log zerolog.Logger) *Server {
	return &Server{store: st, gen: gen, log: log}
}

// Router builds the Gin engine with all routes registered. Everything under
// /api requires the X-User-ID header.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger(s.log))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := router.Group("/api", RequireUser())

	api.GET("/clients", s.listClients)
	api.POST("/clients", s.createClient)
	api.GET("/clients/:id", s.getClient)
	api.PUT("/clients/:id", s.updateClient)
	api.DELETE("/clients/:id", s.deleteClient)

	api.POST("/clients/:id/immersion", s.generateImmersion)
	api.DELETE("/clients/:id/immersion", s.deleteImmersion)
	api.GET("/clients/:id/immersion/export", s.exportImmersion)
	api.GET("/clients/:id/typologies", s.listTypologies)

	api.GET("/clients/:id/content-plan", s.contentPlan)
	api.GET("/clients/:id/scripts", s.listScripts)
	api.POST("/clients/:id/scripts/generate", s.generateScript)
	api.POST("/clients/:id/scripts", s.saveScript)
	api.PUT("/scripts/:id", s.updateScript)
	api.DELETE("/scripts/:id", s.deleteScript)

	api.POST("/clients/:id/branding/topics", s.generateBrandingTopics)
	api.GET("/clients/:id/branding/scripts", s.listBrandingScripts)
	api.POST("/clients/:id/branding/scripts/generate", s.generateBrandingScript)
	api.POST("/clients/:id/branding/scripts", s.saveBrandingScript)
	api.PUT("/branding-scripts/:id", s.updateBrandingScript)
	api.DELETE("/branding-scripts/:id", s.deleteBrandingScript)

	api.GET("/expenses", s.listExpenses)
	api.POST("/expenses", s.createExpense)
	api.DELETE("/expenses/:id", s.deleteExpense)
	api.GET("/expense-summary", s.expenseSummary)
	api.GET("/expense-categories", s.listExpenseCategories)
	api.POST("/expense-categories", s.createExpenseCategory)
	api.DELETE("/expense-categories/:id", s.deleteExpenseCategory)

	return router
}
