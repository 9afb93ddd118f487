package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khmercontent/reelkit/internal/ledger"
	"github.com/khmercontent/reelkit/internal/models"
)

func (s *Server) listExpenses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	result, err := s.store.ListExpensesPage(currentUser(c), page)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if expense.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	expense.UserID = currentUser(c)
	if expense.Type == "" {
		expense.Type = models.EntryExpense
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}

	saved, err := s.store.CreateExpense(&expense)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) deleteExpense(c *gin.Context) {
	if err := s.store.DeleteExpense(c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// expenseSummary loads the whole ledger and aggregates it over the
// requested window: all (default), 7days, month, or range with from/to.
func (s *Server) expenseSummary(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := s.store.ListAllExpenses(currentUser(c))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":             ledger.Summarize(entries, window),
		"expense_by_category": ledger.TotalsByCategory(entries, window, models.EntryExpense),
		"income_by_category":  ledger.TotalsByCategory(entries, window, models.EntryIncome),
	})
}

func parseWindow(c *gin.Context) (ledger.Window, error) {
	switch c.DefaultQuery("window", "all") {
	case "all":
		return ledger.AllTime(), nil
	case "7days":
		return ledger.LastSevenDays(time.Now()), nil
	case "month":
		return ledger.CurrentMonth(time.Now()), nil
	case "range":
		from, err := time.Parse("2006-01-02", c.Query("from"))
		if err != nil {
			return ledger.Window{}, errBadRange
		}
		to, err := time.Parse("2006-01-02", c.Query("to"))
		if err != nil {
			return ledger.Window{}, errBadRange
		}
		return ledger.Between(from, to), nil
	default:
		return ledger.Window{}, errBadWindow
	}
}

func (s *Server) listExpenseCategories(c *gin.Context) {
	categories, err := s.store.ListExpenseCategories(currentUser(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) createExpenseCategory(c *gin.Context) {
	var category models.ExpenseCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	category.UserID = currentUser(c)

	saved, err := s.store.CreateExpenseCategory(&category)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) deleteExpenseCategory(c *gin.Context) {
	if err := s.store.DeleteExpenseCategory(c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
