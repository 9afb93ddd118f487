package store

import (
	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/khmercontent/reelkit/internal/models"
)

const (
	categoriesTable = "expense_categories"
	expensesTable   = "expenses"
)

// ExpensePageSize is the fixed page size for incremental expense loading.
const ExpensePageSize = 12

const expenseFields = "*, category.name AS category_name, category.color AS category_color"

// ListExpenseCategories returns the user's categories ordered by name.
func (s *Store) ListExpenseCategories(userID string) ([]models.ExpenseCategory, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.ExpenseCategory](s.db.Query(
		"SELECT * FROM expense_categories WHERE user_id = $user_id ORDER BY name",
		map[string]interface{}{"user_id": userID},
	))
	if err != nil {
		return nil, &QueryError{Collection: categoriesTable, Err: err}
	}
	return rows, nil
}

func (s *Store) CreateExpenseCategory(category *models.ExpenseCategory) (*models.ExpenseCategory, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.ExpenseCategory](s.db.Create(categoriesTable, category))
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errEmptyWriteResult
		}
		return nil, &WriteError{Collection: categoriesTable, Err: err}
	}
	return &rows[0], nil
}

func (s *Store) DeleteExpenseCategory(id string) error {
	if _, err := s.db.Delete(thing(categoriesTable, id)); err != nil {
		return &WriteError{Collection: categoriesTable, Err: err}
	}
	return nil
}

// ExpensePage is one fixed-size slice of the expense ledger, newest first,
// plus the total row count so callers know when to stop paging.
type ExpensePage struct {
	Expenses []models.Expense `json:"expenses"`
	Page     int              `json:"page"`
	Total    int              `json:"total"`
}

// ListExpensesPage loads one page of ExpensePageSize entries with the
// category name/color joined in.
func (s *Store) ListExpensesPage(userID string, page int) (*ExpensePage, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.Expense](s.db.Query(
		"SELECT "+expenseFields+" FROM expenses WHERE user_id = $user_id ORDER BY date DESC LIMIT $limit START $start",
		map[string]interface{}{
			"user_id": userID,
			"limit":   ExpensePageSize,
			"start":   page * ExpensePageSize,
		},
	))
	if err != nil {
		return nil, &QueryError{Collection: expensesTable, Err: err}
	}

	type countRow struct {
		Count int `json:"count"`
	}
	counts, err := surrealdb.SmartUnmarshal[[]countRow](s.db.Query(
		"SELECT count() FROM expenses WHERE user_id = $user_id GROUP ALL",
		map[string]interface{}{"user_id": userID},
	))
	if err != nil {
		return nil, &QueryError{Collection: expensesTable, Err: err}
	}
	total := 0
	if len(counts) > 0 {
		total = counts[0].Count
	}

	return &ExpensePage{Expenses: rows, Page: page, Total: total}, nil
}

// ListAllExpenses concatenates pages until the whole ledger is in memory.
// Used by the summary view, which needs every entry regardless of how far
// the incremental list has been scrolled.
func (s *Store) ListAllExpenses(userID string) ([]models.Expense, error) {
	var all []models.Expense
	for page := 0; ; page++ {
		p, err := s.ListExpensesPage(userID, page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Expenses...)
		if len(all) >= p.Total || len(p.Expenses) == 0 {
			return all, nil
		}
	}
}

func (s *Store) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	rows, err := surrealdb.SmartUnmarshal[[]models.Expense](s.db.Create(expensesTable, expense))
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errEmptyWriteResult
		}
		return nil, &WriteError{Collection: expensesTable, Err: err}
	}
	return &rows[0], nil
}

func (s *Store) DeleteExpense(id string) error {
	if _, err := s.db.Delete(thing(expensesTable, id)); err != nil {
		return &WriteError{Collection: expensesTable, Err: err}
	}
	return nil
}
