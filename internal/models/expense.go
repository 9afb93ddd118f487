package models

import "time"

// Expense entry types.
const (
	EntryExpense = "expense"
	EntryIncome  = "income"
)

type ExpenseCategory struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Expense is one ledger entry. Category is a record link; CategoryName and
// CategoryColor are denormalized on reads so summaries don't need a second
// query.
type Expense struct {
	ID            string    `json:"id,omitempty"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Type          string    `json:"type"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	CategoryName  string    `json:"category_name,omitempty"`
	CategoryColor string    `json:"category_color,omitempty"`
}
