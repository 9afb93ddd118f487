// Package ledger computes derived summaries over an already-fetched expense
// collection. Everything here is a pure function; the caller recomputes on
// every change to the underlying data.
package ledger

import (
	"sort"
	"time"

	"github.com/khmercontent/reelkit/internal/models"
)

const uncategorized = "Uncategorized"
const defaultColor = "#888888"

// Window selects which entries participate in a summary.
type Window struct {
	kind string
	from time.Time
	to   time.Time
	now  time.Time
}

// AllTime includes every entry.
func AllTime() Window { return Window{kind: "all"} }

// LastSevenDays includes entries dated within the seven days before the
// start of today.
func LastSevenDays(now time.Time) Window { return Window{kind: "7days", now: now} }

// CurrentMonth includes entries from the first of the current calendar
// month.
func CurrentMonth(now time.Time) Window { return Window{kind: "month", now: now} }

// Between includes entries in the inclusive [from, to] date range.
func Between(from, to time.Time) Window { return Window{kind: "range", from: from, to: to} }

func (w Window) contains(d time.Time) bool {
	switch w.kind {
	case "7days":
		today := time.Date(w.now.Year(), w.now.Month(), w.now.Day(), 0, 0, 0, 0, w.now.Location())
		return !d.Before(today.AddDate(0, 0, -7))
	case "month":
		first := time.Date(w.now.Year(), w.now.Month(), 1, 0, 0, 0, 0, w.now.Location())
		return !d.Before(first)
	case "range":
		if w.from.IsZero() || w.to.IsZero() {
			return true
		}
		end := time.Date(w.to.Year(), w.to.Month(), w.to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), w.to.Location())
		return !d.Before(w.from) && !d.After(end)
	default:
		return true
	}
}

// Filter returns the entries inside the window, preserving order.
func Filter(entries []models.Expense, w Window) []models.Expense {
	out := make([]models.Expense, 0, len(entries))
	for _, e := range entries {
		if w.contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// FilterType keeps only entries of the given type ("expense" or "income");
// entries with no type count as expenses. An empty filter keeps everything.
func FilterType(entries []models.Expense, entryType string) []models.Expense {
	if entryType == "" || entryType == "all" {
		return entries
	}
	out := make([]models.Expense, 0, len(entries))
	for _, e := range entries {
		if normalizeType(e.Type) == entryType {
			out = append(out, e)
		}
	}
	return out
}

func normalizeType(t string) string {
	if t == "" {
		return models.EntryExpense
	}
	return t
}

// Summary is the headline income/expense picture for a window.
type Summary struct {
	TotalExpenses float64 `json:"total_expenses"`
	TotalIncome   float64 `json:"total_income"`
	NetBalance    float64 `json:"net_balance"`
}

// Summarize totals the window's entries by type.
func Summarize(entries []models.Expense, w Window) Summary {
	var s Summary
	for _, e := range Filter(entries, w) {
		switch normalizeType(e.Type) {
		case models.EntryIncome:
			s.TotalIncome += e.Amount
		default:
			s.TotalExpenses += e.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryTotal is one category's share of a type's total.
type CategoryTotal struct {
	Name    string  `json:"name"`
	Color   string  `json:"color"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// TotalsByCategory groups the window's entries of one type by category
// name, sorted by amount descending. Percent is of the type's total, and 0
// when the total is 0.
func TotalsByCategory(entries []models.Expense, w Window, entryType string) []CategoryTotal {
	type bucket struct {
		color  string
		amount float64
	}
	buckets := map[string]*bucket{}
	var total float64

	for _, e := range Filter(entries, w) {
		if normalizeType(e.Type) != entryType {
			continue
		}
		name := e.CategoryName
		if name == "" {
			name = uncategorized
		}
		color := e.CategoryColor
		if color == "" {
			color = defaultColor
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{color: color}
			buckets[name] = b
		}
		b.amount += e.Amount
		total += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(buckets))
	for name, b := range buckets {
		pct := 0.0
		if total > 0 {
			pct = b.amount / total * 100
		}
		totals = append(totals, CategoryTotal{Name: name, Color: b.color, Amount: b.amount, Percent: pct})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Name < totals[j].Name
	})
	return totals
}

// CountScriptsByAngle counts saved scripts per angle title. The content plan
// uses it to order the angle catalog by usage.
func CountScriptsByAngle(scripts []models.Script) map[string]int {
	counts := make(map[string]int, len(scripts))
	for _, s := range scripts {
		counts[s.AngleTitle]++
	}
	return counts
}

// FilterScriptsByAngle keeps only scripts saved under the given angle title.
func FilterScriptsByAngle(scripts []models.Script, title string) []models.Script {
	out := make([]models.Script, 0, len(scripts))
	for _, s := range scripts {
		if s.AngleTitle == title {
			out = append(out, s)
		}
	}
	return out
}
