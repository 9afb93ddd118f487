package models

import (
	"fmt"
	"sort"
	"strings"
)

// MinProblems is the minimum number of non-empty problem statements a client
// must carry before it can be saved.
const MinProblems = 3

// ValidationError reports per-field form errors. It is returned before any
// store call is attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateClient checks the client form the same way the entry forms do:
// every text field required, at least MinProblems non-empty problem
// statements. On success the client's problems are normalized to the
// non-empty entries only.
func ValidateClient(c *Client) error {
	fields := map[string]string{}

	if strings.TrimSpace(c.ProductName) == "" {
		fields["product_name"] = "product name is required"
	}
	if strings.TrimSpace(c.Country) == "" {
		fields["country"] = "country is required"
	}
	if strings.TrimSpace(c.Price) == "" {
		fields["price"] = "price is required"
	}
	if strings.TrimSpace(c.TargetCustomers) == "" {
		fields["target_customers"] = "target customers is required"
	}
	if strings.TrimSpace(c.Warranty) == "" {
		fields["warranty"] = "warranty is required"
	}
	if strings.TrimSpace(c.Promotion) == "" {
		fields["promotion"] = "promotion is required"
	}
	if strings.TrimSpace(c.Uniqueness) == "" {
		fields["uniqueness"] = "uniqueness is required"
	}

	valid := make([]string, 0, len(c.Problems))
	for _, p := range c.Problems {
		if strings.TrimSpace(p) != "" {
			valid = append(valid, p)
		}
	}
	if len(valid) < MinProblems {
		fields["problems"] = fmt.Sprintf("at least %d problem statements are required", MinProblems)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	c.Problems = valid
	if c.Status == "" {
		c.Status = StatusActive
	}
	return nil
}
