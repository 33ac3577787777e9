// Package parser converts user-supplied date and amount strings into
// domain values.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/danreyes/reckon/internal/errors"
)

// ParseDate parses a transaction date. Supports:
//   - "" (empty): today
//   - ISO format: "2026-03-14"
//   - natural language: "yesterday", "last friday", "two weeks ago"
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not parse date",
			"Use ISO format like '2026-03-14' or natural language like 'yesterday'")
	}

	t := result.Time
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}
