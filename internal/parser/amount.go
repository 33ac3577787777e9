package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/danreyes/reckon/internal/errors"
)

// amountRegex matches an optional sign, digits with optional thousands
// separators, and an optional decimal part of one or two digits.
var amountRegex = regexp.MustCompile(`^(-)?(\d{1,3}(?:,\d{3})*|\d+)(?:\.(\d{1,2}))?$`)

// ParseAmount parses a currency amount into cents. Accepts forms like
// "1500", "1,500.00", "$25.50", "-12.30".
func ParseAmount(input string) (int64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, errors.NewUserError("Amount is required", "Provide an amount like '1500' or '25.50'")
	}

	match := amountRegex.FindStringSubmatch(s)
	if match == nil {
		return 0, errors.NewUserErrorWithField("amount", input,
			"Invalid amount",
			"Use a number like '1500', '1,500.00', or '-25.50'")
	}

	whole, err := strconv.ParseInt(strings.ReplaceAll(match[2], ",", ""), 10, 64)
	if err != nil {
		return 0, errors.NewUserErrorWithField("amount", input,
			"Amount out of range",
			"Use a smaller number")
	}

	cents := whole * 100
	if match[3] != "" {
		frac := match[3]
		if len(frac) == 1 {
			frac += "0"
		}
		f, _ := strconv.ParseInt(frac, 10, 64)
		cents += f
	}

	if match[1] == "-" {
		cents = -cents
	}
	return cents, nil
}
