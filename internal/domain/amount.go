package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// groupedThousands matches dot-separated thousands groups like "1.234" or "1.234.567"
var groupedThousands = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseAmount parses a user-typed amount into an exact decimal value.
// Mixed locale formats are accepted:
//   - "1.234,56" (dot grouping, comma decimal)
//   - "1234,56"  (comma decimal)
//   - "1234.56"  (plain dot decimal)
//
// When the text contains a comma, every dot is treated as a grouping
// separator and the comma becomes the decimal point. A dot-only string
// shaped like well-formed thousands groups is read as grouping.
// Returns ErrInvalidAmount for empty/whitespace-only input or anything
// that cannot be parsed by the strategies above.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	if strings.Contains(trimmed, ",") {
		normalized := strings.ReplaceAll(trimmed, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
		amount, err := decimal.NewFromString(normalized)
		if err != nil {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		return amount, nil
	}

	if groupedThousands.MatchString(trimmed) {
		amount, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ".", ""))
		if err != nil {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		return amount, nil
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
