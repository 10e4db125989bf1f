// Package salary formats an application's salary sub-record for display.
// The formatted string is never persisted.
package salary

import (
	"strconv"
	"strings"
)

// Known currency symbols. Unmapped codes fall back to the raw code string.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
}

// Format renders "[amount] [currency] [gross/net] [year/month]" with absent
// segments contributing nothing. Both amounts absent yields "Empty".
func Format(min, max *float64, currency, salaryType, period *string) string {
	if !present(min) && !present(max) {
		return "Empty"
	}

	var amount string
	switch {
	case present(min) && present(max) && *min != *max:
		amount = formatAmount(*min) + " - " + formatAmount(*max)
	case present(min):
		amount = formatAmount(*min)
	case present(max):
		amount = formatAmount(*max)
	}

	var currencyText string
	if currency != nil && *currency != "" {
		if symbol, ok := currencySymbols[*currency]; ok {
			currencyText = symbol
		} else {
			currencyText = *currency
		}
	}

	parts := []string{amount, currencyText, deref(salaryType), deref(period)}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// present treats nil and zero alike: a zero amount is not a salary.
func present(v *float64) bool {
	return v != nil && *v != 0
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
