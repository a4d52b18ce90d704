package utils

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContainsFold reports whether substr occurs in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount for user-facing chat messages,
// e.g. 65000 -> "65,000.00".
func FormatMoney(amount float64) string {
	return moneyPrinter.Sprintf("%.2f", amount)
}

// JoinNames renders a short human-readable list, e.g. "A, B and C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
