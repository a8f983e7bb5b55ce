package cards

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/five82/internboard/internal/listing"
)

// Unpaid is the textual stipend used outside of badges when no amount exists.
const Unpaid = "Unpaid"

const (
	lakh     = 100000
	thousand = 1000
	day      = 24 * time.Hour
)

// FormatAmount abbreviates a count or amount: lakhs get an L suffix,
// thousands a K suffix, smaller values are printed as-is.
func FormatAmount(n float64) string {
	switch {
	case n >= lakh:
		return fmt.Sprintf("%.1fL", n/lakh)
	case n >= thousand:
		return fmt.Sprintf("%.1fK", n/thousand)
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// CurrencySymbol maps a currency code to the symbol shown next to amounts.
func CurrencySymbol(code string) string {
	if strings.EqualFold(strings.TrimSpace(code), "INR") || strings.TrimSpace(code) == "" {
		return "₹"
	}
	return "$"
}

// FormatStipend renders a stipend range. A nil stipend, or one without any
// non-zero amount, renders as Unpaid.
func FormatStipend(s *listing.Stipend) string {
	lower, upper := s.MinAmount(), s.MaxAmount()
	if s == nil || (lower == 0 && upper == 0) {
		return Unpaid
	}
	symbol := CurrencySymbol(s.CurrencyCode())
	if lower != 0 && upper != 0 && lower != upper {
		return fmt.Sprintf("%s%s - %s%s", symbol, FormatAmount(lower), symbol, FormatAmount(upper))
	}
	amount := upper
	if amount == 0 {
		amount = lower
	}
	return symbol + FormatAmount(amount)
}

// FormatDate renders raw relative to now: Today, Yesterday, N days ago,
// N weeks ago, or an absolute "Jan 2, 2006" date after 30 days. Missing or
// unparsable input renders as N/A.
func FormatDate(raw string, now time.Time) string {
	if strings.TrimSpace(raw) == "" {
		return "N/A"
	}
	t := listing.ParseTime(raw)
	if t.IsZero() {
		return "N/A"
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / day)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return t.In(now.Location()).Format("Jan 2, 2006")
	}
}

// Truncate shortens text to limit runes followed by "...".
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
