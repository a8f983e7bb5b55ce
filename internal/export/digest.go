package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/five82/internboard/internal/cards"
)

const digestSeparator = "---------------------------------"

// Digest writes a chat-friendly text summary of the page. Unlike the card
// badge, the stipend line always appears and reads Unpaid when there is no
// amount.
func Digest(w io.Writer, p cards.Page, now time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "*Internship Updates - %s*\n\n", now.Format("02 January 2006"))

	for _, c := range p.Cards {
		fmt.Fprintf(&b, "📌 *%s*\n", strings.TrimSpace(c.Title))
		if summary := digestSummary(c); summary != "" {
			fmt.Fprintf(&b, "_%s_\n", summary)
		}
		fmt.Fprintf(&b, "🔗 Apply: %s\n", c.URL)
		fmt.Fprintf(&b, "💰 *Stipend:* %s\n\n", digestStipend(c))
		b.WriteString(digestSeparator + "\n\n")
	}
	if len(p.Cards) == 0 {
		b.WriteString("No internships found for today.")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}

func digestSummary(c cards.Card) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{c.Company, c.Location, c.Duration} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if c.WorkFromHome {
		parts = append(parts, "WFH")
	}
	return strings.Join(parts, " · ")
}

func digestStipend(c cards.Card) string {
	if c.Stipend == "" {
		return cards.Unpaid
	}
	return c.Stipend
}
