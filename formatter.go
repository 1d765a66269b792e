package teamfood

import (
	"fmt"
	"strings"
)

// FormatMenuItem renders a meal for display: the description, the side dish
// if any, and a line with price, food type and additives.
func FormatMenuItem(item MenuItem) string {
	var b strings.Builder
	b.WriteString(item.Description)
	b.WriteString("\n")
	if item.HasSideDish() {
		b.WriteString(item.SideDish)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s€ / %s / Zusätze: %s\n", item.Price.StringFixed(2), item.Type, FormatAdditives(item.Additives))
	return b.String()
}

// FormatWeekMenu renders a week for display, one section per day.
func FormatWeekMenu(w *WeekMenu) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Speiseplan for week %d (%s - %s)\n", w.Week, w.Start.Format(DateLayout), w.End.Format(DateLayout))
	b.WriteString(strings.Repeat("=", 55))
	b.WriteString("\n\n")
	for _, d := range w.Days {
		b.WriteString(d.Weekday.String())
		b.WriteString(":\n")
		for _, item := range d.Items {
			b.WriteString(FormatMenuItem(item))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMenu renders every week followed by the additional information.
func FormatMenu(m *Menu) string {
	var b strings.Builder
	for _, w := range m.Weeks {
		b.WriteString(FormatWeekMenu(w))
	}
	b.WriteString("Zusätze:\n")
	b.WriteString(strings.Repeat("=", 8))
	b.WriteString("\n")
	b.WriteString(m.AdditionalInfo)
	b.WriteString("\n")
	return b.String()
}
