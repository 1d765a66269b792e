package teamfood

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-first date format used on the menu page.
const DateLayout = "02.01.2006"

// dateParseLayout accepts one- or two-digit days and months.
const dateParseLayout = "2.1.2006"

var (
	weekNumberPattern = regexp.MustCompile(`KW (\d{2})`)
	datePattern       = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ErrDateCount is returned (wrapped in an ESTRUCTURE error) by
// ParseWeekHeader when a header does not contain exactly two dates.
var ErrDateCount = errors.New("week header must contain exactly two dates")

// WeekHeader is the parsed heading above a week's table.
type WeekHeader struct {
	Week  int
	Start time.Time
	End   time.Time
}

// ParseWeekHeader extracts the calendar week number and the start and end
// dates from a heading such as "Speiseplan KW 07 vom 12.02.2024 bis 16.02.2024".
func ParseWeekHeader(text string) (WeekHeader, error) {
	m := weekNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return WeekHeader{}, Errorf(ESTRUCTURE, "no calendar week in header %q", text)
	}
	week, err := strconv.Atoi(m[1])
	if err != nil {
		return WeekHeader{}, Errorf(ESTRUCTURE, "invalid calendar week in header %q", text)
	}

	dates := datePattern.FindAllString(text, -1)
	if len(dates) != 2 {
		return WeekHeader{}, fmt.Errorf("%w: %w",
			Errorf(ESTRUCTURE, "found %d dates in header %q, want 2", len(dates), text), ErrDateCount)
	}

	start, err := time.Parse(dateParseLayout, dates[0])
	if err != nil {
		return WeekHeader{}, Errorf(ESTRUCTURE, "invalid start date %q: %v", dates[0], err)
	}
	end, err := time.Parse(dateParseLayout, dates[1])
	if err != nil {
		return WeekHeader{}, Errorf(ESTRUCTURE, "invalid end date %q: %v", dates[1], err)
	}

	return WeekHeader{Week: week, Start: start, End: end}, nil
}

// NormalizeText collapses every run of whitespace, line breaks included, into
// a single space and trims the result.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// ParsePrice parses a price cell such as "4.50€". Only digits and a decimal
// point followed by digits are accepted. Anything else, a sign included,
// yields zero.
func ParsePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "€")
	s = strings.TrimSpace(s)

	if strings.ContainsAny(s, ",eE+-") || strings.HasSuffix(s, ".") {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseSideDish returns the side dish for a cell, or "" when the cell is
// empty or holds the "-" placeholder.
func ParseSideDish(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

// ParseAdditives parses an additive-code cell. A comma-separated list must
// consist of positive integers only; otherwise EROW is returned. A single
// token that is not a positive integer means the meal has no additives.
func ParseAdditives(s string) ([]int, error) {
	s = strings.TrimSpace(s)

	if !strings.Contains(s, ",") {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return []int{}, nil
		}
		return []int{n}, nil
	}

	parts := strings.Split(s, ",")
	additives := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, Errorf(EROW, "invalid additive code %q in %q", p, s)
		}
		additives = append(additives, n)
	}
	return additives, nil
}

// FormatAdditives joins additive codes with ", ".
func FormatAdditives(additives []int) string {
	parts := make([]string, len(additives))
	for i, a := range additives {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ", ")
}
