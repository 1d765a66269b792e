// Package goquery implements teamfood.MenuExtractor on top of goquery.
package goquery

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/teamfood"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultAnchorID is the id of the element holding the week headings and
// tables on the TeamFood menu page.
const DefaultAnchorID = "col3_content"

// headerRowLabel marks the column header row of a week table.
const headerRowLabel = "Tag"

// Number of cells in a data row: day, description, type, price, side dish,
// additives.
const rowCells = 6

// Ensure Extractor implements teamfood.MenuExtractor at compile time.
var _ teamfood.MenuExtractor = (*Extractor)(nil)

// Extractor parses the TeamFood menu page.
type Extractor struct {
	anchorID string
	strict   bool
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithAnchorID sets the id of the content region.
// Defaults to DefaultAnchorID.
func WithAnchorID(id string) Option {
	return func(e *Extractor) {
		e.anchorID = id
	}
}

// WithStrictHeaders makes a week header without exactly two dates fail the
// extraction. By default such a week is skipped.
func WithStrictHeaders() Option {
	return func(e *Extractor) {
		e.strict = true
	}
}

// WithLogger sets the logger used to report skipped weeks.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		anchorID: DefaultAnchorID,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the menu page. The week headings (h3) and week tables are
// direct children of the content region and pair up by position.
func (e *Extractor) Extract(rawHTML string) (*teamfood.Menu, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, teamfood.Errorf(teamfood.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == e.anchorID
	}).First()
	if region.Length() == 0 {
		return nil, teamfood.Errorf(teamfood.ESTRUCTURE, "content element %q not found", e.anchorID)
	}

	menu := &teamfood.Menu{
		AdditionalInfo: additionalInfo(region),
	}

	headings := region.ChildrenFiltered("h3")
	tables := region.ChildrenFiltered("table")
	if headings.Length() < tables.Length() {
		return nil, teamfood.Errorf(teamfood.ESTRUCTURE,
			"too few headings for the tables present: %d headings, %d tables",
			headings.Length(), tables.Length())
	}

	for i := range tables.Length() {
		header := cellText(headings.Eq(i))

		h, err := teamfood.ParseWeekHeader(header)
		if errors.Is(err, teamfood.ErrDateCount) && !e.strict {
			e.logger.Warn("skipping week", "table", i, "header", header, "err", err)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}

		week, err := teamfood.NewWeekMenu(h.Week, h.Start, h.End)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}

		if err := fillWeek(week, tables.Eq(i)); err != nil {
			return nil, fmt.Errorf("table %d (KW %02d): %w", i, h.Week, err)
		}

		menu.Weeks = append(menu.Weeks, week)
	}

	return menu, nil
}

// additionalInfo returns the text of the region's first paragraph.
func additionalInfo(region *goquery.Selection) string {
	p := region.ChildrenFiltered("p").First()
	if p.Length() == 0 {
		return teamfood.NoAdditionalInfo
	}
	return teamfood.NormalizeText(p.Text())
}

// fillWeek walks the rows of a week table. A row whose day cell is not a
// weekday label belongs to the most recent weekday, starting with Monday.
func fillWeek(week *teamfood.WeekMenu, table *goquery.Selection) error {
	current := teamfood.Monday

	var rowErr error
	table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := rowCellsOf(tr)
		if len(cells) > 0 && cellText(cells[0]) == headerRowLabel {
			return true
		}
		if len(cells) < rowCells {
			rowErr = teamfood.Errorf(teamfood.EROW, "row %d has %d cells, want %d", i, len(cells), rowCells)
			return false
		}

		if day, ok := teamfood.ParseWeekday(cellText(cells[0])); ok {
			current = day
		}

		item, err := parseRow(cells)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}

		if err := week.AddMenuItem(current, item); err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		return true
	})

	return rowErr
}

// parseRow builds a menu item from the cells of a data row.
func parseRow(cells []*goquery.Selection) (teamfood.MenuItem, error) {
	additives, err := teamfood.ParseAdditives(cellText(cells[5]))
	if err != nil {
		return teamfood.MenuItem{}, err
	}

	return teamfood.NewMenuItem(teamfood.MenuItemInput{
		Description: cellText(cells[1]),
		Type:        teamfood.DeriveFoodType(cellText(cells[2])),
		Price:       teamfood.ParsePrice(cellText(cells[3])),
		SideDish:    teamfood.ParseSideDish(teamfood.NormalizeText(cellText(cells[4]))),
		Additives:   additives,
	})
}

// rowCellsOf returns the td and th children of a table row.
func rowCellsOf(tr *goquery.Selection) []*goquery.Selection {
	var cells []*goquery.Selection
	tr.Children().Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if n.Type == html.ElementNode && (n.DataAtom == atom.Td || n.DataAtom == atom.Th) {
			cells = append(cells, s)
		}
	})
	return cells
}

// cellText returns the entity-decoded text of s with non-breaking spaces
// folded into regular spaces and surrounding whitespace removed.
func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(strings.ReplaceAll(s.Text(), "\u00a0", " "))
}
