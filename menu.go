package teamfood

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoAdditionalInfo is used for Menu.AdditionalInfo when the page carries no
// additional-info paragraph.
const NoAdditionalInfo = "no additional info found"

// Menu is the result of extracting one menu page.
type Menu struct {
	Weeks []*WeekMenu

	// AdditionalInfo is the free-text note printed above the week tables,
	// typically the legend for additive codes.
	AdditionalInfo string
}

// ItemCount returns the number of menu items across all weeks.
func (m *Menu) ItemCount() int {
	n := 0
	for _, w := range m.Weeks {
		for _, d := range w.Days {
			n += len(d.Items)
		}
	}
	return n
}

// MenuItem is a single meal offered on a day.
// Construct with NewMenuItem; the fields are not modified afterwards.
type MenuItem struct {
	Description string
	SideDish    string // empty when the meal has no side dish
	Price       decimal.Decimal
	Type        FoodType
	Additives   []int
}

// HasSideDish reports whether the meal comes with a side dish.
func (i MenuItem) HasSideDish() bool {
	return i.SideDish != ""
}

// MenuItemInput holds the raw values for NewMenuItem.
type MenuItemInput struct {
	Description string
	SideDish    string
	Price       decimal.Decimal
	Type        FoodType
	Additives   []int
}

// NewMenuItem returns a MenuItem with a whitespace-normalized description.
// Returns EROW if the description is empty or the price is negative.
func NewMenuItem(in MenuItemInput) (MenuItem, error) {
	desc := NormalizeText(in.Description)
	if desc == "" {
		return MenuItem{}, Errorf(EROW, "menu item description required")
	}
	if in.Price.IsNegative() {
		return MenuItem{}, Errorf(EROW, "menu item price must not be negative: %s", in.Price)
	}

	additives := make([]int, len(in.Additives))
	copy(additives, in.Additives)

	return MenuItem{
		Description: desc,
		SideDish:    in.SideDish,
		Price:       in.Price,
		Type:        in.Type,
		Additives:   additives,
	}, nil
}

// Day holds the meals for one weekday in table row order.
type Day struct {
	Weekday Weekday
	Items   []MenuItem
}

// WeekMenu is the schedule for one calendar week.
type WeekMenu struct {
	Week  int
	Start time.Time
	End   time.Time

	// Days are kept in the order their first item was added.
	Days []*Day
}

// NewWeekMenu returns an empty WeekMenu.
// Returns ESTRUCTURE if week is outside [1,52] or end is before start.
func NewWeekMenu(week int, start, end time.Time) (*WeekMenu, error) {
	if week < 1 || week > 52 {
		return nil, Errorf(ESTRUCTURE, "calendar week %d out of range", week)
	}
	if end.Before(start) {
		return nil, Errorf(ESTRUCTURE, "week %d ends (%s) before it starts (%s)",
			week, end.Format(DateLayout), start.Format(DateLayout))
	}
	return &WeekMenu{Week: week, Start: start, End: end}, nil
}

// Day returns the Day for weekday, or nil if nothing was added to it.
func (w *WeekMenu) Day(weekday Weekday) *Day {
	for _, d := range w.Days {
		if d.Weekday == weekday {
			return d
		}
	}
	return nil
}

// AddMenuItem appends item to the Day for weekday, creating the Day on
// first use.
func (w *WeekMenu) AddMenuItem(weekday Weekday, item MenuItem) error {
	if !weekday.Valid() {
		return Errorf(EINVALID, "invalid weekday %d", int(weekday))
	}

	d := w.Day(weekday)
	if d == nil {
		d = &Day{Weekday: weekday}
		w.Days = append(w.Days, d)
	}
	d.Items = append(d.Items, item)
	return nil
}
