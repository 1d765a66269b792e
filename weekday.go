package teamfood

// Weekday is a day of the working week on which the cafeteria serves food.
type Weekday int

// Weekday constants, in calendar order.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// weekdayLabels are the day labels as printed on the menu page.
var weekdayLabels = [...]string{
	Monday:    "Montag",
	Tuesday:   "Dienstag",
	Wednesday: "Mittwoch",
	Thursday:  "Donnerstag",
	Friday:    "Freitag",
}

// Weekdays returns all weekdays in calendar order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// Valid reports whether d is one of the five defined weekdays.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Friday
}

// String returns the label used on the menu page.
func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(invalid)"
	}
	return weekdayLabels[d]
}

// ParseWeekday returns the weekday whose label equals s exactly.
// The second return value is false when s is not a weekday label.
func ParseWeekday(s string) (Weekday, bool) {
	for d, label := range weekdayLabels {
		if label == s {
			return Weekday(d), true
		}
	}
	return 0, false
}
