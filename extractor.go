package teamfood

// MenuExtractor turns the HTML of a menu page into a Menu.
type MenuExtractor interface {
	// Extract parses html and returns one WeekMenu per week table, in
	// document order. Returns ESTRUCTURE when the page layout is not
	// recognized and EROW when a table row is malformed.
	Extract(html string) (*Menu, error)
}
