// Package teamfood scrapes the weekly TeamFood cafeteria menu page and turns
// it into a structured schedule of meals per calendar week and weekday.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package teamfood
