package mock

import "github.com/fwojciec/teamfood"

var _ teamfood.MenuExtractor = (*MenuExtractor)(nil)

// MenuExtractor is a mock implementation of teamfood.MenuExtractor.
type MenuExtractor struct {
	ExtractFn func(html string) (*teamfood.Menu, error)
}

func (e *MenuExtractor) Extract(html string) (*teamfood.Menu, error) {
	return e.ExtractFn(html)
}
