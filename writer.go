package teamfood

import "context"

// MenuWriter persists an extracted menu.
type MenuWriter interface {
	WriteMenu(ctx context.Context, menu *Menu) error
}
