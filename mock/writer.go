package mock

import (
	"context"

	"github.com/fwojciec/teamfood"
)

var _ teamfood.MenuWriter = (*MenuWriter)(nil)

// MenuWriter is a mock implementation of teamfood.MenuWriter.
type MenuWriter struct {
	WriteMenuFn func(ctx context.Context, menu *teamfood.Menu) error
}

func (w *MenuWriter) WriteMenu(ctx context.Context, menu *teamfood.Menu) error {
	return w.WriteMenuFn(ctx, menu)
}
